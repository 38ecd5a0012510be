package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// LineReader prompts for and returns one line of input without the line
// terminator. It returns io.EOF when input ends or the user aborts.
type LineReader interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// NewLineReader uses liner for interactive terminals and a buffered reader
// for everything else (pipes, files, tests).
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if isatty.IsTerminal(in.Fd()) && liner.TerminalSupported() {
		return newTerminalReader()
	}
	return NewBufferedReader(in, out)
}

type terminalReader struct {
	line *liner.State
}

func newTerminalReader() *terminalReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &terminalReader{line: line}
}

func (t *terminalReader) Prompt(prompt string) (string, error) {
	s, err := t.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(s) != "" {
		t.line.AppendHistory(s)
	}
	return s, nil
}

func (t *terminalReader) Close() error {
	return t.line.Close()
}

// BufferedReader reads newline-terminated lines from any reader.
type BufferedReader struct {
	r   *bufio.Reader
	out io.Writer
}

func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{r: bufio.NewReader(in), out: out}
}

func (b *BufferedReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(b.out, prompt)

	line, err := b.r.ReadString('\n')
	if err != nil {
		// a final line without a newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *BufferedReader) Close() error {
	return nil
}
