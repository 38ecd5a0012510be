package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/commands"
	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/parser"
	gdnerrors "github.com/kartikbazzad/gdnsh/internal/errors"
	"github.com/kartikbazzad/gdnsh/internal/logger"
	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

const menu = `
Menu:
1. Create Key-Value Collection
2. Add Data to Key-Value Collection
3. Retrieve Data from Key-Value Collection
4. Create Document Collection
5. Add Data to Document Collection
6. Exit
`

const (
	promptChoice     = "Enter your choice: "
	promptCollection = "Enter the collection name: "
	promptKey        = "Enter key (or 'done' to finish): "
	promptValue      = "Enter value: "
	promptExpiration = "Enter expiration time (-1 for no expiration): "
	promptReadKey    = "Enter the key: "
	promptDocument   = "Enter the JSON document to add: "
)

// Clients are the three handles the shell dispatches to. They are built once
// by the caller and never modified.
type Clients struct {
	KeyValue    commands.KeyValueClient
	Collections commands.CollectionsClient
	Documents   commands.DocumentClient
}

type Shell struct {
	in      LineReader
	out     io.Writer
	clients Clients
	log     *slog.Logger
}

func NewShell(in LineReader, out io.Writer, clients Clients, log *slog.Logger) *Shell {
	if log == nil {
		log = logger.Get()
	}
	return &Shell{
		in:      in,
		out:     out,
		clients: clients,
		log:     log,
	}
}

// Run loops over the menu until the user exits or input ends. Configuration
// errors are printed and the loop continues; remote and not-found errors are
// returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)
		line, err := s.in.Prompt(promptChoice)
		if err != nil {
			return s.endOfInput(err)
		}

		result, err := s.Execute(ctx, parser.ParseChoice(line))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.endOfInput(err)
			}
			kind := gdnerrors.Classify(err)
			if gdnerrors.ShouldAbort(kind) {
				s.log.Error("operation failed", "kind", kind.String(), "error", err)
				return err
			}
			s.log.Warn("operation rejected", "kind", kind.String(), "error", err)
			result = commands.ErrorResult{Err: err}
		}

		result.Print(s.out)
		if result.IsExit() {
			return nil
		}
	}
}

// Execute collects the input a choice needs and dispatches it. Input errors
// (including io.EOF) are returned unwrapped.
func (s *Shell) Execute(ctx context.Context, choice parser.Choice) (commands.Result, error) {
	switch choice {
	case parser.ChoiceCreateKeyValueCollection:
		name, err := s.prompt(promptCollection)
		if err != nil {
			return nil, err
		}
		return commands.CreateKeyValueCollection(ctx, s.clients.KeyValue, name, commands.DefaultKeyValueCollectionConfig)

	case parser.ChoiceAddKeyValueData:
		name, err := s.prompt(promptCollection)
		if err != nil {
			return nil, err
		}
		records, err := s.collectRecords()
		if err != nil {
			return nil, err
		}
		s.log.Debug("writing records", "collection", name, "count", len(records))
		return commands.AddDataToCollection(ctx, s.clients.KeyValue, name, records)

	case parser.ChoiceGetKeyValueData:
		name, err := s.prompt(promptCollection)
		if err != nil {
			return nil, err
		}
		key, err := s.prompt(promptReadKey)
		if err != nil {
			return nil, err
		}
		return commands.GetDataFromCollection(ctx, s.clients.KeyValue, name, key)

	case parser.ChoiceCreateDocumentCollection:
		name, err := s.prompt(promptCollection)
		if err != nil {
			return nil, err
		}
		return commands.CreateDocumentCollection(ctx, s.clients.Collections, name)

	case parser.ChoiceAddDocument:
		name, err := s.prompt(promptCollection)
		if err != nil {
			return nil, err
		}
		line, err := s.prompt(promptDocument)
		if err != nil {
			return nil, err
		}
		document, err := parser.DecodeDocument(line)
		if err != nil {
			return nil, gdnerrors.Config("add document to collection", err)
		}
		return commands.AddDocumentToCollection(ctx, s.clients.Documents, name, document)

	case parser.ChoiceExit:
		return commands.Exit(), nil

	default:
		return commands.InvalidChoice(), nil
	}
}

// collectRecords reads key/value/expiration triples until the done token.
func (s *Shell) collectRecords() ([]gdn.KeyValuePair, error) {
	records := []gdn.KeyValuePair{}
	for {
		key, err := s.prompt(promptKey)
		if err != nil {
			return nil, err
		}
		if parser.IsDone(key) {
			return records, nil
		}

		value, err := s.prompt(promptValue)
		if err != nil {
			return nil, err
		}

		line, err := s.prompt(promptExpiration)
		if err != nil {
			return nil, err
		}
		expireAt, ok := parser.ParseExpiration(line)
		if !ok {
			s.log.Warn("unparseable expiration, storing without expiration", "key", key, "input", line)
		}

		records = append(records, gdn.NewStringPair(key, value, expireAt))
	}
}

func (s *Shell) prompt(p string) (string, error) {
	line, err := s.in.Prompt(p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}
