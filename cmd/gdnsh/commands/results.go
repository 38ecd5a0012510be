package commands

import (
	"encoding/json"
	"fmt"
	"io"
)

type Result interface {
	Print(w io.Writer)
	IsExit() bool
}

type ErrorResult struct {
	Err error
}

func (e ErrorResult) Print(w io.Writer) {
	fmt.Fprintln(w, "ERROR")
	fmt.Fprintln(w, e.Err.Error())
}

func (e ErrorResult) IsExit() bool {
	return false
}

type ExitResult struct{}

func (e ExitResult) Print(w io.Writer) {
	fmt.Fprintln(w, "Exiting the program.")
}

func (e ExitResult) IsExit() bool {
	return true
}

type InvalidChoiceResult struct{}

func (r InvalidChoiceResult) Print(w io.Writer) {
	fmt.Fprintln(w, "Invalid choice. Please try again.")
}

func (r InvalidChoiceResult) IsExit() bool {
	return false
}

// OKResult is a one-line confirmation.
type OKResult struct {
	Message string
}

func (o OKResult) Print(w io.Writer) {
	fmt.Fprintln(w, o.Message)
}

func (o OKResult) IsExit() bool {
	return false
}

// ValueResult reports a value read from a key-value collection.
type ValueResult struct {
	Collection string
	Key        string
	Value      json.RawMessage
}

func (v ValueResult) Print(w io.Writer) {
	fmt.Fprintf(w, "Data retrieved from collection '%s': %s\n", v.Collection, v.Value)
	fmt.Fprintf(w, "Retrieved value: %s\n", v.Value)
}

func (v ValueResult) IsExit() bool {
	return false
}

func Exit() Result {
	return ExitResult{}
}

func InvalidChoice() Result {
	return InvalidChoiceResult{}
}
