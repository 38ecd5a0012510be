package errors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failures an adapter can report.
type Kind int

const (
	KindUnknown  Kind = iota
	KindConfig        // malformed or mis-shaped input, caught before any remote call
	KindRemote        // the GDN service or the network failed the call
	KindNotFound      // the GDN service has no such key
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRemote:
		return "remote"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidJSON is returned when user input is not valid UTF-8 JSON.
	ErrInvalidJSON = errors.New("input must be valid JSON")

	// ErrConfigShape is returned when a collection configuration has the wrong shape.
	ErrConfigShape = errors.New("collection configuration does not match the expected shape")
)

// Error carries the kind of failure and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Config wraps err as a configuration error.
func Config(op string, err error) error {
	return newError(KindConfig, op, err)
}

// Remote wraps err as a remote/service error.
func Remote(op string, err error) error {
	return newError(KindRemote, op, err)
}

// NotFound wraps err as a not-found error.
func NotFound(op string, err error) error {
	return newError(KindNotFound, op, err)
}

// Classify returns the kind carried by err. Errors that were never wrapped
// by this package are treated as remote failures.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	switch {
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrConfigShape):
		return KindConfig
	}

	return KindRemote
}

// ShouldAbort reports whether a failure of this kind ends the session.
// Only configuration errors are recoverable at the prompt.
func ShouldAbort(kind Kind) bool {
	return kind == KindRemote || kind == KindNotFound
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && Classify(err) == kind
}
