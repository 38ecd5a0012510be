package parser

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/kartikbazzad/gdnsh/internal/errors"
)

// DecodeDocument validates a one-line JSON document and returns it unchanged
// apart from surrounding whitespace.
func DecodeDocument(s string) (json.RawMessage, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.ErrInvalidJSON
	}

	if !utf8.ValidString(s) {
		return nil, errors.ErrInvalidJSON
	}

	if !json.Valid([]byte(s)) {
		return nil, errors.ErrInvalidJSON
	}

	return json.RawMessage(s), nil
}
