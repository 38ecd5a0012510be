package parser

import (
	"strconv"
	"strings"

	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

// DoneToken ends the key/value entry loop.
const DoneToken = "done"

// Choice is a menu selection.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceCreateKeyValueCollection
	ChoiceAddKeyValueData
	ChoiceGetKeyValueData
	ChoiceCreateDocumentCollection
	ChoiceAddDocument
	ChoiceExit
)

// ParseChoice maps "1".."6" to a menu choice. Anything else is ChoiceInvalid.
func ParseChoice(line string) Choice {
	switch strings.TrimSpace(line) {
	case "1":
		return ChoiceCreateKeyValueCollection
	case "2":
		return ChoiceAddKeyValueData
	case "3":
		return ChoiceGetKeyValueData
	case "4":
		return ChoiceCreateDocumentCollection
	case "5":
		return ChoiceAddDocument
	case "6":
		return ChoiceExit
	default:
		return ChoiceInvalid
	}
}

// ParseExpiration parses an expiration timestamp. Unparseable input yields
// gdn.NoExpiration and ok=false rather than an error.
func ParseExpiration(line string) (expireAt int64, ok bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return gdn.NoExpiration, false
	}
	return n, true
}

// IsDone reports whether line is the end-of-records sentinel.
func IsDone(line string) bool {
	return strings.TrimSpace(line) == DoneToken
}
