package gdn

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError is returned for any response with status >= 400.
type APIError struct {
	StatusCode int
	ErrorNum   int64
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.ErrorNum != 0 {
		return fmt.Sprintf("gdn: status %d (errorNum %d): %s", e.StatusCode, e.ErrorNum, msg)
	}
	return fmt.Sprintf("gdn: status %d: %s", e.StatusCode, msg)
}

// newAPIError reads the GDN error envelope:
// {"error":true,"code":404,"errorNum":1202,"errorMessage":"..."}.
// Bodies that are not JSON become the message verbatim.
func newAPIError(status int, requestID string, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, RequestID: requestID}

	if !gjson.ValidBytes(body) {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.ErrorNum = gjson.GetBytes(body, "errorNum").Int()
	apiErr.Message = gjson.GetBytes(body, "errorMessage").String()
	if apiErr.Message == "" {
		apiErr.Message = gjson.GetBytes(body, "message").String()
	}
	return apiErr
}

// IsNotFound reports whether err is a 404 from the GDN API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
