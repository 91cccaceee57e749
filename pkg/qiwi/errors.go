package qiwi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInputType   = errors.New("qiwi: input should be a json object or json text")
	ErrMalformedResponse  = errors.New("qiwi: malformed response")
	ErrInvalidArgument    = errors.New("qiwi: invalid argument")
	ErrUnresolvedProvider = errors.New("qiwi: unable to resolve provider")

	// ErrProviderNotFound is returned by Balance when no funding source of the
	// requested currency reports a balance.
	ErrProviderNotFound = errors.New("qiwi: there is no payment account that has a balance on it. " +
		"Maybe this is a temporary QIWI API error and you should try again later. " +
		"It can also be caused by a just registered wallet, " +
		"or by a really old wallet that needs a password change")
)

// APIError is returned when the remote service answers with an empty body or
// with a status other than 200 and 201.
type APIError struct {
	StatusCode  int
	Category    string
	Description string
	// Response is the raw body as sent by the service.
	Response string
	// Method is the requested path with its query string.
	Method string
	Params map[string]string

	msg string
}

func (e *APIError) Error() string {
	return e.msg
}

func newAPIError(statusCode int, category, body, method string, params map[string]string) *APIError {
	desc := Classify(statusCode, category)
	var msg string
	if body == "" {
		msg = fmt.Sprintf("qiwi: error code: %d description: %s", statusCode, desc)
	} else {
		msg = fmt.Sprintf("qiwi: the server returned HTTP %d %s (%s). Response body: [%s]",
			statusCode, http.StatusText(statusCode), desc, body)
	}
	return &APIError{
		StatusCode:  statusCode,
		Category:    category,
		Description: desc,
		Response:    body,
		Method:      method,
		Params:      params,
		msg:         msg,
	}
}

func malformed(typeName, field, reason string) error {
	if field == "" {
		return fmt.Errorf("%w: %s: %s", ErrMalformedResponse, typeName, reason)
	}
	return fmt.Errorf("%w: %s.%s: %s", ErrMalformedResponse, typeName, field, reason)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
