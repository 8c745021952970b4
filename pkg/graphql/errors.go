package graphql

import (
	"errors"
	"strings"
)

var (
	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("graphql transport")
	// ErrDecode means the response body was not valid JSON.
	ErrDecode = errors.New("graphql decode")
	// ErrShape means valid JSON that is not a usable {data} envelope.
	ErrShape = errors.New("graphql shape")
)

const (
	KindTransport = "transport"
	KindDecode    = "decode"
	KindShape     = "shape"
	KindUnknown   = "unknown"
)

// ErrorKind classifies err for logs and metric labels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrShape):
		return KindShape
	default:
		return KindUnknown
	}
}

// Error is one entry of the response "errors" array.
type Error struct {
	Message string `json:"message"`
}

// Errors is returned (wrapped in ErrShape) when the response carries errors.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, item := range e {
		msgs = append(msgs, item.Message)
	}
	return strings.Join(msgs, "; ")
}
