package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the failures a call can end with.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindTransport covers network errors, cancellation and non-2xx statuses.
	KindTransport
	// KindEncoding covers request marshaling and response decoding,
	// including results that match no expected shape.
	KindEncoding
	// KindProtocol is a structured error object returned by the server.
	KindProtocol
	// KindMissingResult is a response with neither error nor result.
	KindMissingResult
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindEncoding:
		return "encoding"
	case KindProtocol:
		return "protocol"
	case KindMissingResult:
		return "missing result"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Call.
type Error struct {
	Kind   Kind
	Method string
	ID     uint64

	// Status is the HTTP status code of a rejected response, if any.
	Status int

	// Code, Message and Data are copied verbatim from the server's error
	// object when Kind is KindProtocol.
	Code    int64
	Message string
	Data    json.RawMessage

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindProtocol:
		return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
	case KindMissingResult:
		return fmt.Sprintf("missing result for rpc call %s", e.Method)
	case KindTransport:
		if e.Status != 0 {
			return fmt.Sprintf("http error: bad status %d for %s", e.Status, e.Method)
		}
		return fmt.Sprintf("http error: %v", e.Err)
	case KindEncoding:
		return fmt.Sprintf("json error: %v", e.Err)
	default:
		return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind
	}
	return KindUnknown
}

func transportError(req *Request, err error) *Error {
	return &Error{Kind: KindTransport, Method: req.Method, ID: req.ID, Err: err}
}

func encodingError(req *Request, err error) *Error {
	return &Error{Kind: KindEncoding, Method: req.Method, ID: req.ID, Err: err}
}
