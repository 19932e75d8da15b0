package rpc

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Version is the only protocol version the client speaks.
const Version = "2.0"

// HTTP is the part of *http.Client the Client needs.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Version string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// Response is the decoded envelope. Result is kept raw until the error
// member has been checked.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ErrorObject    `json:"error,omitempty"`
	ID     json.RawMessage `json:"id"`
}

// ErrorObject is the error member of a response.
type ErrorObject struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UnmarshalJSON requires both code and message.
func (e *ErrorObject) UnmarshalJSON(data []byte) error {
	var obj struct {
		Code    *int64          `json:"code"`
		Message *string         `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Code == nil || obj.Message == nil {
		return errors.New("rpc, error object without code or message")
	}
	*e = ErrorObject{Code: *obj.Code, Message: *obj.Message, Data: obj.Data}
	return nil
}

// hasResult reports whether the response carries a usable result.
func (r *Response) hasResult() bool {
	return len(r.Result) > 0 && !isNull(r.Result)
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
