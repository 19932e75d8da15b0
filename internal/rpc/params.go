package rpc

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

var null = json.RawMessage("null")

// Params serializes positional arguments. A nil argument (untyped nil or a
// nil pointer) marks an omitted optional parameter: it is sent as null when a
// later argument is present and dropped when it is trailing.
func Params(args ...any) ([]json.RawMessage, error) {
	last := -1
	for i, arg := range args {
		if !absent(arg) {
			last = i
		}
	}

	out := make([]json.RawMessage, 0, last+1)
	for i := 0; i <= last; i++ {
		if absent(args[i]) {
			out = append(out, null)
			continue
		}
		b, err := json.Marshal(args[i])
		if err != nil {
			return nil, &Error{Kind: KindEncoding, Err: errors.Wrapf(err, "rpc, param %d json marshaling", i)}
		}
		out = append(out, b)
	}
	return out, nil
}

func absent(arg any) bool {
	if arg == nil {
		return true
	}
	v := reflect.ValueOf(arg)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
