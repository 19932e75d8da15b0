package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ShapeError is returned when a payload matches none of a variant set's
// candidates.
type ShapeError struct {
	Set string
	// Err combines the failure of every candidate, in declaration order.
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("types: payload matches no variant of %s: %v", e.Set, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Candidate is one alternative shape of a variant set V.
type Candidate[V any] struct {
	name   string
	decode func(data []byte) (V, error)
}

// Variant returns the candidate that decodes a payload as T. T must
// implement the variant set's interface V.
func Variant[T any, V any]() Candidate[V] {
	var t T
	return Candidate[V]{
		name: fmt.Sprintf("%T", t),
		decode: func(data []byte) (V, error) {
			var (
				t    T
				zero V
			)
			if err := json.Unmarshal(data, &t); err != nil {
				return zero, err
			}
			v, ok := any(t).(V)
			if !ok {
				return zero, errors.Errorf("types: %T is not a member of %T", t, (*V)(nil))
			}
			return v, nil
		},
	}
}

// DecodeVariant tries candidates in declaration order and returns the first
// one that decodes data. Matching is structural: when two candidates both
// accept a payload, the earlier one wins.
func DecodeVariant[V any](data []byte, set string, candidates ...Candidate[V]) (V, error) {
	var zero V
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return zero, &ShapeError{Set: set, Err: errors.New("types: null payload")}
	}

	var errs error
	for _, c := range candidates {
		v, err := c.decode(data)
		if err == nil {
			return v, nil
		}
		errs = multierr.Append(errs, errors.Wrap(err, c.name))
	}
	return zero, &ShapeError{Set: set, Err: errs}
}

func marshalVariant(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}
