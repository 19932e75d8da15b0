package types

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Range is the argument accepted by descriptor methods: either a single end
// index or a [begin, end] pair.
type Range struct {
	Begin uint64
	End   uint64
	// Pair selects the [begin, end] form.
	Pair bool
}

// RangeTo returns the single-index form, equivalent to [0, end].
func RangeTo(end uint64) Range {
	return Range{End: end}
}

// RangeOf returns the [begin, end] form.
func RangeOf(begin, end uint64) Range {
	return Range{Begin: begin, End: end, Pair: true}
}

func (r Range) MarshalJSON() ([]byte, error) {
	if r.Pair {
		return json.Marshal([2]uint64{r.Begin, r.End})
	}
	return json.Marshal(r.End)
}

func (r *Range) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return &ShapeError{Set: "Range", Err: errors.New("types: range is null")}
	}
	var end uint64
	if err := json.Unmarshal(data, &end); err == nil {
		*r = RangeTo(end)
		return nil
	}
	var pair []uint64
	if err := json.Unmarshal(data, &pair); err != nil {
		return &ShapeError{Set: "Range", Err: errors.Wrap(err, "types: range is neither an index nor a pair")}
	}
	if len(pair) != 2 {
		return &ShapeError{Set: "Range", Err: errors.Errorf("types: range pair has %d elements", len(pair))}
	}
	*r = RangeOf(pair[0], pair[1])
	return nil
}
