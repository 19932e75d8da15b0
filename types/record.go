// Package types holds the typed results of Bitcoin Core RPC methods and the
// decoding rules they share.
//
// A record is a struct with a fixed set of declared fields plus an Extra map
// that receives every object member the struct does not declare, so fields
// added by newer nodes are kept instead of dropped. A declared field is
// required unless it is a pointer or tagged omitempty.
//
// A variant set is a closed group of records (or scalars) of which exactly
// one describes a given payload. See DecodeVariant.
package types

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Extra collects object members a record does not declare, keyed by member
// name.
type Extra map[string]json.RawMessage

type field struct {
	name      string
	index     int
	omitempty bool
	required  bool
	nullable  bool
}

var fieldCache sync.Map // map[reflect.Type][]field

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

func fieldsOf(t reflect.Type) []field {
	if fs, ok := fieldCache.Load(t); ok {
		return fs.([]field)
	}

	var fs []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		omitempty := false
		for _, o := range strings.Split(opts, ",") {
			if o == "omitempty" {
				omitempty = true
			}
		}
		k := sf.Type.Kind()
		fs = append(fs, field{
			name:      name,
			index:     i,
			omitempty: omitempty,
			required:  !omitempty && k != reflect.Pointer,
			nullable:  k == reflect.Pointer || k == reflect.Interface || sf.Type == rawMessageType,
		})
	}

	actual, _ := fieldCache.LoadOrStore(t, fs)
	return actual.([]field)
}

// DecodeRecord decodes a JSON object into rec, which must be a pointer to a
// struct, and stores the members rec does not declare in extra. It fails if
// data is not an object, if a required field is missing, or if a member
// cannot be decoded into the declared field type. Unknown members never cause
// a failure.
func DecodeRecord(data []byte, rec any, extra *Extra) error {
	rv := reflect.ValueOf(rec)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.Errorf("types: record must be a non-nil pointer to struct, got %T", rec)
	}
	sv := rv.Elem()
	name := sv.Type().Name()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.Errorf("types: %s: expected JSON object", name)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return errors.Wrapf(err, "types: %s", name)
	}
	sv.Set(reflect.Zero(sv.Type()))

	for _, f := range fieldsOf(sv.Type()) {
		raw, ok := members[f.name]
		if !ok {
			if f.required {
				return errors.Errorf("types: %s: missing field %q", name, f.name)
			}
			continue
		}
		delete(members, f.name)

		if string(raw) == "null" && !f.nullable {
			if f.required {
				return errors.Errorf("types: %s: field %q is null", name, f.name)
			}
			continue
		}
		if err := json.Unmarshal(raw, sv.Field(f.index).Addr().Interface()); err != nil {
			return errors.Wrapf(err, "types: %s: field %q", name, f.name)
		}
	}

	if len(members) == 0 {
		*extra = nil
	} else {
		*extra = Extra(members)
	}
	return nil
}

// EncodeRecord encodes rec's declared fields in declaration order followed by
// extra sorted by key. Extra members that collide with a declared name are
// not written.
func EncodeRecord(rec any, extra Extra) ([]byte, error) {
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Errorf("types: record must be a struct, got %T", rec)
	}

	fs := fieldsOf(rv.Type())
	declared := make(map[string]struct{}, len(fs))

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeMember := func(name string, value []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	for _, f := range fs {
		declared[f.name] = struct{}{}
		fv := rv.Field(f.index)
		if f.omitempty && isEmptyValue(fv) {
			continue
		}
		b, err := json.Marshal(fv.Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "types: %s: field %q", rv.Type().Name(), f.name)
		}
		writeMember(f.name, b)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if _, ok := declared[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := extra[k]
		if len(v) == 0 {
			v = json.RawMessage("null")
		}
		writeMember(k, v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
