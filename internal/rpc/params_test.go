package rpc_test

import (
	"strings"
	"testing"

	"github.com/sebamiro/bitcoinrpc/internal/rpc"
)

func TestParams(t *testing.T) {
	verbose := true
	var noHash *string

	cases := []struct {
		name string
		args []any
		want string
	}{
		{"empty", nil, ""},
		{"all present", []any{"abc", 2}, `"abc",2`},
		{"trailing absent trimmed", []any{"abc", nil, noHash}, `"abc"`},
		{"gap becomes null", []any{"abc", nil, &verbose}, `"abc",null,true`},
		{"only absent", []any{nil, noHash}, ""},
		{"composite", []any{[]string{"a", "b"}, map[string]int{"n": 1}}, `["a","b"],{"n":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := rpc.Params(tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if params == nil {
				t.Fatal("params must never be nil")
			}
			got := make([]string, len(params))
			for i, p := range params {
				got[i] = string(p)
			}
			if strings.Join(got, ",") != tc.want {
				t.Fatalf("expect %s, got %s", tc.want, strings.Join(got, ","))
			}
		})
	}
}

func TestParamsMarshalFailure(t *testing.T) {
	_, err := rpc.Params(make(chan int))
	if rpc.KindOf(err) != rpc.KindEncoding {
		t.Fatalf("expect encoding error, got %v", err)
	}
}
