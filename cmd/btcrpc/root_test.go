package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebamiro/bitcoinrpc"
	"github.com/sebamiro/bitcoinrpc/internal/rpctest"
)

func TestParseArgs(t *testing.T) {
	params := parseArgs([]string{"deadbeef", "3", "true", `["a"]`, "null", "not json"})
	want := []string{`"deadbeef"`, "3", "true", `["a"]`, "null", `"not json"`}
	if len(params) != len(want) {
		t.Fatalf("expect %d params, got %d", len(want), len(params))
	}
	for i, p := range params {
		if string(p) != want[i] {
			t.Fatalf("param %d: expect %s, got %s", i, want[i], p)
		}
	}
}

func TestPrintResult(t *testing.T) {
	cases := map[string]string{
		`"00ff"`:       "00ff\n",
		`100`:          "100\n",
		`{"blocks":1}`: "{\n  \"blocks\": 1\n}\n",
	}
	for in, want := range cases {
		var buf bytes.Buffer
		if err := printResult(&buf, json.RawMessage(in)); err != nil {
			t.Fatal(err)
		}
		if buf.String() != want {
			t.Fatalf("%s: expect %q, got %q", in, want, buf.String())
		}
	}
}

func TestRun(t *testing.T) {
	node := rpctest.NewServer(t)
	node.Handle("getblockhash", rpctest.Result("aa"))
	client := bitcoinrpc.New(node.URL)

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), client, []string{"getblockhash", "100"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "aa\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	if params := node.Requests()[0].Params; len(params) != 1 || string(params[0]) != "100" {
		t.Fatalf("unexpected params %s", params)
	}
}

func TestRunProtocolError(t *testing.T) {
	node := rpctest.NewServer(t)
	node.Handle("getblock", rpctest.Fail(-8, "Block not found"))
	client := bitcoinrpc.New(node.URL)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), client, []string{"getblock", "deadbeef"}, &stdout, &stderr)
	var ee *exitError
	if !errors.As(err, &ee) || ee.code != 1 {
		t.Fatalf("expect exit code 1, got %v", err)
	}
	want := "error code: -8\nerror message:\nBlock not found\n"
	if stderr.String() != want {
		t.Fatalf("expect %q, got %q", want, stderr.String())
	}
}

func TestRunTransportError(t *testing.T) {
	node := rpctest.NewServer(t, rpctest.WithBasicAuth("user", "pass"))
	client := bitcoinrpc.New(node.URL)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), client, []string{"uptime"}, &stdout, &stderr)
	if bitcoinrpc.KindOf(err) != bitcoinrpc.KindTransport {
		t.Fatalf("expect transport error, got %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRootCommand(t *testing.T) {
	node := rpctest.NewServer(t, rpctest.WithBasicAuth("alice", "secret"))
	node.Handle("uptime", rpctest.Result(42))

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--url", node.URL, "--user", "alice", "--password", "secret", "uptime"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "42\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}
