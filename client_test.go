package bitcoinrpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/sebamiro/bitcoinrpc"
	"github.com/sebamiro/bitcoinrpc/internal/rpctest"
	"github.com/sebamiro/bitcoinrpc/types"
)

const blockHash = "deadbeef"

func newClient(t *testing.T) (*bitcoinrpc.Client, *rpctest.Server) {
	t.Helper()
	node := rpctest.NewServer(t, rpctest.WithBasicAuth("user", "pass"))
	return bitcoinrpc.New(node.URL, bitcoinrpc.WithAuth("user", "pass")), node
}

func TestGetBlockCount(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetBlockCount, rpctest.Raw(http.StatusOK, `{"result":100,"error":null,"id":0}`))

	n, err := client.GetBlockCount(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 100 {
		t.Fatalf("expect 100, got %d", n)
	}
}

func TestGetBlockVerbosity3(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetBlock, rpctest.Raw(http.StatusOK, `{"result":{
		"tx":[{"vin":[{"prevout":{"generated":false,"height":7,"value":1.5,
			"scriptPubKey":{"asm":"","desc":"addr(bcrt1q)#x","hex":"0014","address":"bcrt1q","type":"witness_v0_keyhash"}}}]}],
		"weight":1200
	},"error":null,"id":0}`))

	verbosity := 3
	block, err := client.GetBlock(context.Background(), blockHash, &verbosity)
	if err != nil {
		t.Fatal(err)
	}
	v3, ok := block.Value.(types.GetBlockVariant3)
	if !ok {
		t.Fatalf("expect Variant3, got %T", block.Value)
	}
	if len(v3.Tx) != 1 || v3.Tx[0].Inputs[0].Prevout.ScriptPubKey.Address != "bcrt1q" {
		t.Fatalf("unexpected block %+v", v3)
	}
	if v3.Weight != 1200 {
		t.Fatalf("expect weight 1200, got %d", v3.Weight)
	}

	params := node.Requests()[0].Params
	if len(params) != 2 || string(params[0]) != `"deadbeef"` || string(params[1]) != "3" {
		t.Fatalf("unexpected params %s", params)
	}
}

func TestGetBlockDefaultVerbosityOmitted(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetBlock, rpctest.Result("00ff"))

	block, err := client.GetBlock(context.Background(), blockHash, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := block.Value.(types.GetBlockVariant0); !ok {
		t.Fatalf("expect Variant0, got %T", block.Value)
	}
	if params := node.Requests()[0].Params; len(params) != 1 {
		t.Fatalf("expect a single param, got %s", params)
	}
}

func TestGetBlockNotFound(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetBlock, rpctest.Raw(http.StatusOK,
		`{"result":null,"error":{"code":-8,"message":"Block not found"},"id":1}`))

	_, err := client.GetBlock(context.Background(), blockHash, nil)
	var rerr *bitcoinrpc.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("expect *bitcoinrpc.Error, got %v", err)
	}
	if rerr.Kind != bitcoinrpc.KindProtocol || rerr.Code != bitcoinrpc.ErrRPCInvalidParameter {
		t.Fatalf("unexpected error %+v", rerr)
	}
}

func TestGetBlockShapeMismatch(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetBlock, rpctest.Result(map[string]any{"tx": 5}))

	_, err := client.GetBlock(context.Background(), blockHash, nil)
	if bitcoinrpc.KindOf(err) != bitcoinrpc.KindEncoding {
		t.Fatalf("expect encoding error, got %v", err)
	}
	var shape *types.ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expect ShapeError in chain, got %v", err)
	}
}

func TestGetRawTransactionParams(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetRawTransaction, rpctest.Result("0200"))

	hash := "aa"
	if _, err := client.GetRawTransaction(context.Background(), "bb", nil, &hash); err != nil {
		t.Fatal(err)
	}
	params := node.Requests()[0].Params
	if len(params) != 3 || string(params[1]) != "null" || string(params[2]) != `"aa"` {
		t.Fatalf("unexpected params %s", params)
	}
}

func TestGetBlockchainInfo(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.GetBlockchainInfo, rpctest.Raw(http.StatusOK, `{"result":{
		"chain":"regtest","blocks":101,"headers":101,"bestblockhash":"aa","difficulty":4.6e-10,
		"time":1700000000,"mediantime":1700000000,"verificationprogress":1,"initialblockdownload":false,
		"chainwork":"cc","size_on_disk":30000,"pruned":false,"warnings":[],"softforks_v2":{"taproot":"active"}
	},"error":null,"id":0}`))

	info, err := client.GetBlockchainInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if info.Chain != "regtest" || info.Blocks != 101 || info.Time == nil {
		t.Fatalf("unexpected info %+v", info)
	}
	if string(info.Warnings) != "[]" {
		t.Fatalf("unexpected warnings %s", info.Warnings)
	}
	if _, ok := info.Extra["softforks_v2"]; !ok {
		t.Fatalf("unknown member dropped: %v", info.Extra)
	}
}

func TestEstimateSmartFee(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.EstimateSmartFee, rpctest.Result(map[string]any{
		"errors": []string{"Insufficient data or no feerate found"},
		"blocks": 0,
	}))

	mode := "economical"
	fee, err := client.EstimateSmartFee(context.Background(), 6, &mode)
	if err != nil {
		t.Fatal(err)
	}
	if fee.FeeRate != nil || len(fee.Errors) != 1 {
		t.Fatalf("unexpected fee %+v", fee)
	}
	params := node.Requests()[0].Params
	if len(params) != 2 || string(params[0]) != "6" || string(params[1]) != `"economical"` {
		t.Fatalf("unexpected params %s", params)
	}
}

func TestDeriveAddressesRange(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.DeriveAddresses, rpctest.Result([]string{"a", "b"}))

	rng := types.RangeOf(0, 1)
	addrs, err := client.DeriveAddresses(context.Background(), "wpkh(xpub/*)", &rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(addrs) != 2 {
		t.Fatalf("unexpected addresses %v", addrs)
	}
	if params := node.Requests()[0].Params; string(params[1]) != "[0,1]" {
		t.Fatalf("unexpected range param %s", params[1])
	}
}

func TestCallGeneric(t *testing.T) {
	client, node := newClient(t)
	node.Handle("getmininginfo", rpctest.Result(map[string]any{"blocks": 5, "chain": "main"}))

	info, err := bitcoinrpc.Call[map[string]json.RawMessage](context.Background(), client, "getmininginfo")
	if err != nil {
		t.Fatal(err)
	}
	if string(info["chain"]) != `"main"` {
		t.Fatalf("unexpected result %v", info)
	}

	var out struct {
		Blocks int `json:"blocks"`
	}
	if err := client.CallResult(context.Background(), "getmininginfo", &out); err != nil {
		t.Fatal(err)
	}
	if out.Blocks != 5 {
		t.Fatalf("expect 5 blocks, got %d", out.Blocks)
	}
}

func TestCallResultDecodeError(t *testing.T) {
	client, node := newClient(t)
	node.Handle(bitcoinrpc.Uptime, rpctest.Result("soon"))

	var secs int64
	if err := client.CallResult(context.Background(), bitcoinrpc.Uptime, &secs); err == nil {
		t.Fatal("expect decode error")
	}
	err := client.CallResult(context.Background(), bitcoinrpc.Uptime, &secs)
	var rerr *bitcoinrpc.Error
	if !errors.As(err, &rerr) || rerr.Kind != bitcoinrpc.KindEncoding {
		t.Fatalf("expect encoding error, got %v", err)
	}
	if rerr.ID != 1 || rerr.Method != bitcoinrpc.Uptime {
		t.Fatalf("unexpected error %+v", rerr)
	}
}

func TestUnauthorized(t *testing.T) {
	node := rpctest.NewServer(t, rpctest.WithBasicAuth("user", "pass"))
	client := bitcoinrpc.New(node.URL)

	_, err := client.Uptime(context.Background())
	var rerr *bitcoinrpc.Error
	if !errors.As(err, &rerr) || rerr.Kind != bitcoinrpc.KindTransport || rerr.Status != http.StatusUnauthorized {
		t.Fatalf("expect 401 transport error, got %v", err)
	}
}
