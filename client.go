package bitcoinrpc

import (
	"context"

	"github.com/sebamiro/bitcoinrpc/internal/rpc"
	"github.com/sebamiro/bitcoinrpc/types"
	"go.uber.org/zap"
)

// Client wrapper of rpc.Client
type Client struct {
	*rpc.Client
}

// Option configures a Client built by New.
type Option func(*rpc.Client)

// WithAuth enables HTTP basic authentication on every request.
func WithAuth(user, password string) Option {
	return func(c *rpc.Client) {
		c.User = user
		c.Password = password
	}
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(h rpc.HTTP) Option {
	return func(c *rpc.Client) {
		c.HTTP = h
	}
}

// WithMiddleware appends middlewares around the HTTP exchange.
func WithMiddleware(mw ...Middleware) Option {
	return func(c *rpc.Client) {
		c.Middleware = append(c.Middleware, mw...)
	}
}

// WithLogger logs each call at debug level.
func WithLogger(log *zap.Logger) Option {
	return WithMiddleware(rpc.Logging(log))
}

// WithRateLimit allows r calls per second with the given burst.
func WithRateLimit(r float64, burst int) Option {
	return WithMiddleware(rpc.RateLimit(r, burst))
}

// New returns a client for the node at url.
func New(url string, opts ...Option) *Client {
	c := &rpc.Client{URL: url}
	for _, opt := range opts {
		opt(c)
	}
	return &Client{Client: c}
}

// Methods
const (
	GetBlockCount     = "getblockcount"
	GetBestBlockHash  = "getbestblockhash"
	GetBlockHash      = "getblockhash"
	GetBlock          = "getblock"
	GetBlockHeader    = "getblockheader"
	GetBlockchainInfo = "getblockchaininfo"
	GetNetworkInfo    = "getnetworkinfo"
	GetMempoolInfo    = "getmempoolinfo"
	GetRawTransaction = "getrawtransaction"
	EstimateSmartFee  = "estimatesmartfee"
	DeriveAddresses   = "deriveaddresses"
	Uptime            = "uptime"
)

// Call executes method with args serialized positionally (see rpc.Params)
// and decodes the result into T.
func Call[T any](ctx context.Context, c *Client, method string, args ...any) (T, error) {
	params, err := rpc.Params(args...)
	if err != nil {
		var zero T
		if rerr, ok := err.(*rpc.Error); ok {
			rerr.Method = method
		}
		return zero, err
	}
	return rpc.CallResult[T](ctx, c.Client, method, params...)
}

// CallResult executes a call, with params if any, and saves the result into
// the value pointed to by result.
func (c *Client) CallResult(ctx context.Context, method string, result any, args ...any) error {
	params, err := rpc.Params(args...)
	if err != nil {
		if rerr, ok := err.(*rpc.Error); ok {
			rerr.Method = method
		}
		return err
	}
	return c.Client.CallResult(ctx, method, result, params...)
}

// GetBlockCount returns the height of the most-work fully-validated chain.
// https://developer.bitcoin.org/reference/rpc/getblockcount.html
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	return Call[int64](ctx, c, GetBlockCount)
}

// GetBestBlockHash returns the hash of the best (tip) block.
func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	return Call[string](ctx, c, GetBestBlockHash)
}

// GetBlockHash returns the hash of the block at height in the best chain.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	return Call[string](ctx, c, GetBlockHash, height)
}

// GetBlock returns the block with the given hash. The shape of the result
// depends on verbosity (node default is 1 when nil); inspect the Value with
// a type switch.
// https://developer.bitcoin.org/reference/rpc/getblock.html
func (c *Client) GetBlock(ctx context.Context, hash string, verbosity *int) (*types.GetBlock, error) {
	block, err := Call[types.GetBlock](ctx, c, GetBlock, hash, verbosity)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlockHeader returns the header of the block with the given hash,
// decoded (verbose nil or true) or hex-encoded.
func (c *Client) GetBlockHeader(ctx context.Context, hash string, verbose *bool) (*types.GetBlockHeader, error) {
	header, err := Call[types.GetBlockHeader](ctx, c, GetBlockHeader, hash, verbose)
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// GetBlockchainInfo returns the state of block chain processing.
// https://developer.bitcoin.org/reference/rpc/getblockchaininfo.html
func (c *Client) GetBlockchainInfo(ctx context.Context) (*types.GetBlockchainInfo, error) {
	info, err := Call[types.GetBlockchainInfo](ctx, c, GetBlockchainInfo)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetNetworkInfo returns the state of P2P networking.
func (c *Client) GetNetworkInfo(ctx context.Context) (*types.GetNetworkInfo, error) {
	info, err := Call[types.GetNetworkInfo](ctx, c, GetNetworkInfo)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetMempoolInfo returns the state of the transaction memory pool.
func (c *Client) GetMempoolInfo(ctx context.Context) (*types.GetMempoolInfo, error) {
	info, err := Call[types.GetMempoolInfo](ctx, c, GetMempoolInfo)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetRawTransaction returns a transaction, hex-encoded unless verbose is
// true. blockhash restricts the lookup to one block.
// https://developer.bitcoin.org/reference/rpc/getrawtransaction.html
func (c *Client) GetRawTransaction(ctx context.Context, txid string, verbose *bool, blockhash *string) (*types.GetRawTransaction, error) {
	tx, err := Call[types.GetRawTransaction](ctx, c, GetRawTransaction, txid, verbose, blockhash)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// EstimateSmartFee estimates the fee rate needed for confirmation within
// confTarget blocks. mode is "unset", "economical" or "conservative".
func (c *Client) EstimateSmartFee(ctx context.Context, confTarget int64, mode *string) (*types.EstimateSmartFee, error) {
	fee, err := Call[types.EstimateSmartFee](ctx, c, EstimateSmartFee, confTarget, mode)
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// DeriveAddresses derives addresses from an output descriptor. rng is
// required for ranged descriptors.
func (c *Client) DeriveAddresses(ctx context.Context, descriptor string, rng *types.Range) ([]string, error) {
	return Call[[]string](ctx, c, DeriveAddresses, descriptor, rng)
}

// Uptime returns the number of seconds the node has been running.
func (c *Client) Uptime(ctx context.Context) (int64, error) {
	return Call[int64](ctx, c, Uptime)
}
