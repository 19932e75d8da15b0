package bitcoinrpc

import "github.com/sebamiro/bitcoinrpc/internal/rpc"

// Error is returned by every call. Branch on Kind, and on Code for
// errors reported by the node:
//
//	var rerr *bitcoinrpc.Error
//	if errors.As(err, &rerr) && rerr.Kind == bitcoinrpc.KindProtocol && rerr.Code == bitcoinrpc.ErrRPCInvalidAddressOrKey {
//		// block not found
//	}
type (
	Error      = rpc.Error
	Kind       = rpc.Kind
	Middleware = rpc.Middleware
	Handler    = rpc.Handler
	Request    = rpc.Request
	Response   = rpc.Response
)

const (
	KindTransport     = rpc.KindTransport
	KindEncoding      = rpc.KindEncoding
	KindProtocol      = rpc.KindProtocol
	KindMissingResult = rpc.KindMissingResult
)

// KindOf returns the Kind of err, or zero if err is not an *Error.
func KindOf(err error) Kind {
	return rpc.KindOf(err)
}

// Error codes used by Bitcoin Core.
const (
	ErrParseError     = -32700
	ErrInvalidRequest = -32600
	ErrMethodNotFound = -32601
	ErrInvalidParams  = -32602
	ErrInternalError  = -32603

	ErrRPCMisc                = -1
	ErrRPCTypeError           = -3
	ErrRPCInvalidAddressOrKey = -5
	ErrRPCOutOfMemory         = -7
	ErrRPCInvalidParameter    = -8
	ErrRPCDatabaseError       = -20
	ErrRPCDeserialization     = -22
	ErrRPCVerify              = -25
	ErrRPCVerifyRejected      = -26
	ErrRPCInWarmup            = -28
	ErrRPCMethodDeprecated    = -32
)
