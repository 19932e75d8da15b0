package rpc

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Handler performs one request/response exchange.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// Middleware wraps a Handler. Errors it returns that are not *Error are
// reported to the caller as transport failures.
type Middleware func(next Handler) Handler

// Chain composes middlewares so that the first one is the outermost:
// Chain(A, B)(h) runs A, then B, then h.
func Chain(middlewares ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Logging logs every exchange at debug level.
func Logging(log *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *Request) (*Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.Uint64("id", req.ID),
				zap.Duration("duration", time.Since(start)),
			}
			switch {
			case err != nil:
				fields = append(fields, zap.Error(err))
			case resp != nil && resp.Error != nil:
				fields = append(fields, zap.Int64("code", resp.Error.Code), zap.String("message", resp.Error.Message))
			}
			log.Debug("rpc call", fields...)
			return resp, err
		}
	}
}

// RateLimit holds each request until the token bucket allows it, or until
// ctx is done.
func RateLimit(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next Handler) Handler {
		return func(ctx context.Context, req *Request) (*Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, errors.Wrap(err, "rpc, rate limit")
			}
			return next(ctx, req)
		}
	}
}
