package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Client implements remote calls to a JSON-RPC 2.0 http server.
// It is safe for concurrent use; the id counter is its only mutable state.
type Client struct {
	HTTP HTTP
	URL  string

	// User and Password enable HTTP basic authentication when User is set.
	User     string
	Password string

	Middleware []Middleware

	id atomic.Uint64
}

func (c *Client) http() HTTP {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// nextID returns the current counter value and advances it, so the first
// call of a client uses id 0.
func (c *Client) nextID() uint64 {
	return c.id.Add(1) - 1
}

// Call remote server with given method and already serialized params, and
// returns the raw result. Every failure is returned as *Error.
func (c *Client) Call(ctx context.Context, method string, params ...json.RawMessage) (json.RawMessage, error) {
	raw, _, err := c.call(ctx, method, params)
	return raw, err
}

func (c *Client) call(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, uint64, error) {
	if params == nil {
		params = []json.RawMessage{}
	}
	req := &Request{Version: Version, ID: c.nextID(), Method: method, Params: params}

	resp, err := Chain(c.Middleware...)(c.roundTrip)(ctx, req)
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			return nil, req.ID, rerr
		}
		return nil, req.ID, transportError(req, err)
	}
	if resp == nil {
		return nil, req.ID, transportError(req, errors.New("rpc, no response"))
	}

	if resp.Error != nil {
		data := resp.Error.Data
		if isNull(data) {
			data = nil
		}
		return nil, req.ID, &Error{
			Kind:    KindProtocol,
			Method:  method,
			ID:      req.ID,
			Code:    resp.Error.Code,
			Message: resp.Error.Message,
			Data:    data,
		}
	}
	if !resp.hasResult() {
		return nil, req.ID, &Error{Kind: KindMissingResult, Method: method, ID: req.ID}
	}
	return resp.Result, req.ID, nil
}

// CallResult executes a call and decodes its result into the value pointed
// to by result.
func (c *Client) CallResult(ctx context.Context, method string, result any, params ...json.RawMessage) error {
	raw, id, err := c.call(ctx, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &Error{
			Kind:   KindEncoding,
			Method: method,
			ID:     id,
			Err:    errors.Wrapf(err, "rpc, decoding %s result", method),
		}
	}
	return nil
}

// CallResult executes a call and decodes its result into T.
func CallResult[T any](ctx context.Context, c *Client, method string, params ...json.RawMessage) (T, error) {
	var result T
	err := c.CallResult(ctx, method, &result, params...)
	return result, err
}

// roundTrip is the innermost Handler: one POST, one envelope.
func (c *Client) roundTrip(ctx context.Context, req *Request) (*Response, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, encodingError(req, errors.Wrap(err, "rpc, request json marshaling"))
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(b))
	if err != nil {
		return nil, transportError(req, errors.Wrap(err, "rpc, request creation"))
	}
	hreq.Header.Set("Content-Type", "application/json; charset=utf-8")
	if c.User != "" {
		hreq.SetBasicAuth(c.User, c.Password)
	}

	hresp, err := c.http().Do(hreq)
	if err != nil {
		return nil, transportError(req, errors.Wrap(err, "rpc, request execution"))
	}
	defer hresp.Body.Close()
	if hresp.StatusCode < 200 || hresp.StatusCode > 299 {
		rerr := transportError(req, errors.Errorf("bad status %s", hresp.Status))
		rerr.Status = hresp.StatusCode
		return nil, rerr
	}

	resp := &Response{}
	if err := json.NewDecoder(hresp.Body).Decode(resp); err != nil {
		if ctx.Err() != nil {
			return nil, transportError(req, errors.Wrap(err, "rpc, response read"))
		}
		return nil, encodingError(req, errors.Wrap(err, "rpc, response json unmarshaling"))
	}
	return resp, nil
}
