// Package rpctest runs an in-process JSON-RPC node for tests.
package rpctest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sebamiro/bitcoinrpc/internal/rpc"
)

// Handler answers one request with an HTTP status and a raw body.
type Handler func(req rpc.Request) (status int, body string)

// Result replies with {"result": v, "error": null, "id": <request id>}.
func Result(v any) Handler {
	return func(req rpc.Request) (int, string) {
		b, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		return http.StatusOK, fmt.Sprintf(`{"result":%s,"error":null,"id":%d}`, b, req.ID)
	}
}

// Fail replies with a JSON-RPC error object and a null result.
func Fail(code int64, message string) Handler {
	return func(req rpc.Request) (int, string) {
		msg, _ := json.Marshal(message)
		return http.StatusOK, fmt.Sprintf(`{"result":null,"error":{"code":%d,"message":%s},"id":%d}`, code, msg, req.ID)
	}
}

// Raw replies with status and body verbatim.
func Raw(status int, body string) Handler {
	return func(rpc.Request) (int, string) {
		return status, body
	}
}

// Server is a fake node listening on a local httptest server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	requests []rpc.Request
}

type Option func(*options)

type options struct {
	user, password string
}

// WithBasicAuth rejects requests without the given credentials.
func WithBasicAuth(user, password string) Option {
	return func(o *options) {
		o.user = user
		o.password = password
	}
}

// NewServer starts a node and stops it when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{handlers: make(map[string]Handler)}

	r := chi.NewRouter()
	if o.user != "" {
		r.Use(middleware.BasicAuth("node", map[string]string{o.user: o.password}))
	}
	r.Post("/", s.serve)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Handle registers the reply for method.
func (s *Server) Handle(method string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
}

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() []rpc.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]rpc.Request(nil), s.requests...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	var req rpc.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"result":null,"error":{"code":-32700,"message":"Parse error"},"id":null}`)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	h, ok := s.handlers[req.Method]
	s.mu.Unlock()

	if !ok {
		h = Fail(-32601, "Method not found")
	}
	status, body := h(req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}
