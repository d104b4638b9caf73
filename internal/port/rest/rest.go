package rest

import (
	"context"
)

//go:generate mockgen -destination=../../mocks/mock_rest.go -package=mocks -mock_names=Executor=MockRestExecutor . Executor

// Request is one call against the GaaS API. Path is relative to the API base URL.
// Body, when non-nil, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Response is the raw outcome of a successful (2xx) exchange.
type Response struct {
	Status int
	Body   []byte
}

// Executor performs a single HTTP exchange.
// [DIP] repositories depend on this interface, not on net/http.
// Non-2xx responses are returned as *Error; transport failures are returned as-is.
type Executor interface {
	Execute(ctx context.Context, req Request) (Response, error)
}
