package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const (
	ResourceGraphs     = "graphs"
	ResourceNamespaces = "namespaces"
	ResourceAuth       = "auth"
)

// Client builds requests fluently and hands them to an Executor:
//
//	rest.NewClient(exec).Post().Graphs().RequestBody(body).Execute(ctx)
//	rest.NewClient(exec).Get().Graphs(graphID).Execute(ctx)
type Client struct {
	exec Executor
}

func NewClient(exec Executor) *Client {
	return &Client{exec: exec}
}

func (c *Client) Get() *Builder    { return c.method(http.MethodGet) }
func (c *Client) Post() *Builder   { return c.method(http.MethodPost) }
func (c *Client) Delete() *Builder { return c.method(http.MethodDelete) }

func (c *Client) method(m string) *Builder {
	return &Builder{exec: c.exec, method: m}
}

// Builder accumulates one request. It is not safe for concurrent use; start a
// new chain from Client for every call.
type Builder struct {
	exec     Executor
	method   string
	segments []string
	body     any
}

// Graphs targets the graphs resource, or graphs/{id} when an id is given.
func (b *Builder) Graphs(graphID ...string) *Builder {
	return b.resource(ResourceGraphs, graphID...)
}

func (b *Builder) Namespaces() *Builder {
	return b.resource(ResourceNamespaces)
}

func (b *Builder) Auth() *Builder {
	return b.resource(ResourceAuth)
}

func (b *Builder) resource(name string, params ...string) *Builder {
	b.segments = append(b.segments, name)
	for _, p := range params {
		b.segments = append(b.segments, url.PathEscape(p))
	}
	return b
}

func (b *Builder) RequestBody(body any) *Builder {
	b.body = body
	return b
}

// Request returns the request the chain describes without sending it.
func (b *Builder) Request() Request {
	return Request{
		Method: b.method,
		Path:   "/" + strings.Join(b.segments, "/"),
		Body:   b.body,
	}
}

func (b *Builder) Execute(ctx context.Context) (Response, error) {
	return b.exec.Execute(ctx, b.Request())
}
