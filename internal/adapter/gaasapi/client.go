package gaasapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/alanyang/gaas-console/internal/port/rest"
)

var _ rest.Executor = (*Client)(nil)

const (
	DefaultTimeout  = 30 * time.Second
	RequestIDHeader = "X-Request-ID"
)

// Client executes GaaS API requests over HTTP.
// Retry and circuit breaking are off unless enabled with options, in which case
// a single failed attempt still surfaces its own error value.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *slog.Logger
	maxTries uint
	interval time.Duration
	breaker  *gobreaker.CircuitBreaker

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRetry retries transport failures and 5xx/429 answers with exponential
// backoff, making at most maxTries attempts in total.
func WithRetry(maxTries uint) Option {
	return func(c *Client) { c.maxTries = maxTries }
}

// WithRetryInterval sets the first backoff delay. Later delays grow exponentially.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.interval = d }
}

// WithCircuitBreaker opens the circuit after more than failures consecutive
// upstream failures and probes again after openFor.
func WithCircuitBreaker(failures uint32, openFor time.Duration) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "gaas-api",
			MaxRequests: 1,
			Timeout:     openFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > failures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || !retryable(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.log().Info("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
		})
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxTries: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

func (c *Client) Execute(ctx context.Context, req rest.Request) (rest.Response, error) {
	var payload []byte
	if req.Body != nil {
		var err error
		if payload, err = json.Marshal(req.Body); err != nil {
			return rest.Response{}, fmt.Errorf("encoding request body: %w", err)
		}
	}

	if c.maxTries <= 1 {
		return c.guarded(ctx, req, payload)
	}

	op := func() (rest.Response, error) {
		resp, err := c.guarded(ctx, req, payload)
		if err != nil && !retryable(err) {
			return resp, backoff.Permanent(err)
		}
		return resp, err
	}
	resp, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.log().WarnContext(ctx, "gaas request failed, retrying",
				"method", req.Method, "path", req.Path, "retry_in", next, "error", err)
		}),
	)
	if perm, ok := err.(*backoff.PermanentError); ok {
		err = perm.Err
	}
	return resp, err
}

func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if c.interval > 0 {
		b.InitialInterval = c.interval
	}
	return b
}

func (c *Client) guarded(ctx context.Context, req rest.Request, payload []byte) (rest.Response, error) {
	if c.breaker == nil {
		return c.do(ctx, req, payload)
	}
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, req, payload)
	})
	if err != nil {
		return rest.Response{}, err
	}
	return out.(rest.Response), nil
}

func (c *Client) do(ctx context.Context, req rest.Request, payload []byte) (rest.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return rest.Response{}, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	httpReq.Header.Set(RequestIDHeader, requestID)
	if tok := c.Token(); tok != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return rest.Response{}, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return rest.Response{}, fmt.Errorf("reading response body: %w", err)
	}

	c.log().DebugContext(ctx, "gaas request",
		"method", req.Method,
		"path", req.Path,
		"status", httpResp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return rest.Response{}, rest.NewError(req.Method, req.Path, httpResp.StatusCode, data)
	}
	return rest.Response{Status: httpResp.StatusCode, Body: data}, nil
}

// retryable reports whether another attempt could succeed.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	var apiErr *rest.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}
