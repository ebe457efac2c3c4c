// Package apsclient talks to the APS scheduling backend over its REST API.
package apsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is where a locally started backend listens.
const DefaultBaseURL = "http://localhost:8000/api"

// Call describes one completed backend round-trip for observers.
type Call struct {
	Operation string
	Method    string
	Path      string
	Status    int
	Duration  time.Duration
	Err       error
}

// Hook observes completed calls. Hooks run synchronously on the calling goroutine.
type Hook func(Call)

// RequestEditor mutates outgoing requests, e.g. to forward a request id.
type RequestEditor func(ctx context.Context, req *http.Request)

// Client wraps the backend REST API. It adds no timeout of its own; callers
// bound requests through the context they pass in.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	hooks      []Hook
	editors    []RequestEditor
	now        func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHook registers an observer for every round-trip.
func WithHook(h Hook) Option {
	return func(c *Client) {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
}

// WithRequestEditor registers a function applied to every outgoing request.
func WithRequestEditor(fn RequestEditor) Option {
	return func(c *Client) {
		if fn != nil {
			c.editors = append(c.editors, fn)
		}
	}
}

// WithClock overrides the clock used to date export filenames.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a client for baseURL; an empty baseURL means DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one backend call.
type request struct {
	operation   string
	kind        Kind
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// do executes req and returns the response for the caller to consume. Any
// non-2xx status is converted to a *StatusError and the body is closed.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", r.operation, err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	for _, edit := range c.editors {
		edit(ctx, req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	call := Call{Operation: r.operation, Method: r.method, Path: r.path, Duration: time.Since(start)}
	if err != nil {
		call.Err = err
		c.observe(call)
		c.logger.Warn("backend request failed", zap.String("operation", r.operation), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", r.operation, err)
	}
	call.Status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		statusErr := &StatusError{Kind: r.kind, Operation: r.operation, Status: resp.StatusCode, Body: string(body)}
		call.Err = statusErr
		c.observe(call)
		c.logger.Warn("backend returned error status",
			zap.String("operation", r.operation),
			zap.Int("status", resp.StatusCode),
		)
		return nil, statusErr
	}

	c.observe(call)
	c.logger.Debug("backend request completed",
		zap.String("operation", r.operation),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", call.Duration),
	)
	return resp, nil
}

// doJSON executes a JSON API call and decodes the response into out.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, in, out interface{}) error {
	r := request{operation: operation, kind: KindAPI, method: method, path: path, contentType: "application/json"}
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", operation, err)
		}
		r.body = bytes.NewReader(payload)
	}

	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}

func (c *Client) observe(call Call) {
	for _, hook := range c.hooks {
		hook(call)
	}
}
