// Package backend is the REST client for the advisory backend.
//
// Every call carries the browser session's bearer token and cookie jar taken
// from the request context, runs under a bounded timeout, and is traced.
// Non-2xx responses become *StatusError values whose bodies are logged but
// never surfaced to users.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTimeout caps one backend request when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	maxErrorBodyBytes    = 2 << 10
	maxResponseBodyBytes = 4 << 20
	tracerName           = "github.com/louisbranch/studyabroad/internal/services/web/integration/backend"
)

// StatusError is a non-2xx backend response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

// Error renders the failure without the response body.
func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.Code)
}

// StatusCode returns the HTTP status reported by the backend.
func (e *StatusError) StatusCode() int {
	return e.Code
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client. Its Jar is ignored; each
// call uses the jar of the calling session.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each backend call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Client issues JSON requests against the backend base URL.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
}

// New builds a client for baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url must be http or https: %q", baseURL)
	}
	base.Path = strings.TrimRight(base.Path, "/")
	base.RawPath = ""

	c := &Client{
		base:    base,
		http:    &http.Client{Transport: http.DefaultTransport},
		timeout: DefaultTimeout,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the backend root this client targets.
func (c *Client) BaseURL() *url.URL {
	copied := *c.base
	return &copied
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends one request. A nil out discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if c == nil {
		return errors.New("backend client is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "backend "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	err := c.do(ctx, span, method, path, query, body, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(ctx context.Context, span trace.Span, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	hc := *c.http
	hc.Jar = nil
	if principal, ok := PrincipalFromContext(ctx); ok {
		if token := strings.TrimSpace(principal.Token); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		hc.Jar = principal.Jar
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		statusErr := &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		log.Printf("web: backend request failed method=%s path=%s status=%d body=%q", method, path, resp.StatusCode, statusErr.Body)
		return statusErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodyBytes))
		return nil
	}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err := decoder.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	target := *c.base
	raw := c.base.EscapedPath() + "/" + strings.TrimLeft(path, "/")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		target.Path = unescaped
		target.RawPath = raw
	} else {
		target.Path = raw
		target.RawPath = ""
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target.String()
}

// PathSegment escapes one dynamic path segment for use in a Do path.
func PathSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
