// Package httpapi implements the fetch gateway: authenticated JSON requests
// against the dashboard backend with cache-bust parameter injection and a
// uniform error taxonomy.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// errorBody is the optional JSON shape of backend error responses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client implements ports.Gateway over net/http.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     ports.TokenStore
	registry   *cache.Registry
	tracer     ports.Tracer
}

// NewClient creates a gateway for the given backend base URL.
func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenStore, registry *cache.Registry, tracer ports.Tracer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		registry:   registry,
		tracer:     tracer,
	}
}

// NewClientWithHTTPClient creates a gateway with a custom http client (used for testing).
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client, tokens ports.TokenStore, registry *cache.Registry, tracer ports.Tracer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		registry:   registry,
		tracer:     tracer,
	}
}

// Request issues an authenticated JSON request and decodes the response into
// out. The session credential is resolved first: without one the request
// fails with domain.ErrUnauthenticated before any network I/O. The current
// cache-bust fragment is appended to the path, using ? or & depending on
// whether the path already carries a query string.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "gateway.request")
	defer span.End()
	span.SetAttribute("http.method", method)
	span.SetAttribute("http.path", path)

	token, err := c.tokens.Token()
	if err != nil {
		span.RecordError(err)
		return err
	}
	if token == "" {
		span.RecordError(domain.ErrUnauthenticated)
		return domain.ErrUnauthenticated
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			span.RecordError(err)
			return zerr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + c.withBust(path)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := zerr.With(domain.ErrNetwork, "cause", err.Error())
		span.RecordError(netErr)
		return netErr
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttribute("http.status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reqErr := zerr.With(domain.ErrRequestFailed, "status", resp.StatusCode)
		reqErr = zerr.With(reqErr, "message", serverMessage(resp.Body))
		span.RecordError(reqErr)
		return reqErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		decodeErr := zerr.With(domain.ErrDecodeFailed, "cause", err.Error())
		span.RecordError(decodeErr)
		return decodeErr
	}
	return nil
}

// withBust appends the registry's cache-bust fragment to the path. At cache
// version 0 the path is returned unchanged.
func (c *Client) withBust(path string) string {
	if strings.Contains(path, "?") {
		return path + c.registry.BustParam()
	}
	return path + c.registry.BustQuery()
}

// serverMessage extracts the human-readable message from an error response
// body, falling back to a generic message when the body is not JSON.
func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return "server returned an error"
	}

	var parsed errorBody
	if err := json.Unmarshal(data, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return "server returned an error"
}

var _ ports.Gateway = (*Client)(nil)
