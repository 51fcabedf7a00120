package apiclient

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

	apperrors "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/errors"
)

// ClientOptions groups configuration for the backend client.
type ClientOptions struct {
	// BaseURL of the inventory backend, e.g. http://localhost:8081.
	BaseURL string
	// Timeout per request. Defaults to 30s.
	Timeout time.Duration
	// Interceptor wiring. The interceptor is installed exactly once by
	// construction.
	Notifier  Notifier
	Navigator Navigator
	Sessions  SessionInvalidator
	Routes    Routes
}

// Client is the intercepted REST client for the inventory backend. All
// backend traffic in the process goes through a single Client, so the
// interceptor's global semantics hold by construction.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client with the interceptor transport installed.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base URL %q must be absolute", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	Install(httpClient, InterceptorOptions{
		Notifier:  opts.Notifier,
		Navigator: opts.Navigator,
		Sessions:  opts.Sessions,
		Routes:    opts.Routes,
	})

	return &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		http:    httpClient,
	}, nil
}

// HTTPClient exposes the underlying intercepted client for callers that need
// raw access (tests, passthrough handlers).
func (c *Client) HTTPClient() *http.Client { return c.http }

// Get issues a GET and decodes the JSON response into out when non-nil.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "backend request canceled")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "backend unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			return apperrors.Wrap(decodeErr, apperrors.ErrCodeUpstream, "decode backend response")
		}
	}
	return nil
}

// statusError maps a failure response to an AppError. The interceptor has
// already fired its side effects; this is the error the call site observes.
func statusError(resp *http.Response) error {
	msg := serverMessage(resp)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.Unauthenticated(fallback(msg, msgSessionExpired))
	case http.StatusForbidden:
		return apperrors.Forbidden(fallback(msg, msgNotAuthorized))
	case http.StatusNotFound:
		return apperrors.NotFound(fallback(msg, "recurso não encontrado"))
	default:
		if resp.StatusCode >= 500 {
			return apperrors.Upstream(fallback(msg, msgServerError))
		}
		return apperrors.Upstream(fallback(msg, msgUnexpected))
	}
}
