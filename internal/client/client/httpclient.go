package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/common"
	"github.com/dmitrijs2005/authclient/internal/logging"
	"github.com/google/uuid"
)

// Endpoint paths relative to the API base.
const (
	PathRoot     = "/"
	PathRegister = "/register/"
	PathLogin    = "/login/"
	PathLogout   = "/logout/"
	PathProfile  = "/profile/"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient validates baseURL (e.g. "http://localhost:8000/api/auth")
// and returns a client for it.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api url %q: missing host", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Origin returns "scheme://host[:port]" of an API base URL, the part shown to
// users in connectivity messages. Unparseable input is returned unchanged.
func Origin(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Scheme + "://" + u.Host
}

// call describes one request. okStatus 0 accepts any 2xx.
type call struct {
	method   string
	path     string
	token    string
	body     any
	out      any
	okStatus int
}

func (c *HTTPClient) do(ctx context.Context, cl call) error {
	reqID := uuid.NewString()
	log := c.log.With("request_id", reqID, "method", cl.method, "path", cl.path)

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if cl.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.TokenHeaderValue(cl.token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode, "bytes", len(data))

	if !accepted(resp.StatusCode, cl.okStatus) {
		return c.apiError(resp.StatusCode, data)
	}

	if cl.out == nil {
		return nil
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

func accepted(status, want int) bool {
	if want != 0 {
		return status == want
	}
	return status >= 200 && status < 300
}

func (c *HTTPClient) apiError(status int, data []byte) error {
	apiErr := &APIError{Status: status}
	if len(bytes.TrimSpace(data)) == 0 {
		return apiErr
	}
	if err := json.Unmarshal(data, &apiErr.Errors); err != nil {
		// a 401 is meaningful without a body; anything else we cannot read
		if status == http.StatusUnauthorized {
			return apiErr
		}
		return fmt.Errorf("%w: decode error body (status %d): %v", ErrUnavailable, status, err)
	}
	return apiErr
}

func (c *HTTPClient) Register(ctx context.Context, r RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: PathRegister, body: r, out: &resp}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login only accepts 200, matching the server contract.
func (c *HTTPClient) Login(ctx context.Context, r LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, call{method: http.MethodPost, path: PathLogin, body: r, out: &resp, okStatus: http.StatusOK})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, call{method: http.MethodPost, path: PathLogout, token: token})
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, call{method: http.MethodGet, path: PathProfile, token: token, out: &p}); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Ping(ctx context.Context) (*APIRoot, error) {
	var root APIRoot
	if err := c.do(ctx, call{method: http.MethodGet, path: PathRoot, out: &root}); err != nil {
		return nil, err
	}
	return &root, nil
}
