// Package api is the single HTTP client every resource service goes
// through. It injects the bearer token, unwraps the {data, message, error}
// response envelope, classifies failures into one uniform error shape, and
// performs the global forced-logout side effect on 401.
package api

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

	"github.com/google/uuid"

	"github.com/ryan-hugo/cliq-cli/internal/client/session"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// envelope is the wrapper some endpoints put around their payload. A 2xx
// body either matches this shape with data set, or is the payload itself;
// anything else is rejected instead of guessed at.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// Client is the configured HTTP adapter. One instance is shared by all
// services; it holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     logging.Logger

	// onUnauthorized is the navigation hook fired after a 401 cleared a
	// live session. Invoked at most once per forced logout, regardless of
	// how many concurrent requests saw the 401.
	onUnauthorized func()
}

// New builds a Client for the given API base URL. The timeout applies
// uniformly to every request; expiry surfaces as a network-class error.
func New(baseURL string, timeout time.Duration, store session.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// OnUnauthorized registers the forced-logout navigation hook.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Get issues a GET for path with optional query parameters, decoding the
// (unwrapped) payload into out. Pass a nil out to discard the payload.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body. A nil body sends no payload.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE for path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return &Error{Kind: KindClient, Message: fmt.Sprintf("invalid request URL: %v", err)}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindClient, Message: fmt.Sprintf("cannot encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return &Error{Kind: KindClient, Message: fmt.Sprintf("cannot build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.store.Get(session.KeyToken); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed before response", "method", method, "path", path, "error", err)
		return &Error{Kind: KindNetwork, Message: "cannot reach the server", Status: 0}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "response truncated", Status: 0}
	}

	c.log.Debug(ctx, "response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return decodePayload(respBody, out)
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL %q is not absolute", c.baseURL)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// statusError maps a non-2xx response to a server-class error and runs the
// 401 side effect. The session is cleared synchronously; the navigation
// hook fires only for the request whose clear actually removed a token, so
// a burst of concurrent 401s navigates exactly once.
func (c *Client) statusError(status int, body []byte) error {
	var env envelope
	_ = json.Unmarshal(body, &env)

	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	if msg == "" {
		msg = "server error"
	}

	if status == http.StatusUnauthorized {
		if c.store.Clear() && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	return &Error{Kind: KindServer, Message: msg, Status: status, Code: env.Code}
}

// decodePayload unwraps the envelope when data is present, otherwise treats
// the whole body as the payload. A body matching neither shape is rejected.
func decodePayload(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindClient, Message: fmt.Sprintf("unexpected response shape: %v", err)}
		}
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindClient, Message: fmt.Sprintf("unexpected response shape: %v", err)}
	}
	return nil
}
