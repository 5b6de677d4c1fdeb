package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Client is a small consumer for the portfolio API. FetchAll caches the
// snapshot, and the typed mutation methods apply each successful edit to
// that local mirror, so a caller sees its own writes without a refetch.
// The untyped Do drops the cache instead. A failed read falls back to
// DefaultPortfolio so a renderer always has something to show.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu       sync.Mutex
	token    string
	data     *Portfolio
	inflight chan struct{}
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll returns the content snapshot. Concurrent callers share one
// request. On failure the default portfolio is returned along with the
// error, never nil.
func (c *Client) FetchAll(ctx context.Context) (*Portfolio, error) {
	c.mu.Lock()
	if c.data != nil {
		p := c.data
		c.mu.Unlock()
		return p, nil
	}
	if c.inflight != nil {
		ch := c.inflight
		c.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return DefaultPortfolio(), ctx.Err()
		}
		c.mu.Lock()
		p := c.data
		c.mu.Unlock()
		if p == nil {
			return DefaultPortfolio(), fmt.Errorf("portfolio fetch failed")
		}
		return p, nil
	}
	ch := make(chan struct{})
	c.inflight = ch
	c.mu.Unlock()

	p, err := c.fetch(ctx)

	c.mu.Lock()
	if err == nil {
		c.data = p
	}
	c.inflight = nil
	close(ch)
	c.mu.Unlock()

	if err != nil {
		return DefaultPortfolio(), err
	}
	return p, nil
}

func (c *Client) fetch(ctx context.Context) (*Portfolio, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/portfolio", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portfolio fetch: unexpected status %d", resp.StatusCode)
	}
	var p Portfolio
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("portfolio fetch: decode: %w", err)
	}
	return &p, nil
}

type actionRequest struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// Do runs one named action and returns the raw result body. Mutations drop
// the cached snapshot so the next FetchAll sees fresh data; prefer the typed
// methods, which keep the mirror current instead.
func (c *Client) Do(ctx context.Context, action, id string, data any) (json.RawMessage, error) {
	raw, err := c.post(ctx, actionRequest{Action: action, ID: id, Data: data})
	if err != nil {
		return nil, err
	}
	c.invalidate()
	return json.RawMessage(raw), nil
}

// post returns the response body. Action results are the body itself, not an
// envelope; on a non-2xx status the body carries {error, message}.
func (c *Client) post(ctx context.Context, req actionRequest) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/portfolio/actions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.mu.Lock()
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.Unlock()

	httpResp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("action %s: read response: %w", req.Action, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		var failure struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &failure)
		msg := failure.Message
		if msg == "" {
			msg = failure.Error
		}
		return nil, fmt.Errorf("action %s: %s (status %d)", req.Action, msg, httpResp.StatusCode)
	}
	return raw, nil
}

func (c *Client) invalidate() {
	c.mu.Lock()
	c.data = nil
	c.mu.Unlock()
}

// Login exchanges the admin password for a token used on later requests.
func (c *Client) Login(ctx context.Context, password string) error {
	raw, err := c.post(ctx, actionRequest{
		Action: "login",
		Data:   map[string]string{"password": password},
	})
	if err != nil {
		return err
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("login: decode result: %w", err)
	}
	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return nil
}

// CheckAuth reports whether the stored token is still accepted.
func (c *Client) CheckAuth(ctx context.Context) (bool, error) {
	raw, err := c.post(ctx, actionRequest{Action: "checkAuth"})
	if err != nil {
		return false, err
	}
	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return false, fmt.Errorf("checkAuth: decode result: %w", err)
	}
	return resp.Authenticated, nil
}

// SetTheme applies the theme locally first so the UI flips immediately, then
// persists it. The local value stands even if persisting fails.
func (c *Client) SetTheme(ctx context.Context, theme string) error {
	c.mu.Lock()
	if c.data != nil {
		c.data.Profile.Theme = theme
	}
	c.mu.Unlock()

	_, err := c.post(ctx, actionRequest{
		Action: "updateTheme",
		Data:   map[string]string{"theme": theme},
	})
	return err
}
