// Package burgerapi talks to the remote burger backend: it fetches the
// ingredient catalog and places orders.
package burgerapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const defaultTimeout = 10 * time.Second

// TokenSource returns the Authorization header value for the caller in ctx,
// or "" when there is none.
type TokenSource func(ctx context.Context) string

// Config holds client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Token is used for order placement. Optional.
	Token TokenSource
}

// Client implements ports.CatalogService and ports.OrderPlacer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	token := cfg.Token
	if token == nil {
		token = func(context.Context) string { return "" }
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

// do sends the request and returns the status code with the parsed JSON body.
func (c *Client) do(req *http.Request) (int, gjson.Result, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, gjson.Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, gjson.Result{}, fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return resp.StatusCode, gjson.Result{}, fmt.Errorf("invalid JSON response: %s", resp.Status)
	}

	return resp.StatusCode, gjson.ParseBytes(body), nil
}

func isOK(status int, body gjson.Result) bool {
	return status >= 200 && status < 300 && body.Get("success").Bool()
}
