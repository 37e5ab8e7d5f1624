// Package remote is the HTTP client for the system of record. Every
// mutating intent in the application goes through here before any local
// state changes; the records it returns are canonical and may differ
// from what was sent (the authority can replace a proposed id).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"clinic-ops-client/config"
	"clinic-ops-client/pkg/apierr"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(cfg config.RemoteConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// SetToken installs the bearer token sent on every subsequent request
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken drops the bearer token (logout)
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request and maps the response onto the error taxonomy:
// 409 becomes ConflictError, 401 becomes AuthError, and any other
// non-2xx becomes a NetworkError carrying the body text. A 2xx with
// out == nil (or a 204) is a body-less success.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Request %s %s failed: %v", method, path, err)
		return &apierr.NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		message := strings.TrimSpace(string(text))
		if message == "" {
			message = resp.Status
		}

		switch resp.StatusCode {
		case http.StatusConflict:
			// The authority saw a booking this client has not: translate
			// to the same outcome as a local conflict.
			return apierr.NewConflict()
		case http.StatusUnauthorized:
			return &apierr.AuthError{Message: message}
		default:
			c.log.Warnf("Request %s %s rejected: %d %s", method, path, resp.StatusCode, message)
			return &apierr.NetworkError{StatusCode: resp.StatusCode, Message: message}
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
