package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurant-admin/internal/logger"
	"restaurant-admin/internal/sanitize"
)

const csrfCookieName = "XSRF-TOKEN"

// AuthFailureHandler runs when the backend answers 401/403. The wiring layer
// installs session teardown plus navigation to the login page here.
type AuthFailureHandler func()

type Client struct {
	base    *url.URL
	httpc   *http.Client
	jar     http.CookieJar
	log     *logger.Logger
	limiter *RateLimiter

	onAuthFailure AuthFailureHandler
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func New(baseURL string, timeout time.Duration, maxPerMinute int, log *logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		base:    base,
		httpc:   &http.Client{Timeout: timeout, Jar: jar},
		jar:     jar,
		log:     log,
		limiter: NewRateLimiter(maxPerMinute),
	}, nil
}

func (c *Client) SetAuthFailureHandler(fn AuthFailureHandler) { c.onAuthFailure = fn }

func (c *Client) BaseURL() *url.URL { return c.base }

func (c *Client) Jar() http.CookieJar { return c.jar }

func (c *Client) Close() { c.limiter.Stop() }

// CSRFToken reads the XSRF-TOKEN cookie the backend issued into the jar.
func (c *Client) CSRFToken() string {
	for _, ck := range c.jar.Cookies(c.base) {
		if ck.Name == csrfCookieName {
			return ck.Value
		}
	}
	return ""
}

// Do issues one JSON request. A nil out skips decoding, so callers can ignore
// bodies they do not care about. 204 always resolves without decoding.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.DoRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// DoRaw is Do without the decode step. The orders endpoint answers creates
// with a plain-text body the caller has to pick an id out of.
func (c *Client) DoRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	if !c.limiter.Allow() {
		return nil, fmt.Errorf("%w: please wait a moment before trying again", ErrRateLimited)
	}

	var reader io.Reader
	if body != nil && (method == http.MethodPost || method == http.MethodPut) {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)
		}
		if !strings.HasPrefix(path, "/auth") {
			encoded = sanitizePayload(encoded)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token := c.CSRFToken(); token != "" {
		req.Header.Set("X-CSRF-TOKEN", token)
	}

	c.log.Debug(requestID, "api_request", method+" "+path, nil)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error(requestID, "api_request", "transport failure", err, map[string]any{"path": path})
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		return nil, fmt.Errorf("%w: please sign in again", ErrUnauthorized)

	case resp.StatusCode == http.StatusNoContent:
		return nil, nil

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, c.normalizeError(requestID, path, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}
	return raw, nil
}

// sanitizePayload runs the legacy input filter over every string in an
// encoded body. Credential payloads never come through here: passwords have
// to reach the backend byte for byte.
func sanitizePayload(encoded []byte) []byte {
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return encoded
	}
	cleaned, err := json.Marshal(sanitize.Value(payload))
	if err != nil {
		return encoded
	}
	return cleaned
}

func (c *Client) normalizeError(requestID, path string, resp *http.Response) error {
	message := resp.Status

	var eb errorBody
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil && len(raw) > 0 {
		if json.Unmarshal(raw, &eb) == nil {
			if eb.Message != "" {
				message = eb.Message
			} else if eb.Error != "" {
				message = eb.Error
			}
		}
	}

	c.log.Error(requestID, "api_request", "backend rejected request", fmt.Errorf("%s", message),
		map[string]any{"path": path, "status": resp.StatusCode})

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidInput, message)
	default:
		return fmt.Errorf("%w: %s", ErrBackend, message)
	}
}
