// Package captcha abstracts the human-verification token the auth forms
// attach before credentials go out.
package captcha

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUnavailable = errors.New("verification service unavailable")

type Provider interface {
	// Token produces a verification token for the given action
	// (login, register). Failure aborts the surrounding submission.
	Token(ctx context.Context, action string) (string, error)
}

// HTTPProvider asks a token endpoint, the stand-in for the grecaptcha
// script the browser pages loaded.
type HTTPProvider struct {
	endpoint string
	siteKey  string
	httpc    *http.Client
}

func NewHTTPProvider(endpoint, siteKey string) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		siteKey:  siteKey,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Token(ctx context.Context, action string) (string, error) {
	if p.endpoint == "" {
		return "", fmt.Errorf("%w: no token endpoint configured", ErrUnavailable)
	}

	payload, err := json.Marshal(map[string]string{"site_key": p.siteKey, "action": action})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnavailable)
	}
	return body.Token, nil
}

// Static hands out a fixed token, for development against the stub server
// and for tests.
type Static struct {
	Value string
	Err   error
}

func (s Static) Token(context.Context, string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Value, nil
}
