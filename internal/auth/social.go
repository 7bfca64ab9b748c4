package auth

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-jwt/jwt/v5"

	"restaurant-admin/internal/models"
)

// ErrBadToken reports a social sign-in token whose claims could not be read.
var ErrBadToken = errors.New("unusable sign-in token")

// socialClaims is the slice of the provider token payload the redirect
// decision needs.
type socialClaims struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// HandleAuthCallback processes the query parameters an OAuth provider
// redirect carries back to the login page. An error parameter is surfaced to
// the user; a token parameter completes the sign-in.
func (f *Flow) HandleAuthCallback(params url.Values) error {
	if msg := params.Get("error"); msg != "" {
		f.screen.Error(msg)
	}
	token := params.Get("token")
	if token == "" {
		return nil
	}
	return f.CompleteSocialSignIn(token)
}

// CompleteSocialSignIn accepts a token the backend issued after an OAuth
// hand-off, opens the local session from its claims and redirects by role.
// The token is decoded without signature verification; the backend already
// authenticated the bearer before redirecting here. A second completion
// arriving while one is running is dropped.
func (f *Flow) CompleteSocialSignIn(token string) error {
	f.mu.Lock()
	if f.completing {
		f.mu.Unlock()
		return ErrThrottled
	}
	f.completing = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.completing = false
		f.mu.Unlock()
	}()

	claims := &socialClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		f.screen.Error("Sign-in could not be completed. Please sign in again.")
		f.nav.Navigate(f.pages.Menu)
		return fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(f.now()) {
		f.screen.Error("Your sign-in link expired. Please sign in again.")
		return fmt.Errorf("%w: token expired", ErrBadToken)
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	f.sessions.Save(models.UserProfile{
		Username: username,
		Email:    claims.Email,
		Roles:    claims.Roles,
	})

	f.screen.Success("Signed in with your social account. Redirecting...")
	f.nav.Navigate(f.RedirectFor(claims.Roles))
	return nil
}
