package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"restaurant-admin/internal/models"
)

const (
	RoleAdmin  = "ROLE_ADMIN"
	RoleStaff  = "ROLE_STAFF"
	RoleClient = "ROLE_CLIENT"

	userDataCookie = "userData"
)

// Store holds the session descriptor for the lifetime of the process and
// mirrors it into a userData cookie on the jar, so a descriptor lost from
// memory can be restored as long as the cookie survives.
type Store struct {
	mu         sync.Mutex
	jar        http.CookieJar
	base       *url.URL
	descriptor *models.UserProfile
}

func NewStore(jar http.CookieJar, base *url.URL) *Store {
	return &Store{jar: jar, base: base}
}

func (s *Store) Save(profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.descriptor = &profile

	if encoded, err := json.Marshal(profile); err == nil {
		s.jar.SetCookies(s.base, []*http.Cookie{{
			Name:  userDataCookie,
			Value: url.QueryEscape(string(encoded)),
			Path:  "/",
		}})
	}
}

// Load returns the descriptor, falling back to the cookie mirror and
// restoring it into memory on a hit.
func (s *Store) Load() (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.descriptor != nil {
		copied := *s.descriptor
		return &copied, true
	}

	for _, ck := range s.jar.Cookies(s.base) {
		if ck.Name != userDataCookie || ck.Value == "" {
			continue
		}
		raw, err := url.QueryUnescape(ck.Value)
		if err != nil {
			continue
		}
		var profile models.UserProfile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			continue
		}
		s.descriptor = &profile
		copied := profile
		return &copied, true
	}

	return nil, false
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.descriptor = nil
	s.jar.SetCookies(s.base, []*http.Cookie{{
		Name:   userDataCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	}})
}

func (s *Store) Authenticated() bool {
	_, ok := s.Load()
	return ok
}

func (s *Store) Roles() []string {
	profile, ok := s.Load()
	if !ok {
		return nil
	}
	return profile.Roles
}

func (s *Store) HasAnyRole(roles ...string) bool {
	held := s.Roles()
	for _, want := range roles {
		for _, have := range held {
			if want == have {
				return true
			}
		}
	}
	return false
}
