package session

import (
	"net/http/cookiejar"
	"net/url"
	"testing"

	"restaurant-admin/internal/models"
)

func testJar(t *testing.T) (*cookiejar.Jar, *url.URL) {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	base, err := url.Parse("http://localhost:8080/api")
	if err != nil {
		t.Fatal(err)
	}
	return jar, base
}

func TestStoreSaveLoadClear(t *testing.T) {
	jar, base := testJar(t)
	store := NewStore(jar, base)

	if store.Authenticated() {
		t.Fatal("fresh store must not be authenticated")
	}

	store.Save(models.UserProfile{Username: "admin", Roles: []string{RoleAdmin}})

	profile, ok := store.Load()
	if !ok {
		t.Fatal("expected a profile after Save")
	}
	if profile.Username != "admin" {
		t.Errorf("username = %q", profile.Username)
	}
	if !store.HasAnyRole(RoleAdmin, RoleStaff) {
		t.Error("expected admin role to match")
	}
	if store.HasAnyRole(RoleClient) {
		t.Error("client role should not match")
	}

	store.Clear()
	if store.Authenticated() {
		t.Error("store should be empty after Clear")
	}
}

func TestStoreRestoresFromCookie(t *testing.T) {
	jar, base := testJar(t)

	NewStore(jar, base).Save(models.UserProfile{Username: "staff", Roles: []string{RoleStaff}})

	// a second store over the same jar sees only the cookie
	restored := NewStore(jar, base)
	profile, ok := restored.Load()
	if !ok {
		t.Fatal("expected the cookie mirror to restore the profile")
	}
	if profile.Username != "staff" || len(profile.Roles) != 1 || profile.Roles[0] != RoleStaff {
		t.Errorf("restored profile = %+v", profile)
	}
}

type recordingNav struct {
	pages []string
}

func (n *recordingNav) Navigate(page string) { n.pages = append(n.pages, page) }

func TestGuardRejectsMissingSession(t *testing.T) {
	jar, base := testJar(t)
	store := NewStore(jar, base)
	nav := &recordingNav{}
	guard := NewGuard(store, nav, "login")

	if guard.Require() {
		t.Error("guard should reject without a session")
	}
	if len(nav.pages) != 1 || nav.pages[0] != "login" {
		t.Errorf("expected redirect to login, got %v", nav.pages)
	}
}

func TestGuardRejectsMissingRole(t *testing.T) {
	jar, base := testJar(t)
	store := NewStore(jar, base)
	store.Save(models.UserProfile{Username: "c", Roles: []string{RoleClient}})
	nav := &recordingNav{}
	guard := NewGuard(store, nav, "login")

	if guard.Require(RoleAdmin, RoleStaff) {
		t.Error("client session should not pass an admin guard")
	}
	if store.Authenticated() {
		t.Error("rejected session should be cleared")
	}
	if len(nav.pages) != 1 || nav.pages[0] != "login" {
		t.Errorf("expected redirect to login, got %v", nav.pages)
	}
}

func TestGuardAcceptsMatchingRole(t *testing.T) {
	jar, base := testJar(t)
	store := NewStore(jar, base)
	store.Save(models.UserProfile{Username: "a", Roles: []string{RoleAdmin}})
	nav := &recordingNav{}
	guard := NewGuard(store, nav, "login")

	if !guard.Require(RoleAdmin, RoleStaff) {
		t.Error("admin session should pass")
	}
	if len(nav.pages) != 0 {
		t.Errorf("no redirect expected, got %v", nav.pages)
	}
}
