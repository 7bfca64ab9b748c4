package session

import "restaurant-admin/internal/ui"

// Guard runs at page entry. Missing or under-privileged descriptors are
// cleared and sent back to the login page.
type Guard struct {
	store     *Store
	nav       ui.Navigator
	loginPage string
}

func NewGuard(store *Store, nav ui.Navigator, loginPage string) *Guard {
	return &Guard{store: store, nav: nav, loginPage: loginPage}
}

// Require reports whether the current session holds any of the given roles.
// With no roles it only checks that a session exists.
func (g *Guard) Require(roles ...string) bool {
	if _, ok := g.store.Load(); !ok {
		g.reject()
		return false
	}
	if len(roles) == 0 {
		return true
	}
	if !g.store.HasAnyRole(roles...) {
		g.reject()
		return false
	}
	return true
}

func (g *Guard) reject() {
	g.store.Clear()
	g.nav.Navigate(g.loginPage)
}
