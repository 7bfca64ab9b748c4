package stubserver

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"restaurant-admin/internal/logger"
)

const (
	csrfCookieName    = "XSRF-TOKEN"
	csrfHeaderName    = "X-CSRF-TOKEN"
	sessionCookieName = "SESSION"
)

// Server is an in-memory stand-in for the restaurant backend, used for local
// development and tests. It speaks the same routes, cookies and error bodies
// the real API does.
type Server struct {
	store *memoryStore
	log   *logger.Logger

	mu       sync.Mutex
	sessions map[string]account
}

func New(log *logger.Logger) *Server {
	return &Server{
		store:    newMemoryStore(),
		log:      log,
		sessions: make(map[string]account),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.issueCSRFCookie)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", s.signIn)
			r.Post("/signup", s.signUp)
			r.Post("/signout", s.signOut)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Use(s.requireCSRF)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", s.listClients)
				r.Get("/search", s.searchClients)
				r.Get("/{id}", s.getClient)
				r.Post("/", s.createClient)
				r.Put("/{id}", s.updateClient)
				r.Delete("/{id}", s.deleteClient)
			})

			r.Route("/menu", func(r chi.Router) {
				r.Get("/", s.listDishes)
				r.Get("/search", s.searchDishes)
				r.Get("/{id}", s.getDish)
				r.Post("/", s.createDish)
				r.Put("/{id}", s.updateDish)
				r.Delete("/{id}", s.deleteDish)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", s.listEmployees)
				r.Get("/search", s.searchEmployees)
				r.Get("/{id}", s.getEmployee)
				r.Post("/", s.createEmployee)
				r.Put("/{id}", s.updateEmployee)
				r.Delete("/{id}", s.deleteEmployee)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", s.listOrders)
				r.Get("/{id}", s.getOrder)
				r.Post("/", s.createOrder)
				r.Put("/{id}", s.updateOrder)
				r.Put("/{id}/status", s.updateOrderStatus)
				r.Delete("/{id}", s.deleteOrder)
			})

			r.Route("/order-details", func(r chi.Router) {
				r.Get("/order/{orderID}", s.detailsForOrder)
				r.Post("/", s.createDetail)
				r.Delete("/{id}", s.deleteDetail)
			})
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug(r.Header.Get("X-Request-Id"), "http_request", r.Method+" "+r.URL.Path, nil)
		next.ServeHTTP(w, r)
	})
}

// issueCSRFCookie hands out a fresh XSRF-TOKEN cookie to any caller that does
// not have one yet. The token itself is opaque, mutation requests just have to
// echo it back in the X-CSRF-TOKEN header.
func (s *Server) issueCSRFCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(csrfCookieName); err != nil {
			http.SetCookie(w, &http.Cookie{
				Name:  csrfCookieName,
				Value: uuid.NewString(),
				Path:  "/",
			})
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(csrfCookieName)
		if err != nil || cookie.Value == "" || r.Header.Get(csrfHeaderName) != cookie.Value {
			writeError(w, http.StatusForbidden, "csrf_mismatch", "invalid or missing CSRF token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		s.mu.Lock()
		_, ok := s.sessions[cookie.Value]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "session expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) openSession(w http.ResponseWriter, acc account) {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = acc
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
}

func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func normalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		role = strings.ToUpper(role)
		if !strings.HasPrefix(role, "ROLE_") {
			role = "ROLE_" + role
		}
		out = append(out, role)
	}
	return out
}
