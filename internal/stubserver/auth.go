package stubserver

import (
	"net/http"

	"restaurant-admin/internal/models"
)

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	if req.UsernameOrEmail == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "username and password are required")
		return
	}

	acc, ok := s.store.authenticate(req.UsernameOrEmail, req.Password)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_credentials", "Invalid username or password")
		return
	}

	s.openSession(w, acc)
	writeJSON(w, http.StatusOK, models.UserProfile{
		Username: acc.Username,
		Email:    acc.Email,
		Roles:    acc.Roles,
	})
}

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "username, email and password are required")
		return
	}

	staff := false
	for _, role := range req.Roles {
		if role == "staff" {
			staff = true
		}
	}

	acc := account{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    normalizeRoles(req.Roles),
		// staff accounts wait for manual approval
		Approved: !staff,
	}

	if err := s.store.register(acc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	message := "User registered successfully"
	if staff {
		message = "Staff account request submitted. Please wait for approval."
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": message})
}

func (s *Server) signOut(w http.ResponseWriter, r *http.Request) {
	s.closeSession(w, r)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}
