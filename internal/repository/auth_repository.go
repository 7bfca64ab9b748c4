package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/models"
)

type authRepo struct {
	api *api.Client
}

func NewAuthRepository(apiClient *api.Client) AuthRepository {
	return &authRepo{api: apiClient}
}

func (r *authRepo) SignIn(ctx context.Context, req models.SignInRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.api.Do(ctx, http.MethodPost, "/auth/signin", req, &profile); err != nil {
		return nil, err
	}
	if profile.Username == "" && len(profile.Roles) == 0 {
		return nil, fmt.Errorf("%w: empty authentication response", api.ErrBackend)
	}
	return &profile, nil
}

func (r *authRepo) SignUp(ctx context.Context, req models.SignUpRequest) (string, error) {
	raw, err := r.api.DoRaw(ctx, http.MethodPost, "/auth/signup", req)
	if err != nil {
		return "", err
	}

	// the backend answers either {"message": "..."} or a plain sentence
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		return body.Message, nil
	}
	return strings.TrimSpace(string(raw)), nil
}

func (r *authRepo) SignOut(ctx context.Context) error {
	return r.api.Do(ctx, http.MethodPost, "/auth/signout", nil, nil)
}
