package repository

import "restaurant-admin/internal/api"

// Sentinels are shared with the transport so errors.Is works across layers.
var (
	ErrNotFound     = api.ErrNotFound
	ErrInvalidInput = api.ErrInvalidInput
	ErrUnauthorized = api.ErrUnauthorized
	ErrRateLimited  = api.ErrRateLimited
)
