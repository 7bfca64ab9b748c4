package api

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input data")
	ErrUnauthorized = errors.New("session expired or not authorized")
	ErrRateLimited  = errors.New("too many requests")
	ErrBackend      = errors.New("backend error")
)
