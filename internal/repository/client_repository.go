package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/models"
)

type clientRepo struct {
	api *api.Client
}

func NewClientRepository(apiClient *api.Client) ClientRepository {
	return &clientRepo{api: apiClient}
}

func validateClient(c *models.Client) error {
	if err := validate.Struct(c); err != nil {
		var validationErr validator.ValidationErrors
		if errors.As(err, &validationErr) {
			firstErr := validationErr[0]
			switch firstErr.Field() {
			case "FirstName":
				return fmt.Errorf("%w: first name is required", ErrInvalidInput)
			case "LastName":
				return fmt.Errorf("%w: last name is required", ErrInvalidInput)
			case "Email":
				return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (r *clientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.api.Do(ctx, http.MethodGet, "/clients", nil, &clients); err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id int) (*models.Client, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	var client models.Client
	if err := r.api.Do(ctx, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil, &client); err != nil {
		return nil, fmt.Errorf("failed to fetch client %d: %w", id, err)
	}
	return &client, nil
}

func (r *clientRepo) Search(ctx context.Context, term string) ([]models.Client, error) {
	if term == "" {
		return r.GetAll(ctx)
	}
	var clients []models.Client
	path := "/clients/search?term=" + url.QueryEscape(term)
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &clients); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepo) Create(ctx context.Context, c *models.Client) error {
	if err := validateClient(c); err != nil {
		return err
	}
	c.ID = 0
	if err := r.api.Do(ctx, http.MethodPost, "/clients", c, c); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepo) Update(ctx context.Context, c *models.Client) error {
	if c.ID <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := validateClient(c); err != nil {
		return err
	}
	if err := r.api.Do(ctx, http.MethodPut, fmt.Sprintf("/clients/%d", c.ID), c, nil); err != nil {
		return fmt.Errorf("failed to update client %d: %w", c.ID, err)
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := r.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete client %d: %w", id, err)
	}
	return nil
}
