package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/models"
)

type dishRepo struct {
	api *api.Client
}

func NewDishRepository(apiClient *api.Client) DishRepository {
	return &dishRepo{api: apiClient}
}

func validateDish(d *models.Dish) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: dish name is required", ErrInvalidInput)
	}
	if d.Price.IsNegative() || d.Price.IsZero() {
		return fmt.Errorf("%w: dish price should be positive", ErrInvalidInput)
	}
	return nil
}

func (r *dishRepo) GetAll(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.api.Do(ctx, http.MethodGet, "/menu", nil, &dishes); err != nil {
		return nil, fmt.Errorf("failed to fetch dishes: %w", err)
	}
	return dishes, nil
}

func (r *dishRepo) GetByID(ctx context.Context, id int) (*models.Dish, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	var dish models.Dish
	if err := r.api.Do(ctx, http.MethodGet, fmt.Sprintf("/menu/%d", id), nil, &dish); err != nil {
		return nil, fmt.Errorf("failed to fetch dish %d: %w", id, err)
	}
	return &dish, nil
}

func (r *dishRepo) Search(ctx context.Context, term string) ([]models.Dish, error) {
	if term == "" {
		return r.GetAll(ctx)
	}
	var dishes []models.Dish
	path := "/menu/search?term=" + url.QueryEscape(term)
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &dishes); err != nil {
		return nil, fmt.Errorf("failed to search dishes: %w", err)
	}
	return dishes, nil
}

func (r *dishRepo) Create(ctx context.Context, d *models.Dish) error {
	if err := validateDish(d); err != nil {
		return err
	}
	d.ID = 0
	if err := r.api.Do(ctx, http.MethodPost, "/menu", d, d); err != nil {
		return fmt.Errorf("failed to create dish: %w", err)
	}
	return nil
}

func (r *dishRepo) Update(ctx context.Context, d *models.Dish) error {
	if d.ID <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := validateDish(d); err != nil {
		return err
	}
	if err := r.api.Do(ctx, http.MethodPut, fmt.Sprintf("/menu/%d", d.ID), d, nil); err != nil {
		return fmt.Errorf("failed to update dish %d: %w", d.ID, err)
	}
	return nil
}

func (r *dishRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := r.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete dish %d: %w", id, err)
	}
	return nil
}
