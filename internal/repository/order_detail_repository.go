package repository

import (
	"context"
	"fmt"
	"net/http"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/models"
)

type orderDetailRepo struct {
	api *api.Client
}

func NewOrderDetailRepository(apiClient *api.Client) OrderDetailRepository {
	return &orderDetailRepo{api: apiClient}
}

func (r *orderDetailRepo) GetByOrder(ctx context.Context, orderID int) ([]models.OrderDetail, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order ID cannot be empty", ErrInvalidInput)
	}
	var details []models.OrderDetail
	path := fmt.Sprintf("/order-details/order/%d", orderID)
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &details); err != nil {
		return nil, fmt.Errorf("failed to fetch items of order %d: %w", orderID, err)
	}
	return details, nil
}

func (r *orderDetailRepo) Create(ctx context.Context, d *models.OrderDetail) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: order item needs an order, a dish and a positive quantity", ErrInvalidInput)
	}
	d.ID = 0
	if err := r.api.Do(ctx, http.MethodPost, "/order-details", d, d); err != nil {
		return fmt.Errorf("failed to add order item: %w", err)
	}
	return nil
}

func (r *orderDetailRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := r.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/order-details/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete order item %d: %w", id, err)
	}
	return nil
}
