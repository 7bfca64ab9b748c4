package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/models"
)

type orderRepo struct {
	api     *api.Client
	clients ClientRepository
}

// NewOrderRepository needs the client repository because order search has no
// backend endpoint and matches against customer names locally.
func NewOrderRepository(apiClient *api.Client, clients ClientRepository) OrderRepository {
	return &orderRepo{api: apiClient, clients: clients}
}

var firstInteger = regexp.MustCompile(`\d+`)

func validateOrder(o *models.Order) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: a customer must be selected", ErrInvalidInput)
	}
	if !o.Status.Valid() {
		return fmt.Errorf("%w: invalid status '%s'", ErrInvalidInput, o.Status)
	}
	return nil
}

func (r *orderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.api.Do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int) (*models.Order, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	var order models.Order
	if err := r.api.Do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, fmt.Errorf("failed to fetch order %d: %w", id, err)
	}
	return &order, nil
}

func (r *orderRepo) Search(ctx context.Context, term string) ([]models.Order, error) {
	if term == "" {
		return r.GetAll(ctx)
	}

	clients, err := r.clients.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.FullName()
	}

	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(term)
	var matched []models.Order
	for _, o := range orders {
		switch {
		case strings.Contains(strconv.Itoa(o.ID), term):
		case strings.Contains(strings.ToLower(names[o.CustomerID]), lowered):
		case strings.Contains(strings.ToLower(string(o.Status)), lowered):
		default:
			continue
		}
		matched = append(matched, o)
	}
	return matched, nil
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	if err := validateOrder(o); err != nil {
		return err
	}
	o.ID = 0

	raw, err := r.api.DoRaw(ctx, http.MethodPost, "/orders", o)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	id, err := parseCreatedOrderID(raw)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

// parseCreatedOrderID accepts both a JSON order body and the legacy plain-text
// confirmation that only mentions the new id somewhere in the sentence.
func parseCreatedOrderID(raw []byte) (int, error) {
	var created models.Order
	if err := json.Unmarshal(raw, &created); err == nil && created.ID > 0 {
		return created.ID, nil
	}
	if match := firstInteger.Find(raw); match != nil {
		if id, err := strconv.Atoi(string(match)); err == nil {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: create response carried no order id", api.ErrBackend)
}

func (r *orderRepo) Update(ctx context.Context, o *models.Order) error {
	if o.ID <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := validateOrder(o); err != nil {
		return err
	}
	if err := r.api.Do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", o.ID), o, nil); err != nil {
		return fmt.Errorf("failed to update order %d: %w", o.ID, err)
	}
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := r.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status '%s'", ErrInvalidInput, status)
	}
	path := fmt.Sprintf("/orders/%d/status?status=%s", id, url.QueryEscape(string(status)))
	if err := r.api.Do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("failed to update order %d status: %w", id, err)
	}
	return nil
}
