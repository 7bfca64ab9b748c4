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

type employeeRepo struct {
	api *api.Client
}

func NewEmployeeRepository(apiClient *api.Client) EmployeeRepository {
	return &employeeRepo{api: apiClient}
}

func validateEmployee(e *models.Employee) error {
	if err := validate.Struct(e); err != nil {
		var validationErr validator.ValidationErrors
		if errors.As(err, &validationErr) {
			firstErr := validationErr[0]
			switch firstErr.Field() {
			case "FirstName":
				return fmt.Errorf("%w: first name is required", ErrInvalidInput)
			case "LastName":
				return fmt.Errorf("%w: last name is required", ErrInvalidInput)
			case "Position":
				return fmt.Errorf("%w: position is required", ErrInvalidInput)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if e.Salary.IsNegative() {
		return fmt.Errorf("%w: salary cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (r *employeeRepo) GetAll(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.api.Do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	var employee models.Employee
	if err := r.api.Do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &employee); err != nil {
		return nil, fmt.Errorf("failed to fetch employee %d: %w", id, err)
	}
	return &employee, nil
}

func (r *employeeRepo) Search(ctx context.Context, term string) ([]models.Employee, error) {
	if term == "" {
		return r.GetAll(ctx)
	}
	var employees []models.Employee
	path := "/employees/search?term=" + url.QueryEscape(term)
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &employees); err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepo) Create(ctx context.Context, e *models.Employee) error {
	if err := validateEmployee(e); err != nil {
		return err
	}
	e.ID = 0
	if err := r.api.Do(ctx, http.MethodPost, "/employees", e, e); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepo) Update(ctx context.Context, e *models.Employee) error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := validateEmployee(e); err != nil {
		return err
	}
	if err := r.api.Do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", e.ID), e, nil); err != nil {
		return fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if err := r.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}
