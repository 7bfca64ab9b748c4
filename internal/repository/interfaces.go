package repository

import (
	"context"

	"github.com/go-playground/validator/v10"

	"restaurant-admin/internal/models"
)

var validate = validator.New()

type ClientRepository interface {
	GetAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id int) (*models.Client, error)
	Search(ctx context.Context, term string) ([]models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id int) error
}

type DishRepository interface {
	GetAll(ctx context.Context) ([]models.Dish, error)
	GetByID(ctx context.Context, id int) (*models.Dish, error)
	Search(ctx context.Context, term string) ([]models.Dish, error)
	Create(ctx context.Context, dish *models.Dish) error
	Update(ctx context.Context, dish *models.Dish) error
	Delete(ctx context.Context, id int) error
}

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	Search(ctx context.Context, term string) ([]models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	// Search fetches the full collection and filters locally, the backend
	// has no order search endpoint.
	Search(ctx context.Context, term string) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error
}

type OrderDetailRepository interface {
	GetByOrder(ctx context.Context, orderID int) ([]models.OrderDetail, error)
	Create(ctx context.Context, detail *models.OrderDetail) error
	Delete(ctx context.Context, id int) error
}

type AuthRepository interface {
	SignIn(ctx context.Context, req models.SignInRequest) (*models.UserProfile, error)
	SignUp(ctx context.Context, req models.SignUpRequest) (string, error)
	SignOut(ctx context.Context) error
}
