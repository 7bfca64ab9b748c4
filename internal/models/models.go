package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the backend exchanges prices as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Client struct {
	ID        int    `json:"idClient,omitempty"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}

func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Dish struct {
	ID          int             `json:"idDish,omitempty"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type Employee struct {
	ID        int             `json:"idEmployee,omitempty"`
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	Position  string          `json:"position" validate:"required"`
	Salary    decimal.Decimal `json:"salary"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// LabelClass mirrors the status-<status> styling hook of the dashboard.
func (s OrderStatus) LabelClass() string {
	return "status-" + strings.ToLower(string(s))
}

type Order struct {
	ID         int         `json:"idOrder,omitempty"`
	CustomerID int         `json:"idCustomer" validate:"required,gt=0"`
	Status     OrderStatus `json:"status"`
	Date       time.Time   `json:"date"`
}

type OrderDetail struct {
	ID       int             `json:"idDetail,omitempty"`
	OrderID  int             `json:"idOrder" validate:"required,gt=0"`
	DishID   int             `json:"idDish" validate:"required,gt=0"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

// LineTotal is always computed locally, a total sent by the server is ignored.
func (d OrderDetail) LineTotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

type SignInRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
	RecaptchaToken  string `json:"recaptchaToken,omitempty"`
}

type SignUpRequest struct {
	FirstName      string   `json:"firstName" validate:"required"`
	LastName       string   `json:"lastName" validate:"required"`
	Username       string   `json:"username" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone,omitempty"`
	Password       string   `json:"password" validate:"required,password"`
	Position       string   `json:"position,omitempty"`
	EmployeeID     string   `json:"employeeId,omitempty"`
	Roles          []string `json:"roles"`
	RecaptchaToken string   `json:"recaptchaToken,omitempty"`
}

type UserProfile struct {
	ID       int      `json:"id,omitempty"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
}
