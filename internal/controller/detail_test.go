package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
)

func composerFixture() (*OrderDetailComposer, *fakeScreen) {
	orders := &fakeOrderRepo{orders: []models.Order{{
		ID:         1,
		CustomerID: 5,
		Status:     models.StatusProcessing,
		Date:       time.Date(2025, 5, 20, 18, 30, 0, 0, time.UTC),
	}}}
	details := &fakeDetailRepo{byOrder: map[int][]models.OrderDetail{
		1: {
			{ID: 10, OrderID: 1, DishID: 1, Quantity: 2, Price: decimal.NewFromFloat(10.00)},
			{ID: 11, OrderID: 1, DishID: 2, Quantity: 1, Price: decimal.NewFromFloat(5.00)},
		},
	}}
	dishes := &fakeDishRepo{dishes: []models.Dish{
		{ID: 1, Name: "Margherita Pizza", Price: decimal.NewFromFloat(10.00)},
		{ID: 2, Name: "Caesar Salad", Price: decimal.NewFromFloat(5.00)},
	}}
	clients := &fakeClientRepo{clients: []models.Client{
		{ID: 5, FirstName: "Alice", LastName: "Moreno"},
	}}
	screen := &fakeScreen{}
	return NewOrderDetailComposer(orders, details, dishes, clients, screen), screen
}

func TestComposeComputesTotalLocally(t *testing.T) {
	composer, _ := composerFixture()

	summary, err := composer.Compose(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if summary.CustomerName != "Alice Moreno" {
		t.Errorf("customer = %q", summary.CustomerName)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(summary.Lines))
	}
	if summary.Lines[0].DishName != "Margherita Pizza" {
		t.Errorf("line 0 dish = %q", summary.Lines[0].DishName)
	}
	if got := summary.Lines[0].LineTotal.StringFixed(2); got != "20.00" {
		t.Errorf("line 0 total = %s", got)
	}
	if got := summary.Total.StringFixed(2); got != "25.00" {
		t.Errorf("total = %s, want 25.00", got)
	}
}

func TestComposeEmptyOrder(t *testing.T) {
	composer, _ := composerFixture()
	composer.details = &fakeDetailRepo{byOrder: map[int][]models.OrderDetail{}}

	summary, err := composer.Compose(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Lines) != 0 {
		t.Errorf("lines = %d, want 0", len(summary.Lines))
	}
	if got := summary.Total.StringFixed(2); got != "0.00" {
		t.Errorf("total = %s, want 0.00", got)
	}
}

func TestComposeFailsWhenDishMissing(t *testing.T) {
	composer, _ := composerFixture()
	composer.dishes = &fakeDishRepo{}

	_, err := composer.Compose(context.Background(), 1)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestShowRendersSummary(t *testing.T) {
	composer, screen := composerFixture()

	if _, err := composer.Show(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	if len(screen.modals) != 1 || screen.modals[0] != "Order Details" {
		t.Fatalf("modals = %v", screen.modals)
	}
	if len(screen.lines) != 1 {
		t.Fatalf("expected one block of lines, got %d", len(screen.lines))
	}

	rendered := strings.Join(screen.lines[0], "\n")
	for _, want := range []string{
		"Order #1",
		"Customer: Alice Moreno",
		"Status: Processing [status-processing]",
		"Total: 25.00",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered summary missing %q:\n%s", want, rendered)
		}
	}
}

func TestShowSurfacesComposeError(t *testing.T) {
	composer, screen := composerFixture()
	composer.orders = &fakeOrderRepo{}

	if _, err := composer.Show(context.Background(), 1); err == nil {
		t.Fatal("expected error for missing order")
	}
	if len(screen.errors) != 1 {
		t.Errorf("errors = %v", screen.errors)
	}
	if len(screen.modals) != 0 {
		t.Error("modal must not open on failure")
	}
}
