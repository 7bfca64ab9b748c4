package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"restaurant-admin/internal/models"
)

func dashboardFixture() (*Dashboard, *fakeOrderRepo, *fakeScreen) {
	orders := &fakeOrderRepo{}
	for i := 1; i <= 7; i++ {
		orders.orders = append(orders.orders, models.Order{
			ID:         i,
			CustomerID: 1,
			Status:     models.StatusPending,
			Date:       time.Date(2025, 5, i, 0, 0, 0, 0, time.UTC),
		})
	}
	clients := &fakeClientRepo{clients: []models.Client{
		{ID: 1, FirstName: "Alice", LastName: "Moreno"},
		{ID: 2, FirstName: "Bruno", LastName: "Silva"},
	}}
	dishes := &fakeDishRepo{dishes: []models.Dish{{ID: 1, Name: "Pizza"}}}
	employees := &fakeEmployeeRepo{employees: []models.Employee{{ID: 1, FirstName: "D", LastName: "L", Position: "Chef"}}}

	screen := &fakeScreen{}
	composer := NewOrderDetailComposer(orders, &fakeDetailRepo{byOrder: map[int][]models.OrderDetail{}}, dishes, clients, screen)
	return NewDashboard(clients, dishes, employees, orders, composer, screen), orders, screen
}

func TestDashboardRendersCounts(t *testing.T) {
	dash, _, screen := dashboardFixture()

	if err := dash.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(screen.lines) != 1 {
		t.Fatalf("expected one count block, got %d", len(screen.lines))
	}
	counts := strings.Join(screen.lines[0], "\n")
	for _, want := range []string{"Clients: 2", "Dishes: 1", "Employees: 1", "Orders: 7"} {
		if !strings.Contains(counts, want) {
			t.Errorf("counts missing %q:\n%s", want, counts)
		}
	}
}

func TestDashboardCapsRecentOrders(t *testing.T) {
	dash, _, screen := dashboardFixture()

	if err := dash.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	table, ok := screen.lastTable()
	if !ok {
		t.Fatal("no recent orders table rendered")
	}
	if len(table.Rows) != 5 {
		t.Errorf("recent orders = %d rows, want 5", len(table.Rows))
	}
}

func TestDashboardSurfacesFetchFailure(t *testing.T) {
	dash, orders, screen := dashboardFixture()
	orders.err = errors.New("backend down")

	if err := dash.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(screen.errors) != 1 || !strings.HasPrefix(screen.errors[0], "Failed to load dashboard data: ") {
		t.Errorf("errors = %v", screen.errors)
	}
}
