package controller

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/ui"
)

const recentOrderLimit = 5

var recentOrderColumns = []string{"ID", "Customer", "Date", "Status", "Actions"}

type Dashboard struct {
	clients   repository.ClientRepository
	dishes    repository.DishRepository
	employees repository.EmployeeRepository
	orders    repository.OrderRepository
	composer  *OrderDetailComposer
	screen    ui.Screen
}

func NewDashboard(
	clients repository.ClientRepository,
	dishes repository.DishRepository,
	employees repository.EmployeeRepository,
	orders repository.OrderRepository,
	composer *OrderDetailComposer,
	screen ui.Screen,
) *Dashboard {
	return &Dashboard{
		clients:   clients,
		dishes:    dishes,
		employees: employees,
		orders:    orders,
		composer:  composer,
		screen:    screen,
	}
}

// Refresh fetches the four collections concurrently, then renders the count
// cards and the five most recent orders.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.screen.ShowLoading()
	defer d.screen.HideLoading()

	var (
		clients   []models.Client
		dishes    []models.Dish
		employees []models.Employee
		orders    []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; clients, err = d.clients.GetAll(gctx); return err })
	g.Go(func() error { var err error; dishes, err = d.dishes.GetAll(gctx); return err })
	g.Go(func() error { var err error; employees, err = d.employees.GetAll(gctx); return err })
	g.Go(func() error { var err error; orders, err = d.orders.GetAll(gctx); return err })
	if err := g.Wait(); err != nil {
		d.screen.Error("Failed to load dashboard data: " + err.Error())
		return err
	}

	d.screen.RenderLines([]string{
		fmt.Sprintf("Clients: %d", len(clients)),
		fmt.Sprintf("Dishes: %d", len(dishes)),
		fmt.Sprintf("Employees: %d", len(employees)),
		fmt.Sprintf("Orders: %d", len(orders)),
	})

	names := make(map[int]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.FullName()
	}

	recent := orders
	if len(recent) > recentOrderLimit {
		recent = recent[:recentOrderLimit]
	}

	rows := make([][]string, 0, len(recent))
	for _, o := range recent {
		customer := names[o.CustomerID]
		if customer == "" {
			customer = "Unknown"
		}
		rows = append(rows, []string{
			"#" + strconv.Itoa(o.ID),
			customer,
			o.Date.Format("2006-01-02"),
			string(o.Status),
			"view",
		})
	}
	d.screen.RenderTable(ui.Table{Columns: recentOrderColumns, Rows: rows, Empty: "No orders found"})
	return nil
}

func (d *Dashboard) ViewOrder(ctx context.Context, orderID int) error {
	_, err := d.composer.Show(ctx, orderID)
	return err
}
