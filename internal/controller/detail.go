package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/ui"
)

type SummaryLine struct {
	DishName  string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type OrderSummary struct {
	OrderID      int
	Date         time.Time
	CustomerName string
	Status       models.OrderStatus
	Lines        []SummaryLine
	Total        decimal.Decimal
}

// OrderDetailComposer assembles the read-only order view: the order, its line
// items, every referenced dish and the customer. The grand total is computed
// here, a total field on the order itself is never trusted.
type OrderDetailComposer struct {
	orders  repository.OrderRepository
	details repository.OrderDetailRepository
	dishes  repository.DishRepository
	clients repository.ClientRepository
	screen  ui.Screen
}

func NewOrderDetailComposer(
	orders repository.OrderRepository,
	details repository.OrderDetailRepository,
	dishes repository.DishRepository,
	clients repository.ClientRepository,
	screen ui.Screen,
) *OrderDetailComposer {
	return &OrderDetailComposer{orders: orders, details: details, dishes: dishes, clients: clients, screen: screen}
}

// Compose fetches everything the summary needs. Dish lookups run
// concurrently, one request per line item; any single failure aborts the
// whole composition.
func (c *OrderDetailComposer) Compose(ctx context.Context, orderID int) (*OrderSummary, error) {
	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := c.details.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	dishes := make([]*models.Dish, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			dish, err := c.dishes.GetByID(gctx, item.DishID)
			if err != nil {
				return err
			}
			dishes[i] = dish
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	customer, err := c.clients.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	summary := &OrderSummary{
		OrderID:      order.ID,
		Date:         order.Date,
		CustomerName: customer.FullName(),
		Status:       order.Status,
		Total:        decimal.Zero,
	}
	for i, item := range items {
		lineTotal := item.LineTotal()
		summary.Lines = append(summary.Lines, SummaryLine{
			DishName:  dishes[i].Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
		})
		summary.Total = summary.Total.Add(lineTotal)
	}
	return summary, nil
}

// Show composes and renders the summary modal.
func (c *OrderDetailComposer) Show(ctx context.Context, orderID int) (*OrderSummary, error) {
	c.screen.ShowLoading()
	defer c.screen.HideLoading()

	summary, err := c.Compose(ctx, orderID)
	if err != nil {
		c.screen.Error(err.Error())
		return nil, err
	}

	c.screen.ShowModal("Order Details")
	lines := []string{
		fmt.Sprintf("Order #%d", summary.OrderID),
		fmt.Sprintf("Date: %s", summary.Date.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Customer: %s", summary.CustomerName),
		fmt.Sprintf("Status: %s [%s]", summary.Status, summary.Status.LabelClass()),
	}
	for _, line := range summary.Lines {
		lines = append(lines, fmt.Sprintf("%s  %s x %d  %s",
			line.DishName, line.UnitPrice.StringFixed(2), line.Quantity, line.LineTotal.StringFixed(2)))
	}
	lines = append(lines, fmt.Sprintf("Total: %s", summary.Total.StringFixed(2)))
	c.screen.RenderLines(lines)

	return summary, nil
}
