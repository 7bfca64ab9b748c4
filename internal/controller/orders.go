package controller

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/ui"
)

var orderColumns = []string{"ID", "Customer", "Date", "Status", "Actions"}

type OrderItemForm struct {
	DishID   string
	Quantity string
	Price    string
}

type OrderForm struct {
	ID         string
	CustomerID string
	Status     string
	Items      []OrderItemForm
}

type OrderList struct {
	repo    repository.OrderRepository
	details repository.OrderDetailRepository
	clients repository.ClientRepository
	screen  ui.Screen
	deletes *DeleteFlow
}

func NewOrderList(
	repo repository.OrderRepository,
	details repository.OrderDetailRepository,
	clients repository.ClientRepository,
	screen ui.Screen,
	deletes *DeleteFlow,
) *OrderList {
	return &OrderList{repo: repo, details: details, clients: clients, screen: screen, deletes: deletes}
}

func (l *OrderList) Refresh(ctx context.Context) error { return l.Load(ctx) }

func (l *OrderList) Load(ctx context.Context) error {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	orders, err := l.repo.GetAll(ctx)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	names, err := l.customerNames(ctx)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(orders, names)
	return nil
}

func (l *OrderList) Search(ctx context.Context, term string) error {
	if term == "" {
		return l.Load(ctx)
	}

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	orders, err := l.repo.Search(ctx, term)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	names, err := l.customerNames(ctx)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	l.render(orders, names)
	return nil
}

func (l *OrderList) customerNames(ctx context.Context) (map[int]string, error) {
	clients, err := l.clients.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.FullName()
	}
	return names, nil
}

func (l *OrderList) render(orders []models.Order, names map[int]string) {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		customer := names[o.CustomerID]
		if customer == "" {
			customer = "Unknown"
		}
		rows = append(rows, []string{
			"#" + strconv.Itoa(o.ID),
			customer,
			o.Date.Format("2006-01-02"),
			string(o.Status),
			"view edit delete",
		})
	}
	l.screen.RenderTable(ui.Table{Columns: orderColumns, Rows: rows, Empty: "No orders found"})
}

func (l *OrderList) ShowCreateForm() *OrderForm {
	l.screen.ShowModal("Create New Order")
	return &OrderForm{Status: string(models.StatusPending), Items: []OrderItemForm{{Quantity: "1"}}}
}

func (l *OrderList) ShowEditForm(ctx context.Context, id int) (*OrderForm, error) {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	order, err := l.repo.GetByID(ctx, id)
	if err != nil {
		l.screen.Error(err.Error())
		return nil, err
	}
	items, err := l.details.GetByOrder(ctx, id)
	if err != nil {
		l.screen.Error(err.Error())
		return nil, err
	}

	form := &OrderForm{
		ID:         strconv.Itoa(order.ID),
		CustomerID: strconv.Itoa(order.CustomerID),
		Status:     string(order.Status),
	}
	for _, item := range items {
		form.Items = append(form.Items, OrderItemForm{
			DishID:   strconv.Itoa(item.DishID),
			Quantity: strconv.Itoa(item.Quantity),
			Price:    item.Price.StringFixed(2),
		})
	}
	if len(form.Items) == 0 {
		form.Items = []OrderItemForm{{Quantity: "1"}}
	}

	l.screen.ShowModal("Edit Order")
	return form, nil
}

// Submit saves the order, replaces its line items and re-fetches the list.
// Validation failures short-circuit before any network call.
func (l *OrderList) Submit(ctx context.Context, form OrderForm) error {
	if form.CustomerID == "" {
		l.screen.Error("Please select a customer")
		return fmt.Errorf("%w: no customer selected", repository.ErrInvalidInput)
	}
	customerID, err := strconv.Atoi(form.CustomerID)
	if err != nil {
		l.screen.Error("Please select a customer")
		return fmt.Errorf("%w: bad customer id %q", repository.ErrInvalidInput, form.CustomerID)
	}

	items, err := collectOrderItems(form.Items)
	if err != nil {
		l.screen.Error(err.Error())
		return err
	}
	if len(items) == 0 {
		l.screen.Error("Please add at least one item to the order")
		return fmt.Errorf("%w: order has no items", repository.ErrInvalidInput)
	}

	editing := form.ID != ""

	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	order := models.Order{
		CustomerID: customerID,
		Status:     models.OrderStatus(form.Status),
		Date:       time.Now().UTC(),
	}

	if editing {
		order.ID, err = strconv.Atoi(form.ID)
		if err != nil {
			l.screen.Error("invalid order id")
			return fmt.Errorf("%w: bad id %q", repository.ErrInvalidInput, form.ID)
		}
		if err := l.repo.Update(ctx, &order); err != nil {
			l.screen.Error(err.Error())
			return err
		}
		// replace line items wholesale
		existing, err := l.details.GetByOrder(ctx, order.ID)
		if err != nil {
			l.screen.Error(err.Error())
			return err
		}
		for _, item := range existing {
			if err := l.details.Delete(ctx, item.ID); err != nil {
				l.screen.Error(err.Error())
				return err
			}
		}
	} else {
		if err := l.repo.Create(ctx, &order); err != nil {
			l.screen.Error(err.Error())
			return err
		}
	}

	for _, item := range items {
		item.OrderID = order.ID
		if err := l.details.Create(ctx, &item); err != nil {
			l.screen.Error(err.Error())
			return err
		}
	}

	if editing {
		l.screen.Success("Order updated successfully")
	} else {
		l.screen.Success("Order created successfully")
	}
	l.screen.CloseModal()
	return l.Load(ctx)
}

// collectOrderItems keeps only the rows with a dish and a quantity, the way
// the order modal ignored half-filled rows.
func collectOrderItems(rows []OrderItemForm) ([]models.OrderDetail, error) {
	var items []models.OrderDetail
	for _, row := range rows {
		if row.DishID == "" || row.Quantity == "" {
			continue
		}
		dishID, err := strconv.Atoi(row.DishID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad dish id %q", repository.ErrInvalidInput, row.DishID)
		}
		quantity, err := strconv.Atoi(row.Quantity)
		if err != nil || quantity < 1 {
			return nil, fmt.Errorf("%w: bad quantity %q", repository.ErrInvalidInput, row.Quantity)
		}
		price, err := decimal.NewFromString(row.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: bad price %q", repository.ErrInvalidInput, row.Price)
		}
		items = append(items, models.OrderDetail{DishID: dishID, Quantity: quantity, Price: price})
	}
	return items, nil
}

func (l *OrderList) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error {
	l.screen.ShowLoading()
	defer l.screen.HideLoading()

	if err := l.repo.UpdateStatus(ctx, id, status); err != nil {
		l.screen.Error(err.Error())
		return err
	}

	l.screen.Success(fmt.Sprintf("Order status updated to %s", status))
	l.screen.CloseModal()
	return l.Load(ctx)
}

func (l *OrderList) RequestDelete(id int) {
	l.deletes.Request(KindOrder, id)
}
