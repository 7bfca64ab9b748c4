package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/ui"
)

// fakeScreen records every touch the controllers make.
type fakeScreen struct {
	mu        sync.Mutex
	tables    []ui.Table
	lines     [][]string
	modals    []string
	closed    int
	errors    []string
	successes []string
	loading   int
}

func (s *fakeScreen) ShowLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading++
}

func (s *fakeScreen) HideLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--
}

func (s *fakeScreen) Success(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successes = append(s.successes, message)
}

func (s *fakeScreen) Error(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
}

func (s *fakeScreen) RenderTable(t ui.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = append(s.tables, t)
}

func (s *fakeScreen) RenderLines(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, lines)
}

func (s *fakeScreen) ShowModal(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modals = append(s.modals, title)
}

func (s *fakeScreen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
}

func (s *fakeScreen) lastTable() (ui.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tables) == 0 {
		return ui.Table{}, false
	}
	return s.tables[len(s.tables)-1], true
}

type fakeClientRepo struct {
	clients []models.Client
	created []models.Client
	updated []models.Client
	deleted []int
	nextID  int
	err     error
}

func (r *fakeClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	return r.clients, r.err
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id int) (*models.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: client %d", repository.ErrNotFound, id)
}

func (r *fakeClientRepo) Search(ctx context.Context, term string) ([]models.Client, error) {
	var out []models.Client
	for _, c := range r.clients {
		if strings.Contains(strings.ToLower(c.FullName()), strings.ToLower(term)) {
			out = append(out, c)
		}
	}
	return out, r.err
}

func (r *fakeClientRepo) Create(ctx context.Context, c *models.Client) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	c.ID = r.nextID
	r.created = append(r.created, *c)
	r.clients = append(r.clients, *c)
	return nil
}

func (r *fakeClientRepo) Update(ctx context.Context, c *models.Client) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, *c)
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeDishRepo struct {
	dishes  []models.Dish
	created []models.Dish
	updated []models.Dish
	deleted []int
	err     error
}

func (r *fakeDishRepo) GetAll(ctx context.Context) ([]models.Dish, error) {
	return r.dishes, r.err
}

func (r *fakeDishRepo) GetByID(ctx context.Context, id int) (*models.Dish, error) {
	for _, d := range r.dishes {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("%w: dish %d", repository.ErrNotFound, id)
}

func (r *fakeDishRepo) Search(ctx context.Context, term string) ([]models.Dish, error) {
	return r.dishes, r.err
}

func (r *fakeDishRepo) Create(ctx context.Context, d *models.Dish) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, *d)
	return nil
}

func (r *fakeDishRepo) Update(ctx context.Context, d *models.Dish) error {
	r.updated = append(r.updated, *d)
	return nil
}

func (r *fakeDishRepo) Delete(ctx context.Context, id int) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []models.Employee
	err       error
}

func (r *fakeEmployeeRepo) GetAll(ctx context.Context) ([]models.Employee, error) {
	return r.employees, r.err
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: employee %d", repository.ErrNotFound, id)
}

func (r *fakeEmployeeRepo) Search(ctx context.Context, term string) ([]models.Employee, error) {
	return r.employees, r.err
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *models.Employee) error { return r.err }
func (r *fakeEmployeeRepo) Update(ctx context.Context, e *models.Employee) error { return r.err }
func (r *fakeEmployeeRepo) Delete(ctx context.Context, id int) error             { return r.err }

type fakeOrderRepo struct {
	orders  []models.Order
	created []models.Order
	updated []models.Order
	deleted []int
	nextID  int
	err     error

	statusCalls []models.OrderStatus
}

func (r *fakeOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.orders, r.err
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id int) (*models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("%w: order %d", repository.ErrNotFound, id)
}

func (r *fakeOrderRepo) Search(ctx context.Context, term string) ([]models.Order, error) {
	return r.orders, r.err
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	o.ID = r.nextID
	r.created = append(r.created, *o)
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *models.Order) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, *o)
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id int) error {
	r.deleted = append(r.deleted, id)
	return r.err
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) error {
	r.statusCalls = append(r.statusCalls, status)
	return r.err
}

type fakeDetailRepo struct {
	mu      sync.Mutex
	byOrder map[int][]models.OrderDetail
	created []models.OrderDetail
	deleted []int
	nextID  int
	err     error
}

func (r *fakeDetailRepo) GetByOrder(ctx context.Context, orderID int) ([]models.OrderDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byOrder[orderID], r.err
}

func (r *fakeDetailRepo) Create(ctx context.Context, d *models.OrderDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	d.ID = r.nextID
	r.created = append(r.created, *d)
	return nil
}

func (r *fakeDetailRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	for orderID, details := range r.byOrder {
		kept := details[:0]
		for _, d := range details {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		r.byOrder[orderID] = kept
	}
	return r.err
}

// refreshCounter counts Refresh calls, standing in for a list page.
type refreshCounter struct {
	calls int
	err   error
}

func (r *refreshCounter) Refresh(ctx context.Context) error {
	r.calls++
	return r.err
}
