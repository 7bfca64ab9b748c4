package stubserver

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-admin/internal/models"
)

var errNotFound = errors.New("not found")

type account struct {
	Username string
	Email    string
	Password string
	Roles    []string
	Approved bool
}

// memoryStore holds all backend state for the development server. It is
// seeded with a small fixed dataset on startup.
type memoryStore struct {
	mu sync.Mutex

	clients   map[int]models.Client
	dishes    map[int]models.Dish
	employees map[int]models.Employee
	orders    map[int]models.Order
	details   map[int]models.OrderDetail
	accounts  map[string]account

	nextClient   int
	nextDish     int
	nextEmployee int
	nextOrder    int
	nextDetail   int
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		clients:   make(map[int]models.Client),
		dishes:    make(map[int]models.Dish),
		employees: make(map[int]models.Employee),
		orders:    make(map[int]models.Order),
		details:   make(map[int]models.OrderDetail),
		accounts:  make(map[string]account),
	}
	s.seed()
	return s
}

func (s *memoryStore) seed() {
	s.accounts["admin"] = account{
		Username: "admin",
		Email:    "admin@restaurant.local",
		Password: "Admin@123",
		Roles:    []string{"ROLE_ADMIN"},
		Approved: true,
	}
	s.accounts["waiter"] = account{
		Username: "waiter",
		Email:    "waiter@restaurant.local",
		Password: "Waiter@123",
		Roles:    []string{"ROLE_STAFF"},
		Approved: true,
	}

	for _, c := range []models.Client{
		{FirstName: "Alice", LastName: "Moreno", Email: "alice@example.com", Phone: "555-0101"},
		{FirstName: "Bruno", LastName: "Silva", Email: "bruno@example.com", Phone: "555-0102"},
		{FirstName: "Carla", LastName: "Reyes", Email: "carla@example.com"},
	} {
		s.nextClient++
		c.ID = s.nextClient
		s.clients[c.ID] = c
	}

	for _, d := range []models.Dish{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: decimal.NewFromFloat(10.00)},
		{Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Price: decimal.NewFromFloat(5.00)},
		{Name: "Grilled Salmon", Description: "With lemon butter", Price: decimal.NewFromFloat(18.50)},
	} {
		s.nextDish++
		d.ID = s.nextDish
		s.dishes[d.ID] = d
	}

	for _, e := range []models.Employee{
		{FirstName: "Diego", LastName: "Lara", Position: "Chef", Salary: decimal.NewFromFloat(3200)},
		{FirstName: "Elena", LastName: "Koval", Position: "Waiter", Salary: decimal.NewFromFloat(1800)},
	} {
		s.nextEmployee++
		e.ID = s.nextEmployee
		s.employees[e.ID] = e
	}

	now := time.Now()
	for _, o := range []models.Order{
		{CustomerID: 1, Status: models.StatusPending, Date: now.Add(-2 * time.Hour)},
		{CustomerID: 2, Status: models.StatusCompleted, Date: now.Add(-26 * time.Hour)},
	} {
		s.nextOrder++
		o.ID = s.nextOrder
		s.orders[o.ID] = o
	}

	for _, d := range []models.OrderDetail{
		{OrderID: 1, DishID: 1, Quantity: 2, Price: decimal.NewFromFloat(10.00)},
		{OrderID: 1, DishID: 2, Quantity: 1, Price: decimal.NewFromFloat(5.00)},
		{OrderID: 2, DishID: 3, Quantity: 1, Price: decimal.NewFromFloat(18.50)},
	} {
		s.nextDetail++
		d.ID = s.nextDetail
		s.details[d.ID] = d
	}
}

func (s *memoryStore) listClients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memoryStore) getClient(id int) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok {
		return models.Client{}, errNotFound
	}
	return c, nil
}

func (s *memoryStore) searchClients(term string) []models.Client {
	term = strings.ToLower(term)
	var out []models.Client
	for _, c := range s.listClients() {
		if strings.Contains(strings.ToLower(c.FullName()), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			out = append(out, c)
		}
	}
	return out
}

func (s *memoryStore) createClient(c models.Client) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextClient++
	c.ID = s.nextClient
	s.clients[c.ID] = c
	return c
}

func (s *memoryStore) updateClient(c models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.ID]; !ok {
		return errNotFound
	}
	s.clients[c.ID] = c
	return nil
}

func (s *memoryStore) deleteClient(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return errNotFound
	}
	delete(s.clients, id)
	return nil
}

func (s *memoryStore) listDishes() []models.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Dish, 0, len(s.dishes))
	for _, d := range s.dishes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memoryStore) getDish(id int) (models.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dishes[id]
	if !ok {
		return models.Dish{}, errNotFound
	}
	return d, nil
}

func (s *memoryStore) searchDishes(term string) []models.Dish {
	term = strings.ToLower(term)
	var out []models.Dish
	for _, d := range s.listDishes() {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Description), term) {
			out = append(out, d)
		}
	}
	return out
}

func (s *memoryStore) createDish(d models.Dish) models.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextDish++
	d.ID = s.nextDish
	s.dishes[d.ID] = d
	return d
}

func (s *memoryStore) updateDish(d models.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dishes[d.ID]; !ok {
		return errNotFound
	}
	s.dishes[d.ID] = d
	return nil
}

func (s *memoryStore) deleteDish(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dishes[id]; !ok {
		return errNotFound
	}
	delete(s.dishes, id)
	return nil
}

func (s *memoryStore) listEmployees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memoryStore) getEmployee(id int) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return models.Employee{}, errNotFound
	}
	return e, nil
}

func (s *memoryStore) searchEmployees(term string) []models.Employee {
	term = strings.ToLower(term)
	var out []models.Employee
	for _, e := range s.listEmployees() {
		if strings.Contains(strings.ToLower(e.FullName()), term) ||
			strings.Contains(strings.ToLower(e.Position), term) {
			out = append(out, e)
		}
	}
	return out
}

func (s *memoryStore) createEmployee(e models.Employee) models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEmployee++
	e.ID = s.nextEmployee
	s.employees[e.ID] = e
	return e
}

func (s *memoryStore) updateEmployee(e models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[e.ID]; !ok {
		return errNotFound
	}
	s.employees[e.ID] = e
	return nil
}

func (s *memoryStore) deleteEmployee(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return errNotFound
	}
	delete(s.employees, id)
	return nil
}

func (s *memoryStore) listOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memoryStore) getOrder(id int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, errNotFound
	}
	return o, nil
}

func (s *memoryStore) createOrder(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOrder++
	o.ID = s.nextOrder
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	if o.Date.IsZero() {
		o.Date = time.Now()
	}
	s.orders[o.ID] = o
	return o
}

func (s *memoryStore) updateOrder(o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.orders[o.ID]
	if !ok {
		return errNotFound
	}
	if o.Date.IsZero() {
		o.Date = current.Date
	}
	if o.Status == "" {
		o.Status = current.Status
	}
	s.orders[o.ID] = o
	return nil
}

func (s *memoryStore) updateOrderStatus(id int, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return errNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func (s *memoryStore) deleteOrder(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return errNotFound
	}
	delete(s.orders, id)
	for detailID, d := range s.details {
		if d.OrderID == id {
			delete(s.details, detailID)
		}
	}
	return nil
}

func (s *memoryStore) detailsForOrder(orderID int) []models.OrderDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.OrderDetail
	for _, d := range s.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memoryStore) createDetail(d models.OrderDetail) (models.OrderDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[d.OrderID]; !ok {
		return models.OrderDetail{}, errNotFound
	}
	s.nextDetail++
	d.ID = s.nextDetail
	s.details[d.ID] = d
	return d, nil
}

func (s *memoryStore) deleteDetail(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.details[id]; !ok {
		return errNotFound
	}
	delete(s.details, id)
	return nil
}

func (s *memoryStore) authenticate(usernameOrEmail, password string) (account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Username != usernameOrEmail && acc.Email != usernameOrEmail {
			continue
		}
		if acc.Password != password || !acc.Approved {
			return account{}, false
		}
		return acc, true
	}
	return account{}, false
}

func (s *memoryStore) register(acc account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[acc.Username]; ok {
		return errors.New("username is already taken")
	}
	for _, existing := range s.accounts {
		if existing.Email == acc.Email {
			return errors.New("email is already in use")
		}
	}
	s.accounts[acc.Username] = acc
	return nil
}
