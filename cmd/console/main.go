package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/auth"
	"restaurant-admin/internal/captcha"
	"restaurant-admin/internal/config"
	"restaurant-admin/internal/controller"
	"restaurant-admin/internal/logger"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/session"
	"restaurant-admin/internal/ui"
)

type app struct {
	screen *ui.Console
	guard  *session.Guard
	flow   *auth.Flow

	clients   *controller.ClientList
	dishes    *controller.DishList
	employees *controller.EmployeeList
	orders    *controller.OrderList
	composer  *controller.OrderDetailComposer
	dashboard *controller.Dashboard
	deletes   *controller.DeleteFlow

	in *bufio.Scanner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	lg := logger.New("console")

	client, err := api.New(cfg.APIBaseURL, cfg.RequestTimeout, cfg.MaxRequestsPerMinute, lg)
	if err != nil {
		log.Fatal("failed to create api client: ", err)
	}
	defer client.Close()

	screen := ui.NewConsole(os.Stdout)
	control := ui.NewConsoleControl(os.Stdout)
	store := session.NewStore(client.Jar(), client.BaseURL())

	client.SetAuthFailureHandler(func() {
		store.Clear()
		screen.Navigate(cfg.LoginPage)
	})

	clientRepo := repository.NewClientRepository(client)
	dishRepo := repository.NewDishRepository(client)
	employeeRepo := repository.NewEmployeeRepository(client)
	orderRepo := repository.NewOrderRepository(client, clientRepo)
	detailRepo := repository.NewOrderDetailRepository(client)
	authRepo := repository.NewAuthRepository(client)

	deletes := controller.NewDeleteFlow(screen)
	clients := controller.NewClientList(clientRepo, screen, deletes)
	dishes := controller.NewDishList(dishRepo, screen, deletes)
	employees := controller.NewEmployeeList(employeeRepo, screen, deletes)
	orders := controller.NewOrderList(orderRepo, detailRepo, clientRepo, screen, deletes)
	composer := controller.NewOrderDetailComposer(orderRepo, detailRepo, dishRepo, clientRepo, screen)
	dashboard := controller.NewDashboard(clientRepo, dishRepo, employeeRepo, orderRepo, composer, screen)

	deletes.Register(controller.KindClient, clientRepo.Delete, clients)
	deletes.Register(controller.KindDish, dishRepo.Delete, dishes)
	deletes.Register(controller.KindEmployee, employeeRepo.Delete, employees)
	deletes.Register(controller.KindOrder, orderRepo.Delete, orders)
	deletes.SetDashboard(dashboard)

	var tokens auth.TokenProvider = captcha.Static{Value: "dev-token"}
	if cfg.CaptchaTokenURL != "" {
		tokens = captcha.NewHTTPProvider(cfg.CaptchaTokenURL, cfg.CaptchaSiteKey)
	}

	flow := auth.NewFlow(authRepo, store, tokens, screen, screen, control, auth.Pages{
		Login:     cfg.LoginPage,
		Menu:      cfg.MenuPage,
		Dashboard: cfg.DashboardPage,
	}, cfg.ThrottleWindow, cfg.MaxLoginAttempts, cfg.LockoutSeconds)

	a := &app{
		screen:    screen,
		guard:     session.NewGuard(store, screen, cfg.LoginPage),
		flow:      flow,
		clients:   clients,
		dishes:    dishes,
		employees: employees,
		orders:    orders,
		composer:  composer,
		dashboard: dashboard,
		deletes:   deletes,
		in:        bufio.NewScanner(os.Stdin),
	}

	screen.Navigate(cfg.LoginPage)
	a.run()
}

func (a *app) run() {
	ctx := context.Background()

	fmt.Println("restaurant admin console. Type 'help' for commands.")
	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)

		switch args[0] {
		case "help":
			a.printHelp()
		case "quit", "exit":
			return
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "logout":
			a.flow.SignOut(ctx)
		case "callback":
			a.authCallback(args[1:])
		case "dashboard":
			if a.guard.Require(session.RoleAdmin, session.RoleStaff) {
				_ = a.dashboard.Refresh(ctx)
			}
		case "clients":
			a.entityPage(ctx, args[1:], a.clientCommands())
		case "menu":
			a.entityPage(ctx, args[1:], a.dishCommands())
		case "employees":
			a.entityPage(ctx, args[1:], a.employeeCommands())
		case "orders":
			a.orderPage(ctx, args[1:])
		case "confirm":
			_ = a.deletes.Confirm(ctx)
		case "cancel":
			a.deletes.Cancel()
		default:
			fmt.Println("unknown command, try 'help'")
		}
	}
}

func (a *app) printHelp() {
	fmt.Println(`commands:
  login | register | logout
  callback <query>    (OAuth redirect parameters, e.g. token=<jwt>)
  dashboard
  clients   [search <term> | add | edit <id> | delete <id>]
  menu      [search <term> | add | edit <id> | delete <id>]
  employees [search <term> | add | edit <id> | delete <id>]
  orders    [search <term> | add | edit <id> | view <id> | status <id> <status> | delete <id>]
  confirm | cancel    (pending delete)
  quit`)
}

func (a *app) prompt(label string) string {
	fmt.Print(label + ": ")
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptYes(label string) bool {
	return strings.EqualFold(a.prompt(label+" (y/n)"), "y")
}

func (a *app) authCallback(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: callback <query>, e.g. callback token=<jwt>")
		return
	}
	params, err := url.ParseQuery(args[0])
	if err != nil {
		fmt.Println("invalid callback query")
		return
	}
	_ = a.flow.HandleAuthCallback(params)
}

func (a *app) login(ctx context.Context) {
	username := a.prompt("username or email")
	password := a.prompt("password")
	_ = a.flow.SignIn(ctx, username, password)
}

func (a *app) register(ctx context.Context) {
	form := auth.RegisterForm{
		FirstName: a.prompt("first name"),
		LastName:  a.prompt("last name"),
		Username:  a.prompt("username"),
		Email:     a.prompt("email"),
		Phone:     a.prompt("phone (optional)"),
	}
	form.Password = a.prompt("password")
	for _, line := range auth.DescribeChecklist(a.flow.Checklist(form.Password)) {
		fmt.Println("  " + line)
	}
	form.ConfirmPassword = a.prompt("confirm password")
	form.Staff = a.promptYes("register as staff?")
	if form.Staff {
		form.Position = a.prompt("position")
		form.EmployeeID = a.prompt("employee id")
	}
	form.Terms = a.promptYes("accept terms and conditions?")
	_ = a.flow.SignUp(ctx, form)
}

// pageCommands bundles what the three simple list pages share.
type pageCommands struct {
	load   func(ctx context.Context) error
	search func(ctx context.Context, term string) error
	add    func(ctx context.Context)
	edit   func(ctx context.Context, id int)
	del    func(id int)
}

func (a *app) entityPage(ctx context.Context, args []string, cmds pageCommands) {
	if !a.guard.Require(session.RoleAdmin, session.RoleStaff) {
		return
	}

	if len(args) == 0 {
		_ = cmds.load(ctx)
		return
	}

	switch args[0] {
	case "search":
		_ = cmds.search(ctx, strings.Join(args[1:], " "))
	case "add":
		cmds.add(ctx)
	case "edit":
		if id, ok := parseID(args[1:]); ok {
			cmds.edit(ctx, id)
		}
	case "delete":
		if id, ok := parseID(args[1:]); ok {
			cmds.del(id)
		}
	default:
		fmt.Println("unknown subcommand")
	}
}

func (a *app) clientCommands() pageCommands {
	return pageCommands{
		load:   a.clients.Load,
		search: a.clients.Search,
		add: func(ctx context.Context) {
			form := a.clients.ShowCreateForm()
			a.fillClientForm(form)
			_ = a.clients.Submit(ctx, *form)
		},
		edit: func(ctx context.Context, id int) {
			form, err := a.clients.ShowEditForm(ctx, id)
			if err != nil {
				return
			}
			a.fillClientForm(form)
			_ = a.clients.Submit(ctx, *form)
		},
		del: a.clients.RequestDelete,
	}
}

func (a *app) fillClientForm(form *controller.ClientForm) {
	form.FirstName = orKeep(a.prompt("first name ["+form.FirstName+"]"), form.FirstName)
	form.LastName = orKeep(a.prompt("last name ["+form.LastName+"]"), form.LastName)
	form.Email = orKeep(a.prompt("email ["+form.Email+"]"), form.Email)
	form.Phone = orKeep(a.prompt("phone ["+form.Phone+"]"), form.Phone)
}

func (a *app) dishCommands() pageCommands {
	return pageCommands{
		load:   a.dishes.Load,
		search: a.dishes.Search,
		add: func(ctx context.Context) {
			form := a.dishes.ShowCreateForm()
			a.fillDishForm(form)
			_ = a.dishes.Submit(ctx, *form)
		},
		edit: func(ctx context.Context, id int) {
			form, err := a.dishes.ShowEditForm(ctx, id)
			if err != nil {
				return
			}
			a.fillDishForm(form)
			_ = a.dishes.Submit(ctx, *form)
		},
		del: a.dishes.RequestDelete,
	}
}

func (a *app) fillDishForm(form *controller.DishForm) {
	form.Name = orKeep(a.prompt("name ["+form.Name+"]"), form.Name)
	form.Description = orKeep(a.prompt("description ["+form.Description+"]"), form.Description)
	form.Price = orKeep(a.prompt("price ["+form.Price+"]"), form.Price)
}

func (a *app) employeeCommands() pageCommands {
	return pageCommands{
		load:   a.employees.Load,
		search: a.employees.Search,
		add: func(ctx context.Context) {
			form := a.employees.ShowCreateForm()
			a.fillEmployeeForm(form)
			_ = a.employees.Submit(ctx, *form)
		},
		edit: func(ctx context.Context, id int) {
			form, err := a.employees.ShowEditForm(ctx, id)
			if err != nil {
				return
			}
			a.fillEmployeeForm(form)
			_ = a.employees.Submit(ctx, *form)
		},
		del: a.employees.RequestDelete,
	}
}

func (a *app) fillEmployeeForm(form *controller.EmployeeForm) {
	form.FirstName = orKeep(a.prompt("first name ["+form.FirstName+"]"), form.FirstName)
	form.LastName = orKeep(a.prompt("last name ["+form.LastName+"]"), form.LastName)
	form.Position = orKeep(a.prompt("position ["+form.Position+"]"), form.Position)
	form.Salary = orKeep(a.prompt("salary ["+form.Salary+"]"), form.Salary)
}

func (a *app) orderPage(ctx context.Context, args []string) {
	if !a.guard.Require(session.RoleAdmin, session.RoleStaff) {
		return
	}

	if len(args) == 0 {
		_ = a.orders.Load(ctx)
		return
	}

	switch args[0] {
	case "search":
		_ = a.orders.Search(ctx, strings.Join(args[1:], " "))
	case "view":
		if id, ok := parseID(args[1:]); ok {
			_, _ = a.composer.Show(ctx, id)
		}
	case "status":
		if len(args) < 3 {
			fmt.Println("usage: orders status <id> <status>")
			return
		}
		if id, ok := parseID(args[1:2]); ok {
			_ = a.orders.UpdateStatus(ctx, id, models.OrderStatus(args[2]))
		}
	case "add":
		form := a.orders.ShowCreateForm()
		a.fillOrderForm(form)
		_ = a.orders.Submit(ctx, *form)
	case "edit":
		if id, ok := parseID(args[1:]); ok {
			form, err := a.orders.ShowEditForm(ctx, id)
			if err != nil {
				return
			}
			a.fillOrderForm(form)
			_ = a.orders.Submit(ctx, *form)
		}
	case "delete":
		if id, ok := parseID(args[1:]); ok {
			a.orders.RequestDelete(id)
		}
	default:
		fmt.Println("unknown subcommand")
	}
}

func (a *app) fillOrderForm(form *controller.OrderForm) {
	form.CustomerID = orKeep(a.prompt("customer id ["+form.CustomerID+"]"), form.CustomerID)
	form.Status = orKeep(a.prompt("status ["+form.Status+"]"), form.Status)

	form.Items = form.Items[:0]
	fmt.Println("order items, empty dish id to finish:")
	for {
		dishID := a.prompt("  dish id")
		if dishID == "" {
			break
		}
		form.Items = append(form.Items, controller.OrderItemForm{
			DishID:   dishID,
			Quantity: a.prompt("  quantity"),
			Price:    a.prompt("  unit price"),
		})
	}
}

func parseID(args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Println("an id is required")
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || id <= 0 {
		fmt.Println("invalid id:", args[0])
		return 0, false
	}
	return id, true
}

func orKeep(value, current string) string {
	if value == "" {
		return current
	}
	return value
}
