package stubserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-admin/internal/api"
	"restaurant-admin/internal/logger"
	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
)

func newFixture(t *testing.T) (*httptest.Server, *api.Client) {
	t.Helper()

	srv := httptest.NewServer(New(logger.NewWithWriter("stubserver", io.Discard)).Handler())
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL+"/api", 5*time.Second, 1000, logger.NewWithWriter("test", io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)

	return srv, client
}

func signIn(t *testing.T, client *api.Client) *models.UserProfile {
	t.Helper()
	profile, err := repository.NewAuthRepository(client).SignIn(context.Background(), models.SignInRequest{
		UsernameOrEmail: "admin",
		Password:        "Admin@123",
	})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return profile
}

func TestRequiresSession(t *testing.T) {
	_, client := newFixture(t)

	var handlerRan bool
	client.SetAuthFailureHandler(func() { handlerRan = true })

	_, err := repository.NewClientRepository(client).GetAll(context.Background())
	if !errors.Is(err, repository.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !handlerRan {
		t.Error("auth failure handler should run on 401")
	}
}

func TestSignInIssuesSessionAndProfile(t *testing.T) {
	_, client := newFixture(t)

	profile := signIn(t, client)
	if profile.Username != "admin" {
		t.Errorf("username = %q", profile.Username)
	}
	if len(profile.Roles) != 1 || profile.Roles[0] != "ROLE_ADMIN" {
		t.Errorf("roles = %v", profile.Roles)
	}

	clients, err := repository.NewClientRepository(client).GetAll(context.Background())
	if err != nil {
		t.Fatalf("list clients after sign in: %v", err)
	}
	if len(clients) == 0 {
		t.Error("expected seeded clients")
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	_, client := newFixture(t)

	_, err := repository.NewAuthRepository(client).SignIn(context.Background(), models.SignInRequest{
		UsernameOrEmail: "admin",
		Password:        "nope",
	})
	if !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestClientCRUDRoundTrip(t *testing.T) {
	_, client := newFixture(t)
	signIn(t, client)
	repo := repository.NewClientRepository(client)
	ctx := context.Background()

	created := models.Client{FirstName: "Dora", LastName: "Klein", Email: "dora@example.com"}
	if err := repo.Create(ctx, &created); err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("create should assign an id")
	}

	created.Phone = "555-0199"
	if err := repo.Update(ctx, &created); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Phone != "555-0199" {
		t.Errorf("phone = %q", got.Phone)
	}

	found, err := repo.Search(ctx, "dora")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].ID != created.ID {
		t.Errorf("search = %v", found)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
}

func TestOrderLifecycle(t *testing.T) {
	_, client := newFixture(t)
	signIn(t, client)
	ctx := context.Background()

	clientRepo := repository.NewClientRepository(client)
	orderRepo := repository.NewOrderRepository(client, clientRepo)
	detailRepo := repository.NewOrderDetailRepository(client)

	order := models.Order{CustomerID: 1, Status: models.StatusPending}
	if err := orderRepo.Create(ctx, &order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("order create should surface the new id")
	}

	detail := models.OrderDetail{OrderID: order.ID, DishID: 1, Quantity: 2, Price: decimal.NewFromFloat(10)}
	if err := detailRepo.Create(ctx, &detail); err != nil {
		t.Fatalf("create detail: %v", err)
	}

	details, err := detailRepo.GetByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if len(details) != 1 || details[0].Quantity != 2 {
		t.Errorf("details = %v", details)
	}

	if err := orderRepo.UpdateStatus(ctx, order.ID, models.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("status = %s", got.Status)
	}

	// deleting the order sweeps its details
	if err := orderRepo.Delete(ctx, order.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := detailRepo.GetByOrder(ctx, order.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("details after delete err = %v, want ErrNotFound", err)
	}
}

func TestOrderSearchMatchesCustomerName(t *testing.T) {
	_, client := newFixture(t)
	signIn(t, client)

	clientRepo := repository.NewClientRepository(client)
	orderRepo := repository.NewOrderRepository(client, clientRepo)

	// seed order 1 belongs to Alice Moreno
	found, err := orderRepo.Search(context.Background(), "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].ID != 1 {
		t.Errorf("search by customer name = %v", found)
	}

	found, err = orderRepo.Search(context.Background(), "completed")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].Status != models.StatusCompleted {
		t.Errorf("search by status = %v", found)
	}
}

func TestMutationRejectedOnCSRFMismatch(t *testing.T) {
	srv, client := newFixture(t)
	signIn(t, client)

	// replay the session cookie but present a forged CSRF token
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/clients/1", nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, ck := range client.Jar().Cookies(client.BaseURL()) {
		req.AddCookie(ck)
	}
	req.Header.Set("X-CSRF-TOKEN", "forged")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestSignUpAndSignOut(t *testing.T) {
	_, client := newFixture(t)
	authRepo := repository.NewAuthRepository(client)
	ctx := context.Background()

	msg, err := authRepo.SignUp(ctx, models.SignUpRequest{
		FirstName: "Eva",
		LastName:  "Marsh",
		Username:  "eva",
		Email:     "eva@example.com",
		Password:  "Secret@123",
		Roles:     []string{"client"},
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if msg == "" {
		t.Error("expected a confirmation message")
	}

	// duplicate username is rejected
	if _, err := authRepo.SignUp(ctx, models.SignUpRequest{
		FirstName: "Eva",
		LastName:  "Marsh",
		Username:  "eva",
		Email:     "other@example.com",
		Password:  "Secret@123",
		Roles:     []string{"client"},
	}); !errors.Is(err, repository.ErrInvalidInput) {
		t.Errorf("duplicate sign up err = %v, want ErrInvalidInput", err)
	}

	// the new client account can sign in, then signing out drops the session
	if _, err := authRepo.SignIn(ctx, models.SignInRequest{UsernameOrEmail: "eva", Password: "Secret@123"}); err != nil {
		t.Fatalf("sign in as new user: %v", err)
	}
	if err := authRepo.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := repository.NewClientRepository(client).GetAll(ctx); !errors.Is(err, repository.ErrUnauthorized) {
		t.Errorf("request after sign out err = %v, want ErrUnauthorized", err)
	}
}

func TestStaffSignUpWaitsForApproval(t *testing.T) {
	_, client := newFixture(t)
	authRepo := repository.NewAuthRepository(client)
	ctx := context.Background()

	msg, err := authRepo.SignUp(ctx, models.SignUpRequest{
		FirstName: "Finn",
		LastName:  "Okoro",
		Username:  "finn",
		Email:     "finn@example.com",
		Password:  "Secret@123",
		Position:  "Waiter",
		Roles:     []string{"staff"},
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if msg == "" {
		t.Error("expected an approval notice")
	}

	// unapproved staff cannot sign in yet
	if _, err := authRepo.SignIn(ctx, models.SignInRequest{UsernameOrEmail: "finn", Password: "Secret@123"}); err == nil {
		t.Error("unapproved staff sign-in should fail")
	}
}
