package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"restaurant-admin/internal/models"
	"restaurant-admin/internal/repository"
	"restaurant-admin/internal/sanitize"
	"restaurant-admin/internal/session"
	"restaurant-admin/internal/ui"
)

var (
	ErrThrottled  = errors.New("submission throttled")
	ErrLocked     = errors.New("login temporarily locked")
	ErrValidation = errors.New("validation failed")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return CheckPassword(fl.Field().String()).OK()
	})
	return v
}

// TokenProvider matches captcha.Provider without importing it.
type TokenProvider interface {
	Token(ctx context.Context, action string) (string, error)
}

type Pages struct {
	Login     string
	Menu      string
	Dashboard string
}

// RegisterForm mirrors the registration tab, including the client/staff role
// switch and its staff-only fields.
type RegisterForm struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Terms           bool
	Staff           bool
	Position        string
	EmployeeID      string
}

// Flow drives the login/register forms: both throttle resubmissions, login
// failures count toward a temporary lockout of the submit control.
type Flow struct {
	repo     repository.AuthRepository
	sessions *session.Store
	captcha  TokenProvider
	screen   ui.Screen
	nav      ui.Navigator
	control  ui.SubmitControl
	pages    Pages

	throttle    time.Duration
	maxAttempts int
	lockout     int

	mu         sync.Mutex
	lastSubmit map[string]time.Time
	failed     int
	locked     bool
	completing bool

	// seams for the tests
	now   func() time.Time
	after func(d time.Duration) <-chan time.Time
}

func NewFlow(
	repo repository.AuthRepository,
	sessions *session.Store,
	tokens TokenProvider,
	screen ui.Screen,
	nav ui.Navigator,
	control ui.SubmitControl,
	pages Pages,
	throttle time.Duration,
	maxAttempts int,
	lockoutSeconds int,
) *Flow {
	return &Flow{
		repo:        repo,
		sessions:    sessions,
		captcha:     tokens,
		screen:      screen,
		nav:         nav,
		control:     control,
		pages:       pages,
		throttle:    throttle,
		maxAttempts: maxAttempts,
		lockout:     lockoutSeconds,
		lastSubmit:  make(map[string]time.Time),
		now:         time.Now,
		after:       time.After,
	}
}

// throttled drops a submission landing inside the cooldown window of the
// previous one for the same form. The drop is silent.
func (f *Flow) throttled(form string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if last, ok := f.lastSubmit[form]; ok && now.Sub(last) < f.throttle {
		return true
	}
	f.lastSubmit[form] = now
	return false
}

func (f *Flow) isLocked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locked
}

func (f *Flow) SignIn(ctx context.Context, usernameOrEmail, password string) error {
	if f.throttled("login") {
		return ErrThrottled
	}
	if f.isLocked() {
		return ErrLocked
	}

	if usernameOrEmail == "" || password == "" {
		f.screen.Error("Please fill in all fields")
		return fmt.Errorf("%w: missing credentials", ErrValidation)
	}

	token, err := f.captcha.Token(ctx, "login")
	if err != nil {
		f.screen.Error("Verification failed. Please try again.")
		return err
	}

	f.screen.ShowLoading()
	defer f.screen.HideLoading()

	profile, err := f.repo.SignIn(ctx, models.SignInRequest{
		UsernameOrEmail: sanitize.Clean(usernameOrEmail),
		Password:        password,
		RecaptchaToken:  token,
	})
	if err != nil {
		f.registerFailure()
		f.screen.Error(err.Error())
		return err
	}

	f.mu.Lock()
	f.failed = 0
	f.mu.Unlock()

	f.sessions.Save(*profile)
	f.screen.Success("Signed in successfully. Redirecting...")
	f.nav.Navigate(f.RedirectFor(profile.Roles))
	return nil
}

func (f *Flow) registerFailure() {
	f.mu.Lock()
	f.failed++
	shouldLock := f.failed >= f.maxAttempts && !f.locked
	if shouldLock {
		f.locked = true
	}
	f.mu.Unlock()

	if shouldLock {
		f.control.Disable(fmt.Sprintf("Locked for %d seconds", f.lockout))
		go f.runLockout(f.lockout)
	}
}

// runLockout ticks the countdown once per second on the submit control, then
// resets the failure counter and re-enables it.
func (f *Flow) runLockout(seconds int) {
	remaining := seconds
	for remaining > 0 {
		<-f.after(time.Second)
		remaining--
		f.control.SetLabel(fmt.Sprintf("Locked for %d seconds", remaining))
	}

	f.mu.Lock()
	f.locked = false
	f.failed = 0
	f.mu.Unlock()

	f.control.Enable()
}

// RedirectFor picks the landing page by role membership.
func (f *Flow) RedirectFor(roles []string) string {
	for _, role := range roles {
		if role == session.RoleAdmin || role == session.RoleStaff {
			return f.pages.Dashboard
		}
	}
	return f.pages.Menu
}

func (f *Flow) SignUp(ctx context.Context, form RegisterForm) error {
	if f.throttled("register") {
		return ErrThrottled
	}

	if form.FirstName == "" || form.LastName == "" || form.Username == "" ||
		form.Email == "" || form.Password == "" || form.ConfirmPassword == "" {
		f.screen.Error("Please fill in all required fields")
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if form.Password != form.ConfirmPassword {
		f.screen.Error("Passwords do not match")
		return fmt.Errorf("%w: password mismatch", ErrValidation)
	}
	if !form.Terms {
		f.screen.Error("You must accept the terms and conditions")
		return fmt.Errorf("%w: terms not accepted", ErrValidation)
	}
	if !CheckPassword(form.Password).OK() {
		f.screen.Error("Password must be at least 8 characters with upper, lower, digit and special character")
		return fmt.Errorf("%w: weak password", ErrValidation)
	}

	req := models.SignUpRequest{
		FirstName: sanitize.Clean(form.FirstName),
		LastName:  sanitize.Clean(form.LastName),
		Username:  sanitize.Clean(form.Username),
		Email:     sanitize.Clean(form.Email),
		Phone:     sanitize.Clean(form.Phone),
		Password:  form.Password,
		Roles:     []string{"client"},
	}
	if form.Staff {
		req.Position = sanitize.Clean(form.Position)
		req.EmployeeID = sanitize.Clean(form.EmployeeID)
		req.Roles = []string{"staff"}
	}

	if err := validate.Struct(req); err != nil {
		f.screen.Error("Please check the form fields")
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	token, err := f.captcha.Token(ctx, "register")
	if err != nil {
		f.screen.Error("Verification failed. Please try again.")
		return err
	}
	req.RecaptchaToken = token

	f.screen.ShowLoading()
	defer f.screen.HideLoading()

	message, err := f.repo.SignUp(ctx, req)
	if err != nil {
		f.screen.Error(err.Error())
		return err
	}

	if form.Staff {
		if message == "" {
			message = "Your staff account request was submitted. Please wait for approval."
		}
		f.screen.Success(message)
	} else {
		f.screen.Success("Registered successfully. You can now sign in.")
		f.nav.Navigate(f.pages.Login)
	}
	return nil
}

// SignOut clears local state even when the backend call fails.
func (f *Flow) SignOut(ctx context.Context) {
	if err := f.repo.SignOut(ctx); err != nil {
		f.screen.Error(err.Error())
	}
	f.sessions.Clear()
	f.nav.Navigate(f.pages.Login)
}

// Checklist exposes the live per-rule password feedback.
func (f *Flow) Checklist(password string) Checklist {
	return CheckPassword(password)
}
