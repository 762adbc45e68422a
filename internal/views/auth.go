package views

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"sphereoftech/internal/action"
	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/logging"
)

// Demo account filled by Login.FillDemo.
const (
	DemoEmail    = "alex@sphereoftech.com"
	DemoPassword = "demo123"
)

// AfterSignInPath is where a successful sign-in or sign-up lands.
const AfterSignInPath = "/dashboard"

// Credentials is the content of the sign-in and sign-up forms.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// authForm is the shared state of the login and signup views. Any non-blank
// credentials are accepted.
type authForm struct {
	env    *Env
	logger zerolog.Logger

	mu          sync.Mutex
	form        Credentials
	submitted   Credentials
	submit      *action.Action[string]
	requireName bool
	view        string
}

func newAuthForm(env *Env, view, actionName, success string, requireName bool) *authForm {
	f := &authForm{
		env:         env,
		logger:      logging.WithView(env.Logger, view),
		requireName: requireName,
		view:        view,
	}
	f.submit = newAction(env, action.Spec[string]{
		Name:           actionName,
		Delay:          action.SignInDelay,
		Reveal:         func() string { return AfterSignInPath },
		SuccessMessage: success,
	})
	f.submit.OnDone(f.finish)
	return f
}

// SetCredentials replaces the form content.
func (f *authForm) SetCredentials(c Credentials) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = c
}

// Credentials returns the form content.
func (f *authForm) Credentials() Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Loading reports whether a submission is pending.
func (f *authForm) Loading() bool {
	return f.submit.Pending()
}

// Action exposes the submit action for waiting and completion hooks.
func (f *authForm) Action() *action.Action[string] {
	return f.submit
}

// Submit validates the form and starts the simulated request.
func (f *authForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	form := f.form
	f.mu.Unlock()

	if err := f.validate(form); err != nil {
		f.env.notifier().Error("%v", err)
		return err
	}

	f.mu.Lock()
	previous := f.submitted
	f.submitted = form
	f.mu.Unlock()

	if err := f.submit.Trigger(ctx); err != nil {
		f.mu.Lock()
		f.submitted = previous
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *authForm) validate(c Credentials) error {
	if f.requireName && strings.TrimSpace(c.Name) == "" {
		return apperrors.NewValidationError("name", c.Name, "full name is required")
	}
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return apperrors.Wrap(apperrors.ErrEmptyCredential, f.view)
	}
	if !strings.Contains(c.Email, "@") {
		return apperrors.NewValidationError("email", c.Email, "enter a valid email address")
	}
	return nil
}

func (f *authForm) finish(path string) {
	f.mu.Lock()
	c := f.submitted
	f.mu.Unlock()

	if f.env.Store != nil {
		if _, err := f.env.Store.StartSession(context.Background(), c.Email, c.Name); err != nil {
			f.logger.Warn().Err(err).Msg("failed to record session")
		}
	}
	f.logger.Info().Str("email", logging.MaskEmail(c.Email)).Msg("signed in")
	f.env.navigate(path)
}

// Login is the sign-in view.
type Login struct {
	*authForm
}

// NewLogin creates an empty sign-in form.
func NewLogin(env *Env) *Login {
	return &Login{newAuthForm(env, "login", "sign-in", "Welcome to SphereOfTech!", false)}
}

// FillDemo fills the form with the demo account.
func (v *Login) FillDemo() {
	v.SetCredentials(Credentials{Email: DemoEmail, Password: DemoPassword})
	v.env.notifier().Info("Demo credentials filled")
}

// Signup is the account creation view.
type Signup struct {
	*authForm
}

// NewSignup creates an empty sign-up form.
func NewSignup(env *Env) *Signup {
	return &Signup{newAuthForm(env, "signup", "sign-up", "Account created successfully! Welcome to SphereOfTech!", true)}
}
