// Package services contains application services for the auth client.
// This file defines the authentication service: register, login, logout,
// profile lookup and the logged-in checks that guard restricted views.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/session"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

// AuthService defines authentication operations for the UI.
//
// Contract:
//   - Register / Login: validate locally, call the API, persist the Session,
//     show a message and schedule one navigation to the dashboard.
//   - Logout: always clears the Session and navigates to login. A pending
//     dashboard redirect is cancelled.
//   - Profile: on 401 clears the Session, cancels a pending redirect and
//     navigates to login.
//   - IsLoggedIn / RequireAuth: token presence checks.
//   - CurrentUser: the stored user record.
//   - Ping: API reachability.
//   - Close: release storage.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.Profile, error)
	IsLoggedIn(ctx context.Context) bool
	RequireAuth(ctx context.Context) bool
	CurrentUser(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Ports are the side effects the service drives. Nil fields get no-op (or
// system clock) defaults.
type Ports struct {
	Navigator Navigator
	Presenter Presenter
	Clock     Clock
	Logger    logging.Logger
}

type Options struct {
	// RedirectDelay separates the success message from the navigation.
	RedirectDelay time.Duration
	// ServerOrigin is quoted in connectivity messages.
	ServerOrigin string
}

// authService is the concrete AuthService backed by a remote Client and a
// session Store.
type authService struct {
	client client.Client
	store  session.Store

	nav   Navigator
	ui    Presenter
	clock Clock
	log   logging.Logger

	opts Options

	loginControl    Control
	registerControl Control

	mu      sync.Mutex
	pending *pendingRedirect
}

// pendingRedirect is a scheduled navigation and the control it re-enables.
type pendingRedirect struct {
	ctl  *Control
	stop func() bool
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, store session.Store, ports Ports, opts Options) AuthService {
	s := &authService{
		client: c,
		store:  store,
		nav:    ports.Navigator,
		ui:     ports.Presenter,
		clock:  ports.Clock,
		log:    ports.Logger,
		opts:   opts,
	}
	if s.nav == nil {
		s.nav = nopNavigator{}
	}
	if s.ui == nil {
		s.ui = nopPresenter{}
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	return s
}

func (s *authService) fail(text string) {
	s.ui.Show(models.ErrorMessage(text))
}

func (s *authService) invalid(text string) error {
	s.fail(text)
	return &ValidationError{Message: text}
}

// validateRegistration mirrors the form checks, in order: confirmation,
// length, then required fields.
func validateRegistration(c models.Credentials) string {
	if !bytes.Equal(c.Password, c.PasswordConfirm) {
		return MsgPasswordsMismatch
	}
	if utf8.RuneCount(c.Password) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	if c.Username == "" || c.Email == "" || c.Role == "" || len(c.Password) == 0 {
		return MsgFillAllFields
	}
	return ""
}

// Register validates creds locally and, if they pass, creates the account.
func (s *authService) Register(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	creds.Email = strings.TrimSpace(creds.Email)

	if msg := validateRegistration(creds); msg != "" {
		return nil, s.invalid(msg)
	}

	if !s.registerControl.TryDisable() {
		s.log.Debug(ctx, "registration already in progress")
		return nil, ErrBusy
	}

	resp, err := s.client.Register(ctx, client.RegisterRequest{
		Username:        creds.Username,
		Email:           creds.Email,
		Password:        string(creds.Password),
		PasswordConfirm: string(creds.PasswordConfirm),
		Role:            creds.Role,
	})
	if err != nil {
		s.registerControl.Enable()
		s.showRequestError(ctx, "registration", err, RegisterFailureMessage)
		return nil, err
	}
	if resp.Token == "" {
		s.registerControl.Enable()
		s.fail(MsgRegisterFailed)
		return nil, ErrNoToken
	}

	sess := resp.Session()
	if err := s.persist(ctx, sess, &s.registerControl); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "registration succeeded", "user", sess.User.Username)
	s.ui.Show(models.SuccessMessage(MsgRegisterSuccess))
	s.redirect(&s.registerControl, ViewDashboard)
	return sess, nil
}

// Login authenticates with email and password. Only one login may be
// outstanding at a time.
func (s *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	email = strings.TrimSpace(email)
	password = bytes.TrimSpace(password)

	if email == "" || len(password) == 0 {
		return nil, s.invalid(MsgFillAllFields)
	}

	if !s.loginControl.TryDisable() {
		s.log.Debug(ctx, "duplicate login submission ignored")
		return nil, ErrBusy
	}

	s.log.Info(ctx, "attempting login", "email", email)
	resp, err := s.client.Login(ctx, client.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		s.loginControl.Enable()
		s.showRequestError(ctx, "login", err, LoginFailureMessage)
		return nil, err
	}
	if resp.Token == "" {
		s.loginControl.Enable()
		s.fail(MsgLoginFailed)
		return nil, ErrNoToken
	}

	sess := resp.Session()
	if err := s.persist(ctx, sess, &s.loginControl); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "login succeeded", "user", sess.User.Username)
	s.ui.Show(models.SuccessMessage(MsgLoginSuccess))
	s.redirect(&s.loginControl, ViewDashboard)
	return sess, nil
}

func (s *authService) showRequestError(ctx context.Context, op string, err error, mapper func(client.FieldErrors) string) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		s.log.Info(ctx, op+" rejected", "status", apiErr.Status)
		s.fail(mapper(apiErr.Errors))
		return
	}
	s.log.Error(ctx, op+" error", "err", err)
	s.fail(ConnectionErrorMessage(s.opts.ServerOrigin))
}

func (s *authService) persist(ctx context.Context, sess *models.Session, ctl *Control) error {
	if err := s.store.Set(ctx, sess); err != nil {
		ctl.Enable()
		s.log.Error(ctx, "saving session failed", "err", err)
		s.fail(MsgSessionNotSaved)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// redirect navigates after the configured delay. The control stays disabled
// until then, like a button on a page that is about to be replaced. A newer
// redirect or a cancelRedirect call supersedes it.
func (s *authService) redirect(ctl *Control, view View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelRedirectLocked()
	p := &pendingRedirect{ctl: ctl}
	s.pending = p
	p.stop = s.clock.AfterFunc(s.opts.RedirectDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.pending != p {
			return
		}
		s.pending = nil
		ctl.Enable()
		s.nav.Navigate(view)
	})
}

// cancelRedirect drops a scheduled navigation and re-enables its control.
func (s *authService) cancelRedirect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelRedirectLocked()
}

func (s *authService) cancelRedirectLocked() {
	p := s.pending
	if p == nil {
		return
	}
	s.pending = nil
	if p.stop != nil {
		p.stop()
	}
	p.ctl.Enable()
}

// Logout tells the server (best effort), then clears the local session and
// navigates to login whatever the server said.
func (s *authService) Logout(ctx context.Context) error {
	s.cancelRedirect()

	token, err := s.store.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading token before logout failed", "err", err)
	}

	if token != "" {
		if err := s.client.Logout(ctx, token); err != nil {
			s.log.Warn(ctx, "server logout failed, clearing local session anyway", "err", err)
		}
	}

	clearErr := s.store.Clear(ctx)
	if clearErr != nil {
		s.log.Error(ctx, "clearing session failed", "err", clearErr)
	}
	s.nav.Navigate(ViewLogin)

	if clearErr != nil {
		return fmt.Errorf("clear session: %w", clearErr)
	}
	return nil
}

// Profile fetches the current user's profile. A rejected token ends the
// local session.
func (s *authService) Profile(ctx context.Context) (*models.Profile, error) {
	token, err := s.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if token == "" {
		s.cancelRedirect()
		s.nav.Navigate(ViewLogin)
		return nil, client.ErrUnauthorized
	}

	p, err := s.client.Profile(ctx, token)
	if err == nil {
		return p, nil
	}

	if errors.Is(err, client.ErrUnauthorized) {
		s.log.Info(ctx, "token rejected, ending session")
		s.cancelRedirect()
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.log.Error(ctx, "clearing session failed", "err", clearErr)
		}
		s.nav.Navigate(ViewLogin)
		return nil, err
	}

	s.log.Error(ctx, "profile error", "err", err)
	return nil, err
}

func (s *authService) IsLoggedIn(ctx context.Context) bool {
	ok, err := s.store.HasToken(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading session failed", "err", err)
		return false
	}
	return ok
}

func (s *authService) RequireAuth(ctx context.Context) bool {
	if s.IsLoggedIn(ctx) {
		return true
	}
	s.nav.Navigate(ViewLogin)
	return false
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	sess, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	return &sess.User, nil
}

func (s *authService) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx)
	return err
}

func (s *authService) Close(ctx context.Context) error {
	return s.store.Close()
}
