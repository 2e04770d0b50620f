package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/common"
)

// getSimpleText, getPassword and getChoice are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
)

var roleOptions = []string{string(models.RoleFreelancer), string(models.RoleRecruiter)}

// Register prompts for the registration form and submits it. Validation and
// server messages are printed by the service; the returned error is only for
// the caller's bookkeeping. Both password buffers are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	role, err := getChoice(a.reader, "Role", roleOptions, a.out)
	if err != nil {
		return err
	}

	_, err = a.authService.Register(ctx, models.Credentials{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: confirm,
		Role:            models.Role(role),
	})
	return err
}

// Login prompts for email and password and submits them. The password is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.authService.Login(ctx, email, password)
	return err
}

func (a *App) Logout(ctx context.Context) error {
	return a.authService.Logout(ctx)
}

// Profile loads the profile from the server, as the dashboard does when it
// opens. An expired session is reported and the service sends the user back
// to the login view.
func (a *App) Profile(ctx context.Context) error {
	if !a.authService.RequireAuth(ctx) {
		return nil
	}

	p, err := a.authService.Profile(ctx)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUnauthorized):
		a.printf("[error] Your session has expired. Please log in again.\n")
		return err
	case errors.Is(err, client.ErrUnavailable):
		a.printf("[error] Could not reach the server to load your profile.\n")
		return err
	default:
		a.printf("[error] Could not load your profile.\n")
		return err
	}

	a.printf("Username: %s\n", p.Username)
	a.printf("Email:    %s\n", p.Email)
	a.printf("Role:     %s\n", p.Role)
	if name := p.FullName(); name != "" {
		a.printf("Name:     %s\n", name)
	}
	return nil
}

// WhoAmI prints the user record kept in the local session without asking
// the server.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		a.printf("Not logged in.\n")
		return err
	}
	a.printf("%s <%s> (%s)\n", u.Username, u.Email, u.Role)
	return nil
}

// Status prints connectivity, current view and session state.
func (a *App) Status(ctx context.Context) error {
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}
	a.printf("Server:  %s (%s)\n", client.Origin(a.config.APIBaseURL), mode)
	a.printf("View:    %s\n", a.View())
	a.printf("Session: %t\n", a.isLoggedIn(ctx))
	return nil
}
