package cli

import (
	"context"

	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/client/services"
)

// Navigate switches the terminal to view. It may be called from the redirect
// timer while the REPL is waiting for input.
func (a *App) Navigate(view services.View) {
	a.mu.Lock()
	a.view = view
	a.mu.Unlock()

	switch view {
	case services.ViewDashboard:
		a.printf("\n== Dashboard ==\n")
		if u, err := a.authService.CurrentUser(context.Background()); err == nil {
			a.printf("Welcome, %s! You are signed in as a %s.\n", u.Username, u.Role)
		}
		a.printf("Type 'profile' to load your profile or 'logout' to sign out.\n")
	case services.ViewLogin:
		a.printf("\n== Login ==\n")
		a.printf("Type 'login' to sign in or 'register' to create an account.\n")
	}
}

// Show renders a status message produced by the service.
func (a *App) Show(msg models.Message) {
	switch msg.Kind {
	case models.MessageError:
		a.printf("[error] %s\n", msg.Text)
	default:
		a.printf("[ok] %s\n", msg.Text)
	}
}
