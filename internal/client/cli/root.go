package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authclient/internal/client/services"
)

// getStatus renders the prompt decoration: "(alice online)", "(offline)" or "".
func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if u, err := a.authService.CurrentUser(ctx); err == nil {
		s = u.Username + " "
	}
	if mode := a.Mode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root opens the view that matches the stored session, starts the
// connectivity watcher and runs the REPL until the user leaves.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to the auth client (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.isLoggedIn(ctx) {
		a.Navigate(services.ViewDashboard)
	} else {
		a.Navigate(services.ViewLogin)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
