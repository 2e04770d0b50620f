package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/authclient/internal/client/client"
	"github.com/dmitrijs2005/authclient/internal/client/config"
	"github.com/dmitrijs2005/authclient/internal/client/services"
	"github.com/dmitrijs2005/authclient/internal/client/session"
	"github.com/dmitrijs2005/authclient/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	authService services.AuthService
	reader      *bufio.Reader
	out         io.Writer

	mu   sync.Mutex
	mode Mode
	view services.View

	outMu sync.Mutex
}

// NewApp opens session storage and the API client described by c and binds
// an AuthService to this terminal.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	repo, err := openRepository(ctx, c)
	if err != nil {
		l.Error(ctx, "error initializing session storage", "storage", c.Storage, "err", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, client.WithLogger(l))
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	a := &App{config: c, log: l, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
	a.authService = services.NewAuthService(apiClient, session.NewKVStore(repo),
		services.Ports{Navigator: a, Presenter: a, Logger: l},
		services.Options{RedirectDelay: c.RedirectDelay, ServerOrigin: client.Origin(c.APIBaseURL)},
	)
	return a, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) View() services.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.log.Warn(ctx, "closing session storage failed", "err", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsLoggedIn(ctx)
}

// StartOnlineStatusWatcher pings the API every interval until ctx is done and
// flips the mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}
