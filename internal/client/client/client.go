package client

import (
	"context"

	"github.com/dmitrijs2005/authclient/internal/client/models"
)

// Client is the Auth API contract used by the auth service.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	// Logout notifies the server; the token is sent as-is.
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (*models.Profile, error)
	Ping(ctx context.Context) (*APIRoot, error)
}

type RegisterRequest struct {
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	PasswordConfirm string      `json:"password_confirm"`
	Role            models.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success payload of register and login.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// Session converts the response into the persisted form.
func (r *AuthResponse) Session() *models.Session {
	return &models.Session{Token: r.Token, User: r.User}
}

// APIRoot is the welcome document served at the API base.
type APIRoot struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
