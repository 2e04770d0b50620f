package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/authclient/internal/client/apitest"
	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*HTTPClient, *apitest.Server) {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.BaseURL())
	require.NoError(t, err)
	return c, srv
}

func TestNewHTTPClient_ValidatesURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"http://localhost:8000/api/auth", false},
		{"https://api.example.org/api/auth/", false},
		{"localhost:8000", true},
		{"ftp://host/api", true},
		{"http://", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		_, err := NewHTTPClient(tt.url)
		if tt.wantErr {
			assert.Error(t, err, tt.url)
		} else {
			assert.NoError(t, err, tt.url)
		}
	}
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "http://localhost:8000", Origin("http://localhost:8000/api/auth"))
	assert.Equal(t, "https://api.example.org", Origin("https://api.example.org/api/auth/"))
	assert.Equal(t, "not a url", Origin("not a url"))
}

func TestHTTPClient_RegisterAndLogin(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	reg, err := c.Register(ctx, RegisterRequest{
		Username: "bob", Email: "bob@example.org",
		Password: "secret1", PasswordConfirm: "secret1", Role: models.RoleRecruiter,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "bob", reg.User.Username)
	assert.Equal(t, models.RoleRecruiter, reg.User.Role)

	sent := srv.Requests(PathRegister)
	require.Len(t, sent, 1)
	assert.Equal(t, "secret1", sent[0].Body["password_confirm"])
	assert.Equal(t, "recruiter", sent[0].Body["role"])
	assert.NotEmpty(t, sent[0].RequestID)
	assert.Empty(t, sent[0].Authorization)

	login, err := c.Login(ctx, LoginRequest{Email: "bob@example.org", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.Token, login.Token)
	assert.Equal(t, reg.Session().User, login.User)
}

func TestHTTPClient_LoginRejected(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Login(context.Background(), LoginRequest{Email: "nobody@example.org", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, []string{"Invalid credentials"}, apiErr.Errors.NonField)
}

func TestHTTPClient_LoginRequiresExactly200(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(PathLogin, apitest.Canned{Status: http.StatusAccepted})

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusAccepted, apiErr.Status)
	assert.Equal(t, FieldErrors{}, apiErr.Errors)
}

func TestHTTPClient_ErrorBodyWithExtraKeysStaysAPIError(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(PathLogin, apitest.Canned{Status: http.StatusBadRequest, Raw: `{"non_field_errors":["Invalid credentials"],"code":400}`})

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, []string{"Invalid credentials"}, apiErr.Errors.NonField)
}

func TestHTTPClient_LoginWithOtherSuccessStatusIsRejection(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(PathLogin, apitest.Canned{Status: http.StatusCreated, Body: map[string]any{
		"message": "Login successful",
		"token":   "abc",
		"user":    map[string]any{"id": 1, "username": "bob"},
	}})

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, http.StatusCreated, apiErr.Status)
	_, ok := apiErr.Errors.First(NonFieldErrorsKey)
	assert.False(t, ok)
}

func TestHTTPClient_ProfileAndLogout(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	srv.AddUser("carol", "carol@example.org", "secret1", models.RoleFreelancer)
	srv.SetName("carol@example.org", "Carol", "Danvers")
	tok := srv.IssueToken("carol@example.org")

	p, err := c.Profile(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "Carol Danvers", p.FullName())
	assert.Equal(t, "Token "+tok, srv.Requests(PathProfile)[0].Authorization)

	require.NoError(t, c.Logout(ctx, tok))
	assert.False(t, srv.TokenValid(tok))

	_, err = c.Profile(ctx, tok)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestHTTPClient_Unauthorized401WithoutJSON(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(PathProfile, apitest.Canned{Status: http.StatusUnauthorized, Raw: "<h1>nope</h1>"})

	_, err := c.Profile(context.Background(), "tok")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestHTTPClient_HTMLErrorBodyIsUnavailable(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(PathRegister, apitest.Canned{Status: http.StatusInternalServerError, Raw: "<html>Server Error (500)</html>"})

	_, err := c.Register(context.Background(), RegisterRequest{})
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPClient_UndecodableSuccessIsUnavailable(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Respond(PathRoot, apitest.Canned{Status: http.StatusOK, Raw: "it works"})

	_, err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Ping(t *testing.T) {
	c, _ := newTestClient(t)

	root, err := c.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0", root.Version)
	assert.Equal(t, apitest.Prefix+"/login/", root.Endpoints["login"])
}

func TestHTTPClient_ServerDown(t *testing.T) {
	srv := apitest.New()
	base := srv.BaseURL()
	srv.Close()

	c, err := NewHTTPClient(base)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})
	require.ErrorIs(t, err, ErrUnavailable)

	err = c.Logout(context.Background(), "tok")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_TrailingSlashBase(t *testing.T) {
	srv := apitest.New()
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.BaseURL() + "/")
	require.NoError(t, err)

	_, err = c.Ping(context.Background())
	require.NoError(t, err)
	for _, r := range srv.Requests("") {
		assert.False(t, strings.Contains(r.Path, "//"), r.Path)
	}
}
