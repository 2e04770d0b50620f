// Package apitest runs an in-process fake of the freelancing platform Auth
// API for tests. It reproduces the server's response shapes (token + user on
// success, field-error objects on rejection, 401 on bad tokens) and records
// every request so tests can assert what the client sent.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/dmitrijs2005/authclient/internal/common"
	"github.com/gin-gonic/gin"
)

// Prefix is the mount point of the API, matching the real deployment.
const Prefix = "/api/auth"

type account struct {
	user     models.User
	password string
	first    string
	last     string
}

// Request is what the fake saw on the wire.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          map[string]any
}

// Canned overrides the response of one path.
type Canned struct {
	Status int
	Body   any
	// Raw, when set, is written verbatim instead of Body.
	Raw string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int64
	accounts map[string]*account // by email
	tokens   map[string]string   // token -> email
	requests []Request
	canned   map[string]Canned
	gates    map[string]chan struct{}
}

// New starts the fake. Close it with t.Cleanup(srv.Close).
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		canned:   make(map[string]Canned),
		gates:    make(map[string]chan struct{}),
	}

	r := gin.New()
	r.Use(s.record, s.gate, s.override)

	api := r.Group(Prefix)
	api.GET("/", s.root)
	api.POST("/register/", s.register)
	api.POST("/login/", s.login)
	api.POST("/logout/", s.authenticated, s.logout)
	api.GET("/profile/", s.authenticated, s.profile)

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the API base to hand to the client.
func (s *Server) BaseURL() string {
	return s.URL + Prefix
}

// AddUser seeds an account and returns its token-less user record.
func (s *Server) AddUser(username, email, password string, role models.Role) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(username, email, password, role)
}

func (s *Server) addLocked(username, email, password string, role models.Role) models.User {
	s.nextID++
	u := models.User{ID: s.nextID, Username: username, Email: email, Role: role}
	s.accounts[strings.ToLower(email)] = &account{user: u, password: password}
	return u
}

// IssueToken logs email in server-side and returns the token.
func (s *Server) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenLocked(strings.ToLower(email))
}

// tokenLocked mimics get_or_create: one token per user.
func (s *Server) tokenLocked(email string) string {
	for tok, owner := range s.tokens {
		if owner == email {
			return tok
		}
	}
	tok, err := common.RandomHex(20)
	if err != nil {
		panic(err)
	}
	s.tokens[tok] = email
	return tok
}

// TokenValid reports whether the server still honours tok.
func (s *Server) TokenValid(tok string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[tok]
	return ok
}

// Respond makes path (relative to Prefix, e.g. "/login/") answer with c.
func (s *Server) Respond(path string, c Canned) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned[Prefix+path] = c
}

// Hold blocks requests to path until the returned release func is called.
func (s *Server) Hold(path string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.gates[Prefix+path] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// Requests returns recorded requests, optionally filtered by path.
func (s *Server) Requests(path string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Request
	for _, r := range s.requests {
		if path == "" || r.Path == Prefix+path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) record(c *gin.Context) {
	req := Request{
		Method:        c.Request.Method,
		Path:          c.Request.URL.Path,
		Authorization: c.GetHeader("Authorization"),
		RequestID:     c.GetHeader("X-Request-ID"),
	}
	if c.Request.Method == http.MethodPost && c.Request.ContentLength != 0 {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err == nil {
			req.Body = body
			c.Set("body", body)
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	c.Next()
}

func (s *Server) gate(c *gin.Context) {
	s.mu.Lock()
	ch := s.gates[c.Request.URL.Path]
	s.mu.Unlock()

	if ch != nil {
		select {
		case <-ch:
		case <-c.Request.Context().Done():
			c.Abort()
			return
		}
	}
	c.Next()
}

func (s *Server) override(c *gin.Context) {
	s.mu.Lock()
	canned, ok := s.canned[c.Request.URL.Path]
	s.mu.Unlock()

	if !ok {
		c.Next()
		return
	}
	if canned.Raw != "" {
		c.Data(canned.Status, "text/html; charset=utf-8", []byte(canned.Raw))
	} else if canned.Body == nil {
		c.Status(canned.Status)
	} else {
		c.JSON(canned.Status, canned.Body)
	}
	c.Abort()
}

func bodyOf(c *gin.Context) map[string]any {
	if v, ok := c.Get("body"); ok {
		return v.(map[string]any)
	}
	return map[string]any{}
}

func str(body map[string]any, key string) string {
	v, _ := body[key].(string)
	return v
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Freelancing Platform API",
		"version": "1.0",
		"endpoints": gin.H{
			"register": Prefix + "/register/",
			"login":    Prefix + "/login/",
			"profile":  Prefix + "/profile/",
			"logout":   Prefix + "/logout/",
		},
	})
}

func (s *Server) register(c *gin.Context) {
	body := bodyOf(c)
	username, email := str(body, "username"), strings.ToLower(str(body, "email"))
	password, confirm := str(body, "password"), str(body, "password_confirm")
	role := models.Role(str(body, "role"))

	s.mu.Lock()
	defer s.mu.Unlock()

	errs := gin.H{}
	required := "This field is required."
	if username == "" {
		errs["username"] = []string{required}
	}
	for _, a := range s.accounts {
		if username != "" && a.user.Username == username {
			errs["username"] = []string{"A user with that username already exists."}
		}
	}
	if email == "" {
		errs["email"] = []string{required}
	} else if _, taken := s.accounts[email]; taken {
		errs["email"] = []string{"user with this email already exists."}
	}
	if password == "" {
		errs["password"] = []string{required}
	} else if password != confirm {
		errs["password"] = []string{"Password fields didn't match."}
	}
	if !role.Valid() {
		errs["role"] = []string{fmt.Sprintf("%q is not a valid choice.", string(role))}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	u := s.addLocked(username, email, password, role)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    u,
		"token":   s.tokenLocked(email),
	})
}

func (s *Server) login(c *gin.Context) {
	body := bodyOf(c)
	email, password := strings.ToLower(str(body, "email")), str(body, "password")

	errs := gin.H{}
	if email == "" {
		errs["email"] = []string{"This field is required."}
	}
	if password == "" {
		errs["password"] = []string{"This field is required."}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[email]
	if !ok || a.password != password {
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Invalid credentials"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    a.user,
		"token":   s.tokenLocked(email),
	})
}

func (s *Server) authenticated(c *gin.Context) {
	scheme, tok, _ := strings.Cut(c.GetHeader("Authorization"), " ")
	if scheme != "Token" || tok == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
		return
	}

	s.mu.Lock()
	email, ok := s.tokens[tok]
	s.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
		return
	}
	c.Set("email", email)
	c.Set("token", tok)
	c.Next()
}

func (s *Server) logout(c *gin.Context) {
	s.mu.Lock()
	delete(s.tokens, c.GetString("token"))
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *Server) profile(c *gin.Context) {
	s.mu.Lock()
	a := s.accounts[c.GetString("email")]
	s.mu.Unlock()

	c.JSON(http.StatusOK, models.Profile{
		ID:        a.user.ID,
		Username:  a.user.Username,
		Email:     a.user.Email,
		Role:      a.user.Role,
		FirstName: a.first,
		LastName:  a.last,
	})
}

// SetName fills first/last name for the profile endpoint.
func (s *Server) SetName(email, first, last string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[strings.ToLower(email)]; ok {
		a.first, a.last = first, last
	}
}
