package models

// Storage keys under which a Session is persisted.
const (
	TokenKey = "authToken"
	UserKey  = "user"
)

// Session proves authentication: the opaque server token plus the user it
// was issued for. Presence of the token is the only "logged in" signal; no
// expiry is tracked client-side.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Credentials is the transient form input of register/login. Passwords are
// byte slices so the caller can wipe them after use; they are never persisted.
type Credentials struct {
	Username        string
	Email           string
	Password        []byte
	PasswordConfirm []byte
	Role            Role
}
