package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authclient/internal/client/client"
)

// User-facing texts.
const (
	MsgPasswordsMismatch = "Passwords do not match!"
	MsgPasswordTooShort  = "Password must be at least 6 characters long"
	MsgFillAllFields     = "Please fill in all fields"

	MsgRegisterSuccess = "Registration successful! Redirecting to dashboard..."
	MsgRegisterFailed  = "Registration failed"

	MsgLoginSuccess = "Login successful! Redirecting..."
	MsgLoginFailed  = "Login failed. Please check your credentials and try again."

	MsgSessionNotSaved = "Could not save the session on this device"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

// ConnectionErrorMessage is shown for every transport failure.
func ConnectionErrorMessage(origin string) string {
	return fmt.Sprintf("Connection error. Make sure the server is running at %s", origin)
}

// reason selects one message from a FieldErrors object.
type reason struct {
	key   string
	label string
}

// Login shows the single highest-priority reason.
var loginReasons = []reason{
	{key: client.NonFieldErrorsKey},
	{key: "email", label: "Email"},
	{key: "password", label: "Password"},
	{key: client.DetailKey},
}

// Register shows every field reason, in form order.
var registerReasons = []reason{
	{key: "username", label: "Username"},
	{key: "email", label: "Email"},
	{key: "password", label: "Password"},
	{key: "password_confirm", label: "Password confirmation"},
	{key: "role", label: "Role"},
	{key: client.NonFieldErrorsKey},
	{key: client.DetailKey},
}

func (r reason) format(fe client.FieldErrors) (string, bool) {
	msg, ok := fe.First(r.key)
	if !ok {
		return "", false
	}
	if r.label == "" {
		return msg, true
	}
	return r.label + ": " + msg, true
}

// LoginFailureMessage picks the first available reason by priority:
// non_field_errors, email, password, detail.
func LoginFailureMessage(fe client.FieldErrors) string {
	for _, r := range loginReasons {
		if msg, ok := r.format(fe); ok {
			return msg
		}
	}
	return MsgLoginFailed
}

// RegisterFailureMessage concatenates the first message of every rejected
// field, e.g. "Username: taken Email: invalid".
func RegisterFailureMessage(fe client.FieldErrors) string {
	var parts []string
	for _, r := range registerReasons {
		if msg, ok := r.format(fe); ok {
			parts = append(parts, msg)
		}
	}
	if len(parts) == 0 {
		return MsgRegisterFailed
	}
	return strings.Join(parts, " ")
}
