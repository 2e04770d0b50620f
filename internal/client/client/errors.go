package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Keys with special meaning in server error objects.
const (
	NonFieldErrorsKey = "non_field_errors"
	DetailKey         = "detail"
)

// FieldErrors is the decoded error object of a rejected request. The server
// sends three shapes, possibly mixed:
//
//	{"non_field_errors": ["Invalid credentials"]}
//	{"email": ["user with this email already exists."], "password": ["..."]}
//	{"detail": "Authentication credentials were not provided."}
//
// Values that are neither a string nor a list of strings (numbers, nested
// objects, null) carry no message and are skipped.
type FieldErrors struct {
	NonField []string
	Fields   map[string][]string
	Detail   string
}

func (f *FieldErrors) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*f = FieldErrors{Fields: make(map[string][]string)}
	for key, val := range raw {
		msgs, ok := decodeMessages(val)
		if !ok {
			continue
		}
		switch key {
		case NonFieldErrorsKey:
			f.NonField = msgs
		case DetailKey:
			f.Detail = strings.Join(msgs, " ")
		default:
			f.Fields[key] = msgs
		}
	}
	return nil
}

// decodeMessages accepts either a string or an array of strings.
func decodeMessages(val json.RawMessage) ([]string, bool) {
	var one *string
	if err := json.Unmarshal(val, &one); err == nil {
		if one == nil {
			return nil, false
		}
		return []string{*one}, true
	}
	var many []string
	if err := json.Unmarshal(val, &many); err != nil || many == nil {
		return nil, false
	}
	return many, true
}

// First returns the first message reported for field. NonFieldErrorsKey and
// DetailKey address the special shapes.
func (f FieldErrors) First(field string) (string, bool) {
	var msgs []string
	switch field {
	case NonFieldErrorsKey:
		msgs = f.NonField
	case DetailKey:
		if f.Detail == "" {
			return "", false
		}
		return f.Detail, true
	default:
		msgs = f.Fields[field]
	}
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

// APIError is a non-2xx answer from the Auth API.
type APIError struct {
	Status int
	Errors FieldErrors
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth api: %d %s", e.Status, http.StatusText(e.Status))
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
