package services

import "errors"

var (
	// ErrBusy is returned when a submission is attempted while the same
	// control is still disabled by an outstanding one.
	ErrBusy = errors.New("request already in progress")

	// ErrNoToken marks a success status whose body carried no token.
	ErrNoToken = errors.New("response carries no token")

	ErrNotLoggedIn = errors.New("not logged in")
)

// ValidationError is a local input problem detected before any request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}
