// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage payload could not be decoded (e.g. corrupted user record).
	ErrorCorruptedData = errors.New("corrupted data")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
)
