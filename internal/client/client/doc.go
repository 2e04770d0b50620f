// Package client talks to the freelancing platform Auth API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, Logout, Profile and Ping.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that sends the session
//     token as "Authorization: Token <value>", tags each call with an
//     X-Request-ID and decodes server error objects into FieldErrors.
//
// # Error Handling
//
// Transport failures and undecodable bodies wrap ErrUnavailable. Non-2xx
// responses are returned as *APIError carrying the decoded FieldErrors; a 401
// additionally matches ErrUnauthorized via errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; the client itself adds no timeout.
package client
