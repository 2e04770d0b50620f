package common

const (
	// AuthorizationHeaderName carries the session token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// AuthorizationScheme is the prefix the Auth API expects before the token,
	// i.e. "Authorization: Token <value>".
	AuthorizationScheme = "Token"

	// RequestIDHeaderName is attached to every API call for log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
