package http

import "errors"

// Sentinel errors used by the Basic authentication guard when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not carry the "Basic " scheme prefix or its payload is not
	// valid base64.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMalformedCredentials is returned when the decoded Basic payload does
	// not contain a colon separating the email from the password.
	ErrMalformedCredentials = errors.New("malformed credentials in `Authorization` header")
)
