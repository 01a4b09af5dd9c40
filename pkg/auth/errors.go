package auth

import "fmt"

// AuthError is a non-200 response from the identity provider. It is fatal
// for the triggering call and never retried at this layer.
type AuthError struct {
	// StatusCode is the HTTP status returned by the token endpoint.
	StatusCode int

	// Body is the response body, truncated, for diagnostics.
	Body string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("auth: token endpoint returned %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized returns true for credential rejections (HTTP 401).
func (e *AuthError) IsUnauthorized() bool {
	return e.StatusCode == 401
}
