package connecting

import (
	"errors"
	"fmt"
)

var (
	// Precondition errors, checked in order before any external call.
	ErrUserNotFound         = errors.New("user not found")
	ErrOrganizationMismatch = errors.New("user does not belong to the organization")
	ErrPermissionDenied     = errors.New("user is not allowed to manage ad accounts")
	ErrUnsupportedPlatform  = errors.New("platform has no registered adapter")
	ErrMissingOAuthParams   = errors.New("auth code and redirect uri are required")
	ErrMissingAPIKeyParams  = errors.New("api key and api secret are required")

	// Execution errors.
	ErrTokenExchange     = errors.New("error exchanging authorization code")
	ErrTokenEncryption   = errors.New("error encrypting credentials")
	ErrGenerateID        = errors.New("error generating account identifier")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ConnectError carries an API error code and extra context alongside the
// base error.
type ConnectError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func NewConnectError(err error, code string, details string) *ConnectError {
	return &ConnectError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
