package utils

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrMissingFields      = errors.New("missing required fields")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrInvalidToken       = errors.New("invalid verification token")
	ErrTokenExpired       = errors.New("verification token expired")
	ErrUpstream           = errors.New("completion service error")
	ErrMailDelivery       = errors.New("mail delivery error")
	ErrDatabaseError      = errors.New("database error")
)
