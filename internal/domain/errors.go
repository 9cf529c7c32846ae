package domain

import "errors"

// Sentinel errors for the application. All of them are user-retryable
// conditions surfaced as a transient notice, never fatal.
var (
	ErrDuplicateAccount   = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNotAuthenticated   = errors.New("no active session")
	ErrEmptyMessage       = errors.New("message text is empty")
	ErrSelfChat           = errors.New("cannot chat with yourself")
	ErrOfferFieldInvalid  = errors.New("invalid offer fields")
	ErrRatingOutOfRange   = errors.New("rating must be between 0 and 5")
)
