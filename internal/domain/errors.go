package domain

import (
	"errors" // Sentinel errors
	"fmt"    // Wrapped sentinels
)

// Errors returned by the core; callers classify them with errors.Is.
var (
	ErrBadCredentials   = errors.New("invalid username or password")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrUserNotFound     = errors.New("user not found")
	ErrCaseNotFound     = errors.New("case not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrForbidden        = errors.New("forbidden")
	ErrValidation       = errors.New("validation failed")
)

// Validation failures; each wraps ErrValidation.
var (
	ErrUsernameTaken        = fmt.Errorf("%w: username already exists", ErrValidation)
	ErrEmailTaken           = fmt.Errorf("%w: email already exists", ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrAmountTooLarge       = fmt.Errorf("%w: amount exceeds what the case can hold", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: unsupported payment method", ErrValidation)
)
