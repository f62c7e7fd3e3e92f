package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrCurrencyMismatch is returned when money in two different currencies is combined.
var ErrCurrencyMismatch = fmt.Errorf("%w: currency mismatch", ErrValidation)

// ErrInvalidRecurrence is returned for an unknown pattern or a custom pattern without a usable interval.
var ErrInvalidRecurrence = fmt.Errorf("%w: invalid recurrence", ErrValidation)
