package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidFormat      = errors.New("invalid data format")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrAmountNegative     = errors.New("amount must not be negative")
)

// Validation constants
const (
	MaxCostNameLength = 200
)
