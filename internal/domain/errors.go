package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrCategoryNotFound    = fmt.Errorf("category %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrBudgetNotFound      = fmt.Errorf("budget %w", ErrNotFound)

	ErrIDRequired          = fmt.Errorf("%w: id is required", ErrInvalidInput)
	ErrNameTooShort        = fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, MinCategoryNameLength)
	ErrNameTooLong         = fmt.Errorf("%w: name exceeds maximum length", ErrInvalidInput)
	ErrColorRequired       = fmt.Errorf("%w: color is required", ErrInvalidInput)
	ErrInvalidColor        = fmt.Errorf("%w: color must be one of the preset colors", ErrInvalidInput)
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be a positive number", ErrInvalidInput)
	ErrAmountTooLarge      = fmt.Errorf("%w: amount exceeds maximum", ErrInvalidInput)
	ErrAmountTooPrecise    = fmt.Errorf("%w: amount has too many decimal places", ErrInvalidInput)
	ErrDescriptionTooShort = fmt.Errorf("%w: description must be at least %d characters", ErrInvalidInput, MinDescriptionLength)
	ErrDescriptionTooLong  = fmt.Errorf("%w: description exceeds maximum length", ErrInvalidInput)
	ErrDateRequired        = fmt.Errorf("%w: date is required", ErrInvalidInput)
	ErrCategoryRequired    = fmt.Errorf("%w: category is required", ErrInvalidInput)
	ErrInvalidMonth        = fmt.Errorf("%w: month must be a full English month name", ErrInvalidInput)
	ErrInvalidYear         = fmt.Errorf("%w: year out of range", ErrInvalidInput)
)

// Validation constants
const (
	MinCategoryNameLength = 2
	MaxCategoryNameLength = 100
	MinDescriptionLength  = 3
	MaxDescriptionLength  = 255
	MinBudgetYear         = 1900
	MaxBudgetYear         = 2100
	MaxAmountScale        = 8  // decimal places
	maxAmountExponent     = 12 // 1e12 already exceeds MaxAmount
)
