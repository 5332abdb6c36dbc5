package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/labstack/echo/v4"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation = "https://budgetly.app/errors/validation"
	ErrorTypeNotFound   = "https://budgetly.app/errors/not-found"
	ErrorTypeConflict   = "https://budgetly.app/errors/conflict"
	ErrorTypeInternal   = "https://budgetly.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors maps domain validation errors to the request field they concern
var fieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrIDRequired, "id", "ID is required"},
	{domain.ErrNameTooShort, "name", "Name must be at least 2 characters"},
	{domain.ErrNameTooLong, "name", "Name must be 100 characters or less"},
	{domain.ErrColorRequired, "color", "Color is required"},
	{domain.ErrInvalidColor, "color", "Color must be one of the preset colors"},
	{domain.ErrInvalidAmount, "amount", "Amount must be a positive number"},
	{domain.ErrAmountTooLarge, "amount", "Amount must be 999999999999.99 or less"},
	{domain.ErrAmountTooPrecise, "amount", "Amount may have at most 8 decimal places"},
	{domain.ErrDescriptionTooShort, "description", "Description must be at least 3 characters"},
	{domain.ErrDescriptionTooLong, "description", "Description must be 255 characters or less"},
	{domain.ErrDateRequired, "date", "Date is required"},
	{domain.ErrCategoryRequired, "categoryId", "Category is required"},
	{domain.ErrInvalidMonth, "month", "Month must be a full month name"},
	{domain.ErrInvalidYear, "year", "Year must be between 1900 and 2100"},
}

// respondDomainError renders a service error. It returns handled=false for
// errors that are not domain errors so the caller can log them.
func respondDomainError(c echo.Context, err error, notFoundDetail string) (bool, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return true, NewNotFoundError(c, notFoundDetail)
	}
	if errors.Is(err, domain.ErrAlreadyExists) {
		return true, NewConflictError(c, "A resource with this ID already exists")
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		for _, fe := range fieldErrors {
			if errors.Is(err, fe.err) {
				return true, NewValidationError(c, "Validation failed", []ValidationError{
					{Field: fe.field, Message: fe.message},
				})
			}
		}
		return true, NewValidationError(c, "Validation failed", nil)
	}
	return false, nil
}
