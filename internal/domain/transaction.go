package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryId"`
}

// Validate checks the fields a user supplies when recording a transaction.
func (t Transaction) Validate() error {
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	desc := strings.TrimSpace(t.Description)
	if utf8.RuneCountInString(desc) < MinDescriptionLength {
		return ErrDescriptionTooShort
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if t.Date.IsZero() {
		return ErrDateRequired
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return ErrCategoryRequired
	}
	return nil
}

// InPeriod reports whether the transaction date falls in the given calendar
// month, read in the location the date was recorded with.
func (t Transaction) InPeriod(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}

type TransactionFilters struct {
	Search     string
	CategoryID *string
}

type TransactionRepository interface {
	Snapshot() []Transaction
	GetByID(id string) (Transaction, error)
	Create(transaction Transaction) (Transaction, error)
	Update(transaction Transaction) (Transaction, error)
	Delete(id string) error
}
