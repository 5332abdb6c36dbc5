package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category in one calendar month. Several budgets
// may share a category and period; each is tracked on its own.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Month      time.Month      `json:"month"`
	Year       int             `json:"year"`
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.CategoryID) == "" {
		return ErrCategoryRequired
	}
	if err := ValidateAmount(b.Amount); err != nil {
		return err
	}
	if !ValidMonth(b.Month) {
		return ErrInvalidMonth
	}
	if b.Year < MinBudgetYear || b.Year > MaxBudgetYear {
		return ErrInvalidYear
	}
	return nil
}

// Period returns the calendar month the budget applies to.
func (b Budget) Period() (time.Month, int) {
	return b.Month, b.Year
}

// MonthName formats the budget period month for display.
func (b Budget) MonthName() string {
	return MonthName(b.Month)
}

type budgetJSON struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
	Year       int             `json:"year"`
}

// MarshalJSON writes the month as its canonical name.
func (b Budget) MarshalJSON() ([]byte, error) {
	return json.Marshal(budgetJSON{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Month:      b.MonthName(),
		Year:       b.Year,
	})
}

// UnmarshalJSON accepts the month as a canonical name.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var raw budgetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	month, err := ParseMonth(raw.Month)
	if err != nil {
		return err
	}
	*b = Budget{
		ID:         raw.ID,
		CategoryID: raw.CategoryID,
		Amount:     raw.Amount,
		Month:      month,
		Year:       raw.Year,
	}
	return nil
}

type BudgetStatus string

const (
	BudgetStatusOK      BudgetStatus = "ok"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

type BudgetFilters struct {
	Month *time.Month
	Year  *int
}

// Matches reports whether b belongs to the filtered period. Nil fields match anything.
func (f BudgetFilters) Matches(b Budget) bool {
	if f.Month != nil && *f.Month != b.Month {
		return false
	}
	if f.Year != nil && *f.Year != b.Year {
		return false
	}
	return true
}

type BudgetRepository interface {
	Snapshot() []Budget
	GetByID(id string) (Budget, error)
	Create(budget Budget) (Budget, error)
	Update(budget Budget) (Budget, error)
	Delete(id string) error
}
