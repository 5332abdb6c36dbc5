package budget

import (
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SpentFor sums the amounts of transactions attributed to categoryID whose
// date falls in the given month and year. It returns zero when nothing
// matches. The result does not depend on the order of transactions.
func SpentFor(transactions []domain.Transaction, categoryID string, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.CategoryID != categoryID || !t.InPeriod(month, year) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total
}

// TotalExpenses sums every transaction amount.
func TotalExpenses(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// CategoryExpenses sums the amounts attributed to categoryID across all periods.
func CategoryExpenses(transactions []domain.Transaction, categoryID string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.CategoryID == categoryID {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ExpensesForMonth sums all transactions in one calendar month regardless of category.
func ExpensesForMonth(transactions []domain.Transaction, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.InPeriod(month, year) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// SpendingByCategory groups transaction amounts by category id. Dangling
// category ids are kept as their own keys so no spend is dropped.
func SpendingByCategory(transactions []domain.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		out[t.CategoryID] = out[t.CategoryID].Add(t.Amount)
	}
	return out
}

// Trend returns the change from previous to current as a percentage rounded to
// one decimal place. The boolean is false when previous is zero.
func Trend(current, previous decimal.Decimal) (decimal.Decimal, bool) {
	if previous.IsZero() {
		return decimal.Zero, false
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1), true
}
