package budget

import (
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// WarningThreshold is the spent percentage above which a budget is in warning.
	WarningThreshold = 80
	// OverThreshold is the spent percentage above which a budget is over.
	OverThreshold = 100
)

var hundred = decimal.NewFromInt(100)

// Evaluation is the derived spend state of one budget.
type Evaluation struct {
	Budget     domain.Budget
	Spent      decimal.Decimal
	// Remaining is Budget.Amount - Spent and goes negative once the budget is exceeded.
	Remaining  decimal.Decimal
	// Percentage is the spent ratio for progress display, rounded and clamped to [0, 100].
	Percentage int
	Status     domain.BudgetStatus
}

// EvaluateBudget computes spend against b from transactions in b's category and period.
func EvaluateBudget(b domain.Budget, transactions []domain.Transaction) Evaluation {
	month, year := b.Period()
	spent := SpentFor(transactions, b.CategoryID, month, year)
	return Evaluation{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.Amount.Sub(spent),
		Percentage: Percentage(spent, b.Amount),
		Status:     Classify(spent, b.Amount),
	}
}

// EvaluateAll evaluates each budget independently, in input order. Budgets
// sharing a category and period are not merged.
func EvaluateAll(budgets []domain.Budget, transactions []domain.Transaction) []Evaluation {
	out := make([]Evaluation, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, EvaluateBudget(b, transactions))
	}
	return out
}

// Percentage returns round(min(spent/amount*100, 100)), floored at 0.
//
// A non-positive amount has no meaningful ratio; it reports 100 when anything
// was spent and 0 otherwise instead of dividing by zero.
func Percentage(spent, amount decimal.Decimal) int {
	if !amount.IsPositive() {
		if spent.IsPositive() {
			return 100
		}
		return 0
	}
	if spent.GreaterThanOrEqual(amount) {
		return 100
	}
	if !spent.IsPositive() {
		return 0
	}
	// Round is half away from zero, which equals half up for a positive ratio.
	return int(spent.Mul(hundred).Div(amount).Round(0).IntPart())
}

// Classify derives the status from the unclamped spent ratio. Thresholds are
// compared by cross multiplication so the boundaries are exact:
// 80% is ok, anything above is warning, up to and including 100%; above 100% is over.
func Classify(spent, amount decimal.Decimal) domain.BudgetStatus {
	if !amount.IsPositive() {
		if spent.IsPositive() {
			return domain.BudgetStatusOver
		}
		return domain.BudgetStatusOK
	}
	scaled := spent.Mul(hundred)
	switch {
	case scaled.GreaterThan(amount.Mul(decimal.NewFromInt(OverThreshold))):
		return domain.BudgetStatusOver
	case scaled.GreaterThan(amount.Mul(decimal.NewFromInt(WarningThreshold))):
		return domain.BudgetStatusWarning
	default:
		return domain.BudgetStatusOK
	}
}
