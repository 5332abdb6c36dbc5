package budget

import (
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary totals a set of evaluations.
type Summary struct {
	TotalBudgeted  decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	OK             int
	Warning        int
	Over           int
}

// Summarize adds up evaluations as given. Duplicate budgets for the same
// category and period each contribute, so TotalSpent can count the same
// transaction more than once.
func Summarize(evaluations []Evaluation) Summary {
	s := Summary{
		TotalBudgeted:  decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, e := range evaluations {
		s.TotalBudgeted = s.TotalBudgeted.Add(e.Budget.Amount)
		s.TotalSpent = s.TotalSpent.Add(e.Spent)
		s.TotalRemaining = s.TotalRemaining.Add(e.Remaining)
		switch e.Status {
		case domain.BudgetStatusOver:
			s.Over++
		case domain.BudgetStatusWarning:
			s.Warning++
		default:
			s.OK++
		}
	}
	return s
}
