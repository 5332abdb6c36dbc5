package memory

import (
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository in process memory.
// Budgets for the same category and period are stored side by side.
type BudgetRepository struct {
	items *collection[domain.Budget]
}

// NewBudgetRepository creates a BudgetRepository holding a copy of initial
func NewBudgetRepository(initial ...domain.Budget) *BudgetRepository {
	return &BudgetRepository{
		items: newCollection(func(b domain.Budget) string { return b.ID },
			domain.ErrBudgetNotFound, domain.ErrAlreadyExists, initial),
	}
}

// Snapshot returns the current budgets. The slice must not be modified.
func (r *BudgetRepository) Snapshot() []domain.Budget {
	return r.items.snapshot()
}

// GetByID retrieves a budget by its ID
func (r *BudgetRepository) GetByID(id string) (domain.Budget, error) {
	return r.items.get(id)
}

// Create appends a new budget
func (r *BudgetRepository) Create(budget domain.Budget) (domain.Budget, error) {
	return r.items.add(budget)
}

// Update replaces the budget with the same ID
func (r *BudgetRepository) Update(budget domain.Budget) (domain.Budget, error) {
	return r.items.replace(budget)
}

// Delete removes a budget
func (r *BudgetRepository) Delete(id string) error {
	return r.items.remove(id)
}

var (
	_ domain.CategoryRepository    = (*CategoryRepository)(nil)
	_ domain.TransactionRepository = (*TransactionRepository)(nil)
	_ domain.BudgetRepository      = (*BudgetRepository)(nil)
)
