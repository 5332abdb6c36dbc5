package memory

import (
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository in process memory
type CategoryRepository struct {
	items *collection[domain.Category]
}

// NewCategoryRepository creates a CategoryRepository holding a copy of initial
func NewCategoryRepository(initial ...domain.Category) *CategoryRepository {
	return &CategoryRepository{
		items: newCollection(func(c domain.Category) string { return c.ID },
			domain.ErrCategoryNotFound, domain.ErrAlreadyExists, initial),
	}
}

// Snapshot returns the current categories. The slice must not be modified.
func (r *CategoryRepository) Snapshot() []domain.Category {
	return r.items.snapshot()
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id string) (domain.Category, error) {
	return r.items.get(id)
}

// Create appends a new category
func (r *CategoryRepository) Create(category domain.Category) (domain.Category, error) {
	return r.items.add(category)
}

// Update replaces the category with the same ID
func (r *CategoryRepository) Update(category domain.Category) (domain.Category, error) {
	return r.items.replace(category)
}

// Delete removes a category. Transactions and budgets referencing it are left untouched.
func (r *CategoryRepository) Delete(id string) error {
	return r.items.remove(id)
}
