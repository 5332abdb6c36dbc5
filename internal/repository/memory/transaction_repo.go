package memory

import (
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository in process memory
type TransactionRepository struct {
	items *collection[domain.Transaction]
}

// NewTransactionRepository creates a TransactionRepository holding a copy of initial
func NewTransactionRepository(initial ...domain.Transaction) *TransactionRepository {
	return &TransactionRepository{
		items: newCollection(func(t domain.Transaction) string { return t.ID },
			domain.ErrTransactionNotFound, domain.ErrAlreadyExists, initial),
	}
}

// Snapshot returns the current transactions. The slice must not be modified.
func (r *TransactionRepository) Snapshot() []domain.Transaction {
	return r.items.snapshot()
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(id string) (domain.Transaction, error) {
	return r.items.get(id)
}

// Create appends a new transaction
func (r *TransactionRepository) Create(transaction domain.Transaction) (domain.Transaction, error) {
	return r.items.add(transaction)
}

// Update replaces the transaction with the same ID
func (r *TransactionRepository) Update(transaction domain.Transaction) (domain.Transaction, error) {
	return r.items.replace(transaction)
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id string) error {
	return r.items.remove(id)
}
