package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	alertService    *AlertService
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService. alertService may be nil
// when alerts are disabled.
func NewTransactionService(transactionRepo domain.TransactionRepository, alertService *AlertService) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		alertService:    alertService,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

func (s *TransactionService) checkAlerts() {
	if s.alertService != nil {
		s.alertService.Check()
	}
}

// TransactionInput holds the user-editable fields of a transaction
type TransactionInput struct {
	ID          string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CategoryID  string
}

func (in TransactionInput) toTransaction(id string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		CategoryID:  strings.TrimSpace(in.CategoryID),
	}
}

// CreateTransaction validates and records a new expense. A random id is
// assigned when the input has none.
func (s *TransactionService) CreateTransaction(input TransactionInput) (domain.Transaction, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.New().String()
	}
	transaction := input.toTransaction(id)
	if err := transaction.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	created, err := s.transactionRepo.Create(transaction)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeCreated, websocket.EntityTypeTransaction, created))
	s.checkAlerts()
	return created, nil
}

// GetTransactions returns transactions matching the filters, newest first.
// Transactions on the same date keep their insertion order.
func (s *TransactionService) GetTransactions(filters domain.TransactionFilters) []domain.Transaction {
	snapshot := s.transactionRepo.Snapshot()
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	result := make([]domain.Transaction, 0, len(snapshot))
	for _, t := range snapshot {
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if filters.CategoryID != nil && *filters.CategoryID != "" && t.CategoryID != *filters.CategoryID {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// GetRecentTransactions returns at most limit transactions, newest first
func (s *TransactionService) GetRecentTransactions(limit int) []domain.Transaction {
	all := s.GetTransactions(domain.TransactionFilters{})
	if limit >= 0 && len(all) > limit {
		return all[:limit]
	}
	return all
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(id string) (domain.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// UpdateTransaction replaces the fields of an existing transaction
func (s *TransactionService) UpdateTransaction(id string, input TransactionInput) (domain.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Transaction{}, domain.ErrIDRequired
	}
	transaction := input.toTransaction(id)
	if err := transaction.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	updated, err := s.transactionRepo.Update(transaction)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("update transaction %s: %w", id, err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeUpdated, websocket.EntityTypeTransaction, updated))
	s.checkAlerts()
	return updated, nil
}

// DeleteTransaction removes a transaction
func (s *TransactionService) DeleteTransaction(id string) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeDeleted, websocket.EntityTypeTransaction, map[string]string{"id": id}))
	s.checkAlerts()
	return nil
}
