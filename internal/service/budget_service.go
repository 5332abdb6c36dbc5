package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/budget"
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget CRUD and progress reporting
type BudgetService struct {
	budgetRepo      domain.BudgetRepository
	categoryRepo    domain.CategoryRepository
	transactionRepo domain.TransactionRepository
	alertService    *AlertService
	eventPublisher  websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService. alertService may be nil when
// alerts are disabled.
func NewBudgetService(
	budgetRepo domain.BudgetRepository,
	categoryRepo domain.CategoryRepository,
	transactionRepo domain.TransactionRepository,
	alertService *AlertService,
) *BudgetService {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		alertService:    alertService,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

func (s *BudgetService) checkAlerts() {
	if s.alertService != nil {
		s.alertService.Check()
	}
}

// BudgetInput holds the user-editable fields of a budget
type BudgetInput struct {
	ID         string
	CategoryID string
	Amount     decimal.Decimal
	Month      time.Month
	Year       int
}

func (in BudgetInput) toBudget(id string) domain.Budget {
	return domain.Budget{
		ID:         id,
		CategoryID: strings.TrimSpace(in.CategoryID),
		Amount:     in.Amount,
		Month:      in.Month,
		Year:       in.Year,
	}
}

// BudgetProgress is one evaluated budget together with its category for display
type BudgetProgress struct {
	budget.Evaluation
	CategoryName  string
	CategoryColor string
	CategoryFound bool
}

// BudgetProgressReport lists evaluated budgets and their totals
type BudgetProgressReport struct {
	Budgets []BudgetProgress
	Summary budget.Summary
}

// CreateBudget validates and stores a new budget. The category is not required
// to exist; another budget for the same category and period may already exist.
func (s *BudgetService) CreateBudget(input BudgetInput) (domain.Budget, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.New().String()
	}
	b := input.toBudget(id)
	if err := b.Validate(); err != nil {
		return domain.Budget{}, err
	}

	created, err := s.budgetRepo.Create(b)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("create budget: %w", err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeCreated, websocket.EntityTypeBudget, created))
	s.checkAlerts()
	return created, nil
}

// GetBudgets returns the budgets matching filters in insertion order
func (s *BudgetService) GetBudgets(filters domain.BudgetFilters) []domain.Budget {
	snapshot := s.budgetRepo.Snapshot()
	result := make([]domain.Budget, 0, len(snapshot))
	for _, b := range snapshot {
		if filters.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}

// GetBudget retrieves a budget by ID
func (s *BudgetService) GetBudget(id string) (domain.Budget, error) {
	return s.budgetRepo.GetByID(id)
}

// UpdateBudget replaces the fields of an existing budget
func (s *BudgetService) UpdateBudget(id string, input BudgetInput) (domain.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Budget{}, domain.ErrIDRequired
	}
	b := input.toBudget(id)
	if err := b.Validate(); err != nil {
		return domain.Budget{}, err
	}

	updated, err := s.budgetRepo.Update(b)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("update budget %s: %w", id, err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeUpdated, websocket.EntityTypeBudget, updated))
	s.checkAlerts()
	return updated, nil
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(id string) error {
	if err := s.budgetRepo.Delete(id); err != nil {
		return fmt.Errorf("delete budget %s: %w", id, err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeDeleted, websocket.EntityTypeBudget, map[string]string{"id": id}))
	s.checkAlerts()
	return nil
}

// GetProgress evaluates every budget matching filters against the current
// transactions. Budgets whose category no longer exists are reported under the
// name "Unknown".
func (s *BudgetService) GetProgress(filters domain.BudgetFilters) BudgetProgressReport {
	budgets := s.GetBudgets(filters)
	transactions := s.transactionRepo.Snapshot()
	categories := domain.IndexCategories(s.categoryRepo.Snapshot())

	evaluations := budget.EvaluateAll(budgets, transactions)
	items := make([]BudgetProgress, 0, len(evaluations))
	for _, ev := range evaluations {
		item := BudgetProgress{
			Evaluation:   ev,
			CategoryName: domain.UnknownCategoryName,
		}
		if c, ok := categories.Find(ev.Budget.CategoryID); ok {
			item.CategoryName = c.Name
			item.CategoryColor = c.Color
			item.CategoryFound = true
		}
		items = append(items, item)
	}

	return BudgetProgressReport{
		Budgets: items,
		Summary: budget.Summarize(evaluations),
	}
}
