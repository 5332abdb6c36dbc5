package service

import (
	"sync"

	"github.com/dafibh/budgetly/budgetly-backend/internal/budget"
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// BudgetAlert is the payload of budget.alert and budget.recovered events
type BudgetAlert struct {
	BudgetID       string              `json:"budgetId"`
	CategoryID     string              `json:"categoryId"`
	CategoryName   string              `json:"categoryName"`
	Month          string              `json:"month"`
	Year           int                 `json:"year"`
	Amount         string              `json:"amount"`
	Spent          string              `json:"spent"`
	Remaining      string              `json:"remaining"`
	Percentage     int                 `json:"percentage"`
	Status         domain.BudgetStatus `json:"status"`
	PreviousStatus domain.BudgetStatus `json:"previousStatus"`
}

// Recovered reports whether the alert marks a return to ok
func (a BudgetAlert) Recovered() bool {
	return a.Status == domain.BudgetStatusOK
}

// AlertService tracks the last observed status of every budget and publishes an
// event whenever a budget moves between ok and warning/over.
type AlertService struct {
	budgetRepo      domain.BudgetRepository
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	eventPublisher  websocket.EventPublisher

	mu       sync.Mutex
	statuses map[string]domain.BudgetStatus
}

// NewAlertService creates a new AlertService
func NewAlertService(budgetRepo domain.BudgetRepository, transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *AlertService {
	return &AlertService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		statuses:        make(map[string]domain.BudgetStatus),
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *AlertService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Prime records the current status of every budget without publishing anything.
// Call it once after seeding so pre-existing overruns do not alert on startup.
func (s *AlertService) Prime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluations := budget.EvaluateAll(s.budgetRepo.Snapshot(), s.transactionRepo.Snapshot())
	s.statuses = make(map[string]domain.BudgetStatus, len(evaluations))
	for _, ev := range evaluations {
		s.statuses[ev.Budget.ID] = ev.Status
	}
}

// Check re-evaluates all budgets from fresh snapshots and publishes the status
// transitions since the previous check: entering warning or over (including
// warning to over) raises budget.alert, returning to ok raises budget.recovered.
// A budget seen for the first time is compared against ok.
func (s *AlertService) Check() []BudgetAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluations := budget.EvaluateAll(s.budgetRepo.Snapshot(), s.transactionRepo.Snapshot())
	categories := domain.IndexCategories(s.categoryRepo.Snapshot())

	next := make(map[string]domain.BudgetStatus, len(evaluations))
	var alerts []BudgetAlert
	for _, ev := range evaluations {
		next[ev.Budget.ID] = ev.Status

		previous, seen := s.statuses[ev.Budget.ID]
		if !seen {
			previous = domain.BudgetStatusOK
		}
		if previous == ev.Status {
			continue
		}

		alert := newBudgetAlert(ev, previous, categories)
		alerts = append(alerts, alert)
		s.publish(alert)
	}
	s.statuses = next
	return alerts
}

// Status returns the last observed status of a budget
func (s *AlertService) Status(budgetID string) (domain.BudgetStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[budgetID]
	return status, ok
}

func (s *AlertService) publish(alert BudgetAlert) {
	logger := log.Info().
		Str("budget_id", alert.BudgetID).
		Str("category_id", alert.CategoryID).
		Str("previous_status", string(alert.PreviousStatus)).
		Str("status", string(alert.Status)).
		Int("percentage", alert.Percentage)

	if alert.Recovered() {
		logger.Msg("Budget recovered")
	} else {
		logger.Msg("Budget alert raised")
	}

	if s.eventPublisher == nil {
		return
	}
	if alert.Recovered() {
		s.eventPublisher.Publish(websocket.BudgetRecovered(alert))
		return
	}
	s.eventPublisher.Publish(websocket.BudgetAlert(alert))
}

func newBudgetAlert(ev budget.Evaluation, previous domain.BudgetStatus, categories domain.CategoryIndex) BudgetAlert {
	name := domain.UnknownCategoryName
	if c, ok := categories.Find(ev.Budget.CategoryID); ok {
		name = c.Name
	}
	return BudgetAlert{
		BudgetID:       ev.Budget.ID,
		CategoryID:     ev.Budget.CategoryID,
		CategoryName:   name,
		Month:          ev.Budget.MonthName(),
		Year:           ev.Budget.Year,
		Amount:         ev.Budget.Amount.StringFixed(2),
		Spent:          ev.Spent.StringFixed(2),
		Remaining:      ev.Remaining.StringFixed(2),
		Percentage:     ev.Percentage,
		Status:         ev.Status,
		PreviousStatus: previous,
	}
}
