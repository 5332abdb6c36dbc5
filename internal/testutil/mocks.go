package testutil

import (
	"sync"

	"github.com/dafibh/budgetly/budgetly-backend/internal/repository/memory"
	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// RecordingPublisher is a websocket.EventPublisher that keeps every event
type RecordingPublisher struct {
	mu     sync.Mutex
	events []websocket.Event
}

// NewRecordingPublisher creates a new RecordingPublisher
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// Publish records the event
func (p *RecordingPublisher) Publish(event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Events returns a copy of the recorded events
func (p *RecordingPublisher) Events() []websocket.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]websocket.Event, len(p.events))
	copy(out, p.events)
	return out
}

// EventsOfType returns the recorded events with the given combined type, e.g. "budget.alert"
func (p *RecordingPublisher) EventsOfType(eventType string) []websocket.Event {
	var out []websocket.Event
	for _, e := range p.Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all recorded events
func (p *RecordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

// Repositories bundles the three in-memory repositories
type Repositories struct {
	Categories   *memory.CategoryRepository
	Transactions *memory.TransactionRepository
	Budgets      *memory.BudgetRepository
}

// NewEmptyRepositories creates repositories with no data
func NewEmptyRepositories() Repositories {
	return Repositories{
		Categories:   memory.NewCategoryRepository(),
		Transactions: memory.NewTransactionRepository(),
		Budgets:      memory.NewBudgetRepository(),
	}
}

// NewDemoRepositories creates repositories holding the demo data set
func NewDemoRepositories() Repositories {
	return Repositories{
		Categories:   memory.NewCategoryRepository(memory.DemoCategories()...),
		Transactions: memory.NewTransactionRepository(memory.DemoTransactions()...),
		Budgets:      memory.NewBudgetRepository(memory.DemoBudgets()...),
	}
}

// Decimal parses s and panics on malformed input
func Decimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
