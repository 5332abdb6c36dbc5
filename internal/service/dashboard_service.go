package service

import (
	"sort"
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/budget"
	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/util"
	"github.com/shopspring/decimal"
)

// RecentTransactionLimit is the number of transactions shown on the dashboard
const RecentTransactionLimit = 5

// DashboardSummary contains the main dashboard metrics for one month
type DashboardSummary struct {
	Month                 time.Month
	Year                  int
	TotalExpenses         decimal.Decimal
	MonthExpenses         decimal.Decimal
	PreviousMonthExpenses decimal.Decimal
	// Trend is the month-over-month change in percent, nil when the previous
	// month had no expenses
	Trend              *decimal.Decimal
	CategoryCount      int
	TransactionCount   int
	DaysRemaining      int
	DailyAllowance     decimal.Decimal
	Budgets            budget.Summary
	RecentTransactions []RecentTransaction
	SpendingByCategory []CategorySpending
}

// RecentTransaction is a transaction with its category resolved for display
type RecentTransaction struct {
	domain.Transaction
	CategoryName  string
	CategoryColor string
}

// CategorySpending is the all-time spend attributed to one category id
type CategorySpending struct {
	CategoryID string
	Name       string
	Color      string
	Amount     decimal.Decimal
}

// DashboardService handles dashboard-related business logic
type DashboardService struct {
	categoryRepo       domain.CategoryRepository
	transactionService *TransactionService
	budgetService      *BudgetService
	now                func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	categoryRepo domain.CategoryRepository,
	transactionService *TransactionService,
	budgetService *BudgetService,
) *DashboardService {
	return &DashboardService{
		categoryRepo:       categoryRepo,
		transactionService: transactionService,
		budgetService:      budgetService,
		now:                time.Now,
	}
}

// CurrentPeriod returns the year and month of the service clock
func (s *DashboardService) CurrentPeriod() (int, time.Month) {
	now := s.now()
	return now.Year(), now.Month()
}

// GetSummary returns the dashboard summary for the current month
func (s *DashboardService) GetSummary() DashboardSummary {
	return s.GetSummaryForMonth(s.CurrentPeriod())
}

// GetSummaryForMonth returns the dashboard summary for a specific month
func (s *DashboardService) GetSummaryForMonth(year int, month time.Month) DashboardSummary {
	transactions := s.transactionService.GetTransactions(domain.TransactionFilters{})
	categorySnapshot := s.categoryRepo.Snapshot()
	categories := domain.IndexCategories(categorySnapshot)

	prevYear, prevMonth := util.PreviousMonth(year, month)
	summary := DashboardSummary{
		Month:                 month,
		Year:                  year,
		TotalExpenses:         budget.TotalExpenses(transactions),
		MonthExpenses:         budget.ExpensesForMonth(transactions, month, year),
		PreviousMonthExpenses: budget.ExpensesForMonth(transactions, prevMonth, prevYear),
		CategoryCount:         len(categorySnapshot),
		TransactionCount:      len(transactions),
		DaysRemaining:         s.calculateDaysRemaining(year, month),
	}

	if trend, ok := budget.Trend(summary.MonthExpenses, summary.PreviousMonthExpenses); ok {
		summary.Trend = &trend
	}

	report := s.budgetService.GetProgress(domain.BudgetFilters{Month: &month, Year: &year})
	summary.Budgets = report.Summary

	// Daily allowance = remaining budget / days left
	summary.DailyAllowance = decimal.Zero
	if summary.DaysRemaining > 0 && report.Summary.TotalRemaining.IsPositive() {
		summary.DailyAllowance = report.Summary.TotalRemaining.
			Div(decimal.NewFromInt(int64(summary.DaysRemaining))).
			Round(2)
	}

	// transactions is already newest first
	recent := transactions
	if len(recent) > RecentTransactionLimit {
		recent = recent[:RecentTransactionLimit]
	}
	summary.RecentTransactions = make([]RecentTransaction, 0, len(recent))
	for _, t := range recent {
		item := RecentTransaction{Transaction: t, CategoryName: domain.UncategorizedName}
		if c, ok := categories.Find(t.CategoryID); ok {
			item.CategoryName = c.Name
			item.CategoryColor = c.Color
		}
		summary.RecentTransactions = append(summary.RecentTransactions, item)
	}

	summary.SpendingByCategory = spendingByCategory(transactions, categories)
	return summary
}

// spendingByCategory lists spend per category id, largest first. Ties are
// ordered by name, then id.
func spendingByCategory(transactions []domain.Transaction, categories domain.CategoryIndex) []CategorySpending {
	totals := budget.SpendingByCategory(transactions)
	result := make([]CategorySpending, 0, len(totals))
	for id, amount := range totals {
		item := CategorySpending{CategoryID: id, Name: domain.UncategorizedName, Amount: amount}
		if c, ok := categories.Find(id); ok {
			item.Name = c.Name
			item.Color = c.Color
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Amount.Cmp(result[j].Amount); cmp != 0 {
			return cmp > 0
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].CategoryID < result[j].CategoryID
	})
	return result
}

// calculateDaysRemaining counts the days left in the month including today.
// Past months have none; future months have all of theirs.
func (s *DashboardService) calculateDaysRemaining(year int, month time.Month) int {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start, end := util.MonthBounds(year, month, now.Location())

	if !today.Before(end) {
		return 0
	}
	if today.Before(start) {
		return end.AddDate(0, 0, -1).Day()
	}
	return end.AddDate(0, 0, -1).Day() - today.Day() + 1
}
