package handler

import (
	"net/http"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// RecentTransactionResponse represents a transaction with its category on the dashboard
type RecentTransactionResponse struct {
	TransactionResponse
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor,omitempty"`
}

// CategorySpendingResponse represents the spend for one category
type CategorySpendingResponse struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	Amount     string `json:"amount"`
}

// BudgetOverviewResponse represents the budget totals for the dashboard month
type BudgetOverviewResponse struct {
	TotalBudgeted  string `json:"totalBudgeted"`
	TotalSpent     string `json:"totalSpent"`
	TotalRemaining string `json:"totalRemaining"`
	OKCount        int    `json:"okCount"`
	WarningCount   int    `json:"warningCount"`
	OverCount      int    `json:"overCount"`
}

// DashboardSummaryResponse represents the dashboard summary API response
type DashboardSummaryResponse struct {
	Month                 string                      `json:"month"`
	Year                  int                         `json:"year"`
	TotalExpenses         string                      `json:"totalExpenses"`
	MonthExpenses         string                      `json:"monthExpenses"`
	PreviousMonthExpenses string                      `json:"previousMonthExpenses"`
	Trend                 *string                     `json:"trend"`
	CategoryCount         int                         `json:"categoryCount"`
	TransactionCount      int                         `json:"transactionCount"`
	DaysRemaining         int                         `json:"daysRemaining"`
	DailyAllowance        string                      `json:"dailyAllowance"`
	Budgets               BudgetOverviewResponse      `json:"budgets"`
	RecentTransactions    []RecentTransactionResponse `json:"recentTransactions"`
	SpendingByCategory    []CategorySpendingResponse  `json:"spendingByCategory"`
}

// GetSummary godoc
// @Summary Get dashboard summary
// @Description Expense totals, month-over-month trend, recent transactions and spending by category. Defaults to the current month.
// @Tags dashboard
// @Produce json
// @Param month query string false "Month name"
// @Param year query int false "Year"
// @Success 200 {object} DashboardSummaryResponse
// @Failure 400 {object} ProblemDetails
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	filters, errs := parseBudgetFilters(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid query parameters", errs)
	}

	year, month := h.dashboardService.CurrentPeriod()
	if filters.Year != nil {
		if *filters.Year < domain.MinBudgetYear || *filters.Year > domain.MaxBudgetYear {
			return NewValidationError(c, "Invalid query parameters", []ValidationError{
				{Field: "year", Message: "Year must be between 1900 and 2100"},
			})
		}
		year = *filters.Year
	}
	if filters.Month != nil {
		month = *filters.Month
	}

	summary := h.dashboardService.GetSummaryForMonth(year, month)

	log.Debug().Int("year", year).Str("month", month.String()).Msg("Dashboard summary computed")

	return c.JSON(http.StatusOK, toDashboardSummaryResponse(summary))
}

func toDashboardSummaryResponse(summary service.DashboardSummary) DashboardSummaryResponse {
	resp := DashboardSummaryResponse{
		Month:                 domain.MonthName(summary.Month),
		Year:                  summary.Year,
		TotalExpenses:         summary.TotalExpenses.StringFixed(2),
		MonthExpenses:         summary.MonthExpenses.StringFixed(2),
		PreviousMonthExpenses: summary.PreviousMonthExpenses.StringFixed(2),
		CategoryCount:         summary.CategoryCount,
		TransactionCount:      summary.TransactionCount,
		DaysRemaining:         summary.DaysRemaining,
		DailyAllowance:        summary.DailyAllowance.StringFixed(2),
		Budgets: BudgetOverviewResponse{
			TotalBudgeted:  summary.Budgets.TotalBudgeted.StringFixed(2),
			TotalSpent:     summary.Budgets.TotalSpent.StringFixed(2),
			TotalRemaining: summary.Budgets.TotalRemaining.StringFixed(2),
			OKCount:        summary.Budgets.OK,
			WarningCount:   summary.Budgets.Warning,
			OverCount:      summary.Budgets.Over,
		},
		RecentTransactions: make([]RecentTransactionResponse, len(summary.RecentTransactions)),
		SpendingByCategory: make([]CategorySpendingResponse, len(summary.SpendingByCategory)),
	}
	if summary.Trend != nil {
		trend := summary.Trend.StringFixed(1)
		resp.Trend = &trend
	}
	for i, t := range summary.RecentTransactions {
		resp.RecentTransactions[i] = RecentTransactionResponse{
			TransactionResponse: toTransactionResponse(t.Transaction),
			CategoryName:        t.CategoryName,
			CategoryColor:       t.CategoryColor,
		}
	}
	for i, item := range summary.SpendingByCategory {
		resp.SpendingByCategory[i] = CategorySpendingResponse{
			CategoryID: item.CategoryID,
			Name:       item.Name,
			Color:      item.Color,
			Amount:     item.Amount.StringFixed(2),
		}
	}
	return resp
}
