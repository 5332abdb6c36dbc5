package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the create/update budget request body
type BudgetRequest struct {
	ID         string `json:"id,omitempty"`
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	Month      string `json:"month"` // full month name, e.g. "August"
	Year       int    `json:"year"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
}

// BudgetProgressResponse represents one budget with its spending progress
type BudgetProgressResponse struct {
	BudgetID      string `json:"budgetId"`
	CategoryID    string `json:"categoryId"`
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor,omitempty"`
	Month         string `json:"month"`
	Year          int    `json:"year"`
	Amount        string `json:"amount"`
	Spent         string `json:"spent"`
	Remaining     string `json:"remaining"`
	Percentage    int    `json:"percentage"`
	Status        string `json:"status"`
}

// BudgetProgressListResponse represents the evaluated budgets and their totals
type BudgetProgressListResponse struct {
	TotalBudgeted  string                   `json:"totalBudgeted"`
	TotalSpent     string                   `json:"totalSpent"`
	TotalRemaining string                   `json:"totalRemaining"`
	OKCount        int                      `json:"okCount"`
	WarningCount   int                      `json:"warningCount"`
	OverCount      int                      `json:"overCount"`
	Budgets        []BudgetProgressResponse `json:"budgets"`
}

func toBudgetResponse(b domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.StringFixed(2),
		Month:      b.MonthName(),
		Year:       b.Year,
	}
}

func toBudgetProgressResponse(item service.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		BudgetID:      item.Budget.ID,
		CategoryID:    item.Budget.CategoryID,
		CategoryName:  item.CategoryName,
		CategoryColor: item.CategoryColor,
		Month:         item.Budget.MonthName(),
		Year:          item.Budget.Year,
		Amount:        item.Budget.Amount.StringFixed(2),
		Spent:         item.Spent.StringFixed(2),
		Remaining:     item.Remaining.StringFixed(2),
		Percentage:    item.Percentage,
		Status:        string(item.Status),
	}
}

func parseBudgetRequest(req BudgetRequest) (service.BudgetInput, []ValidationError) {
	var errs []ValidationError

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		errs = append(errs, ValidationError{Field: "amount", Message: "Must be a valid decimal number"})
	}

	month, err := domain.ParseMonth(req.Month)
	if err != nil {
		errs = append(errs, ValidationError{Field: "month", Message: "Must be a full month name, e.g. August"})
	}

	return service.BudgetInput{
		ID:         req.ID,
		CategoryID: req.CategoryID,
		Amount:     amount,
		Month:      month,
		Year:       req.Year,
	}, errs
}

// parseBudgetFilters reads the optional month and year query parameters
func parseBudgetFilters(c echo.Context) (domain.BudgetFilters, []ValidationError) {
	var filters domain.BudgetFilters
	var errs []ValidationError

	if raw := c.QueryParam("month"); raw != "" {
		month, err := domain.ParseMonth(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "month", Message: "Must be a full month name, e.g. August"})
		} else {
			filters.Month = &month
		}
	}
	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "year", Message: "Must be a number"})
		} else {
			filters.Year = &year
		}
	}

	return filters, errs
}

// CreateBudget godoc
// @Summary Create a budget
// @Description Create a monthly spending limit for a category. Several budgets may exist for the same category and month.
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body BudgetRequest true "Budget creation request"
// @Success 201 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errs := parseBudgetRequest(req)
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	b, err := h.budgetService.CreateBudget(input)
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Budget not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("category_id", req.CategoryID).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	log.Info().
		Str("budget_id", b.ID).
		Str("category_id", b.CategoryID).
		Str("month", b.MonthName()).
		Int("year", b.Year).
		Msg("Budget created")

	return c.JSON(http.StatusCreated, toBudgetResponse(b))
}

// GetBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Param month query string false "Month name"
// @Param year query int false "Year"
// @Success 200 {array} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Router /budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	filters, errs := parseBudgetFilters(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid query parameters", errs)
	}

	budgets := h.budgetService.GetBudgets(filters)

	response := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		response[i] = toBudgetResponse(b)
	}

	return c.JSON(http.StatusOK, response)
}

// GetProgress godoc
// @Summary Get budget progress
// @Description Evaluate budgets against recorded spending. Status is ok up to 80%, warning up to 100%, over beyond.
// @Tags budgets
// @Produce json
// @Param month query string false "Month name"
// @Param year query int false "Year"
// @Success 200 {object} BudgetProgressListResponse
// @Failure 400 {object} ProblemDetails
// @Router /budgets/progress [get]
func (h *BudgetHandler) GetProgress(c echo.Context) error {
	filters, errs := parseBudgetFilters(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid query parameters", errs)
	}

	report := h.budgetService.GetProgress(filters)

	items := make([]BudgetProgressResponse, len(report.Budgets))
	for i, item := range report.Budgets {
		items[i] = toBudgetProgressResponse(item)
	}

	return c.JSON(http.StatusOK, BudgetProgressListResponse{
		TotalBudgeted:  report.Summary.TotalBudgeted.StringFixed(2),
		TotalSpent:     report.Summary.TotalSpent.StringFixed(2),
		TotalRemaining: report.Summary.TotalRemaining.StringFixed(2),
		OKCount:        report.Summary.OK,
		WarningCount:   report.Summary.Warning,
		OverCount:      report.Summary.Over,
		Budgets:        items,
	})
}

// GetBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} BudgetResponse
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	b, err := h.budgetService.GetBudget(c.Param("id"))
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Budget not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("budget_id", c.Param("id")).Msg("Failed to get budget")
		return NewInternalError(c, "Failed to get budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(b))
}

// UpdateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param request body BudgetRequest true "Budget update request"
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id := c.Param("id")

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errs := parseBudgetRequest(req)
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	b, err := h.budgetService.UpdateBudget(id, input)
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Budget not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("budget_id", id).Msg("Failed to update budget")
		return NewInternalError(c, "Failed to update budget")
	}

	log.Info().Str("budget_id", b.ID).Str("amount", b.Amount.String()).Msg("Budget updated")

	return c.JSON(http.StatusOK, toBudgetResponse(b))
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id := c.Param("id")

	if err := h.budgetService.DeleteBudget(id); err != nil {
		if handled, resp := respondDomainError(c, err, "Budget not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("budget_id", id).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}

	log.Info().Str("budget_id", id).Msg("Budget deleted")

	return c.NoContent(http.StatusNoContent)
}
