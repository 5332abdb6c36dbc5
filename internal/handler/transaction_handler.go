package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	ID          string `json:"id,omitempty"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	CategoryID  string `json:"categoryId"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CategoryID  string `json:"categoryId"`
}

func toTransactionResponse(transaction domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount.StringFixed(2),
		Description: transaction.Description,
		Date:        transaction.Date.Format(dateLayout),
		CategoryID:  transaction.CategoryID,
	}
}

// parseTransactionRequest converts the request body into service input. The
// ValidationError slice is non-empty when the body cannot be parsed.
func parseTransactionRequest(req TransactionRequest) (service.TransactionInput, []ValidationError) {
	var errs []ValidationError

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		errs = append(errs, ValidationError{Field: "amount", Message: "Must be a valid decimal number"})
	}

	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		date, err = time.Parse(dateLayout, strings.TrimSpace(req.Date))
		if err != nil {
			errs = append(errs, ValidationError{Field: "date", Message: "Must be in YYYY-MM-DD format"})
		}
	}

	return service.TransactionInput{
		ID:          req.ID,
		Amount:      amount,
		Description: req.Description,
		Date:        date,
		CategoryID:  req.CategoryID,
	}, errs
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Record a new expense. The id is generated when omitted.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Transaction creation request"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errs := parseTransactionRequest(req)
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	transaction, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Transaction not found"); handled {
			return resp
		}
		log.Error().Err(err).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	log.Info().
		Str("transaction_id", transaction.ID).
		Str("category_id", transaction.CategoryID).
		Str("amount", transaction.Amount.String()).
		Msg("Transaction created")

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions godoc
// @Summary List transactions
// @Description Get transactions newest first with optional filters
// @Tags transactions
// @Produce json
// @Param search query string false "Case-insensitive description search"
// @Param categoryId query string false "Filter by category ID"
// @Success 200 {array} TransactionResponse
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters := domain.TransactionFilters{
		Search: c.QueryParam("search"),
	}
	if categoryID := c.QueryParam("categoryId"); categoryID != "" {
		filters.CategoryID = &categoryID
	}

	transactions := h.transactionService.GetTransactions(filters)

	response := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = toTransactionResponse(transaction)
	}

	return c.JSON(http.StatusOK, response)
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.transactionService.GetTransaction(c.Param("id"))
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Transaction not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("transaction_id", c.Param("id")).Msg("Failed to get transaction")
		return NewInternalError(c, "Failed to get transaction")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body TransactionRequest true "Transaction update request"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id := c.Param("id")

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errs := parseTransactionRequest(req)
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	transaction, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Transaction not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	log.Info().Str("transaction_id", transaction.ID).Msg("Transaction updated")

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		if handled, resp := respondDomainError(c, err, "Transaction not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	log.Info().Str("transaction_id", id).Msg("Transaction deleted")

	return c.NoContent(http.StatusNoContent)
}
