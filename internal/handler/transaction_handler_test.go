package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_Success(t *testing.T) {
	env := newTestEnv(false)

	body := `{"amount":"12.5","description":"Coffee beans","date":"2024-03-07","categoryId":"food"}`
	c, rec := env.newContext(http.MethodPost, "/api/v1/transactions", body)
	require.NoError(t, env.handlers.Transaction.CreateTransaction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var response TransactionResponse
	decodeJSON(t, rec, &response)
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "12.50", response.Amount)
	assert.Equal(t, "Coffee beans", response.Description)
	assert.Equal(t, "2024-03-07", response.Date)
	assert.Equal(t, "food", response.CategoryID)
}

func TestCreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"unparseable amount", `{"amount":"abc","description":"Coffee","date":"2024-03-07","categoryId":"food"}`, "amount"},
		{"zero amount", `{"amount":"0","description":"Coffee","date":"2024-03-07","categoryId":"food"}`, "amount"},
		{"negative amount", `{"amount":"-5","description":"Coffee","date":"2024-03-07","categoryId":"food"}`, "amount"},
		{"amount over maximum", `{"amount":"1000000000000","description":"Coffee","date":"2024-03-07","categoryId":"food"}`, "amount"},
		{"amount with huge exponent", `{"amount":"1e50000000","description":"Coffee","date":"2024-03-07","categoryId":"food"}`, "amount"},
		{"short description", `{"amount":"5","description":"ab","date":"2024-03-07","categoryId":"food"}`, "description"},
		{"bad date", `{"amount":"5","description":"Coffee","date":"07/03/2024","categoryId":"food"}`, "date"},
		{"missing date", `{"amount":"5","description":"Coffee","categoryId":"food"}`, "date"},
		{"missing category", `{"amount":"5","description":"Coffee","date":"2024-03-07"}`, "categoryId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(false)
			c, rec := env.newContext(http.MethodPost, "/api/v1/transactions", tt.body)
			require.NoError(t, env.handlers.Transaction.CreateTransaction(c))
			assertProblem(t, rec, http.StatusBadRequest, ErrorTypeValidation, tt.field)
		})
	}
}

func TestCreateTransaction_PublishesBudgetAlert(t *testing.T) {
	env := newTestEnv(true)

	// food is at 150.80 of 400; this pushes it past the limit
	body := `{"amount":"300","description":"Catering","date":"2023-08-29","categoryId":"food"}`
	c, rec := env.newContext(http.MethodPost, "/api/v1/transactions", body)
	require.NoError(t, env.handlers.Transaction.CreateTransaction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	alerts := env.publisher.EventsOfType("budget.alert")
	require.Len(t, alerts, 1)
}

func TestGetTransactions_Filters(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"all newest first", "/api/v1/transactions", []string{"10", "9", "8", "7", "6", "5", "4", "3", "2", "1"}},
		{"search is case-insensitive", "/api/v1/transactions?search=GROCERY", []string{"2"}},
		{"category", "/api/v1/transactions?categoryId=food", []string{"9", "2"}},
		{"search and category", "/api/v1/transactions?search=dinner&categoryId=food", []string{"9"}},
		{"no match", "/api/v1/transactions?search=zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(true)
			c, rec := env.newContext(http.MethodGet, tt.target, "")
			require.NoError(t, env.handlers.Transaction.GetTransactions(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var response []TransactionResponse
			decodeJSON(t, rec, &response)
			ids := make([]string, len(response))
			for i, tx := range response {
				ids[i] = tx.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetTransaction(t *testing.T) {
	env := newTestEnv(true)

	c, rec := env.newContext(http.MethodGet, "/api/v1/transactions/2", "", "id", "2")
	require.NoError(t, env.handlers.Transaction.GetTransaction(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response TransactionResponse
	decodeJSON(t, rec, &response)
	assert.Equal(t, "85.50", response.Amount)
	assert.Equal(t, "2023-08-03", response.Date)

	c, rec = env.newContext(http.MethodGet, "/api/v1/transactions/99", "", "id", "99")
	require.NoError(t, env.handlers.Transaction.GetTransaction(c))
	assertProblem(t, rec, http.StatusNotFound, ErrorTypeNotFound, "")
}

func TestUpdateTransaction(t *testing.T) {
	env := newTestEnv(true)

	body := `{"amount":"90","description":"Weekly groceries","date":"2023-08-04","categoryId":"food"}`
	c, rec := env.newContext(http.MethodPut, "/api/v1/transactions/2", body, "id", "2")
	require.NoError(t, env.handlers.Transaction.UpdateTransaction(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response TransactionResponse
	decodeJSON(t, rec, &response)
	assert.Equal(t, "2", response.ID)
	assert.Equal(t, "90.00", response.Amount)
	assert.Equal(t, "Weekly groceries", response.Description)

	c, rec = env.newContext(http.MethodPut, "/api/v1/transactions/99", body, "id", "99")
	require.NoError(t, env.handlers.Transaction.UpdateTransaction(c))
	assertProblem(t, rec, http.StatusNotFound, ErrorTypeNotFound, "")
}

func TestDeleteTransaction(t *testing.T) {
	env := newTestEnv(true)

	c, rec := env.newContext(http.MethodDelete, "/api/v1/transactions/1", "", "id", "1")
	require.NoError(t, env.handlers.Transaction.DeleteTransaction(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, env.repos.Transactions.Snapshot(), 9)

	c, rec = env.newContext(http.MethodDelete, "/api/v1/transactions/1", "", "id", "1")
	require.NoError(t, env.handlers.Transaction.DeleteTransaction(c))
	assertProblem(t, rec, http.StatusNotFound, ErrorTypeNotFound, "")
}

func TestCreateTransaction_RejectedAmountIsNotStored(t *testing.T) {
	env := newTestEnv(false)

	body := `{"amount":"1e50000000","description":"Coffee","date":"2024-03-07","categoryId":"food"}`
	c, rec := env.newContext(http.MethodPost, "/api/v1/transactions", body)
	require.NoError(t, env.handlers.Transaction.CreateTransaction(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Less(t, rec.Body.Len(), 1024)
	assert.Empty(t, env.repos.Transactions.Snapshot())
}
