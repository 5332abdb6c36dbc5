package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dafibh/budgetly/budgetly-backend/internal/service"
	"github.com/dafibh/budgetly/budgetly-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

type testEnv struct {
	e         *echo.Echo
	repos     testutil.Repositories
	publisher *testutil.RecordingPublisher
	handlers  Handlers
}

func newTestEnv(seed bool) *testEnv {
	repos := testutil.NewEmptyRepositories()
	if seed {
		repos = testutil.NewDemoRepositories()
	}
	publisher := testutil.NewRecordingPublisher()

	alertService := service.NewAlertService(repos.Budgets, repos.Transactions, repos.Categories)
	alertService.SetEventPublisher(publisher)
	alertService.Prime()

	categoryService := service.NewCategoryService(repos.Categories)
	transactionService := service.NewTransactionService(repos.Transactions, alertService)
	budgetService := service.NewBudgetService(repos.Budgets, repos.Categories, repos.Transactions, alertService)
	dashboardService := service.NewDashboardService(repos.Categories, transactionService, budgetService)

	return &testEnv{
		e:         echo.New(),
		repos:     repos,
		publisher: publisher,
		handlers: Handlers{
			Category:    NewCategoryHandler(categoryService),
			Transaction: NewTransactionHandler(transactionService),
			Budget:      NewBudgetHandler(budgetService),
			Dashboard:   NewDashboardHandler(dashboardService),
		},
	}
}

// newContext builds an echo context for a direct handler call. pathParams are
// name/value pairs.
func (env *testEnv) newContext(method, target, body string, pathParams ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(pathParams); i += 2 {
		names = append(names, pathParams[i])
		values = append(values, pathParams[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", rec.Body.String(), err)
	}
}

func assertProblem(t *testing.T, rec *httptest.ResponseRecorder, status int, problemType string, field string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("Expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	var problem ProblemDetails
	decodeJSON(t, rec, &problem)
	if problem.Type != problemType {
		t.Errorf("Expected problem type %s, got %s", problemType, problem.Type)
	}
	if field == "" {
		return
	}
	for _, fe := range problem.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("Expected a validation error for field %q, got %+v", field, problem.Errors)
}
