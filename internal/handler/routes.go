package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Category    *CategoryHandler
	Transaction *TransactionHandler
	Budget      *BudgetHandler
	Dashboard   *DashboardHandler
}

// RegisterRoutes sets up all API routes under /api/v1. Extra middleware (rate
// limiting) applies to the API group only.
func RegisterRoutes(e *echo.Echo, h Handlers, middleware ...echo.MiddlewareFunc) {
	// API version 1
	api := e.Group("/api/v1", middleware...)

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", h.Category.CreateCategory)
	categories.GET("", h.Category.GetCategories)
	categories.GET("/:id", h.Category.GetCategory)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", h.Budget.CreateBudget)
	budgets.GET("", h.Budget.GetBudgets)
	budgets.GET("/progress", h.Budget.GetProgress)
	budgets.GET("/:id", h.Budget.GetBudget)
	budgets.PUT("/:id", h.Budget.UpdateBudget)
	budgets.DELETE("/:id", h.Budget.DeleteBudget)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.GetSummary)

	// OpenAPI 3 document
	api.GET("/openapi.json", ServeOpenAPI3Spec)
}
