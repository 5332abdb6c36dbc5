package memory

import (
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DemoCategories returns the demo category set
func DemoCategories() []domain.Category {
	return []domain.Category{
		{ID: "housing", Name: "Housing", Color: "#A78BFA"},
		{ID: "food", Name: "Food", Color: "#60A5FA"},
		{ID: "transportation", Name: "Transportation", Color: "#34D399"},
		{ID: "entertainment", Name: "Entertainment", Color: "#FBBF24"},
		{ID: "shopping", Name: "Shopping", Color: "#F87171"},
		{ID: "healthcare", Name: "Healthcare", Color: "#FB923C"},
		{ID: "utilities", Name: "Utilities", Color: "#38BDF8"},
		{ID: "education", Name: "Education", Color: "#4ADE80"},
	}
}

func demoDate(day int) time.Time {
	return time.Date(2023, time.August, day, 0, 0, 0, 0, time.UTC)
}

// DemoTransactions returns the demo expenses, all in August 2023
func DemoTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "1", Amount: decimal.RequireFromString("1200"), Description: "Rent payment", Date: demoDate(1), CategoryID: "housing"},
		{ID: "2", Amount: decimal.RequireFromString("85.5"), Description: "Grocery shopping", Date: demoDate(3), CategoryID: "food"},
		{ID: "3", Amount: decimal.RequireFromString("45"), Description: "Gas refill", Date: demoDate(5), CategoryID: "transportation"},
		{ID: "4", Amount: decimal.RequireFromString("15.75"), Description: "Movie tickets", Date: demoDate(10), CategoryID: "entertainment"},
		{ID: "5", Amount: decimal.RequireFromString("120"), Description: "New shoes", Date: demoDate(15), CategoryID: "shopping"},
		{ID: "6", Amount: decimal.RequireFromString("200"), Description: "Doctor appointment", Date: demoDate(18), CategoryID: "healthcare"},
		{ID: "7", Amount: decimal.RequireFromString("150"), Description: "Electricity bill", Date: demoDate(20), CategoryID: "utilities"},
		{ID: "8", Amount: decimal.RequireFromString("300"), Description: "Online course", Date: demoDate(25), CategoryID: "education"},
		{ID: "9", Amount: decimal.RequireFromString("65.3"), Description: "Restaurant dinner", Date: demoDate(28), CategoryID: "food"},
		{ID: "10", Amount: decimal.RequireFromString("35"), Description: "Taxi ride", Date: demoDate(30), CategoryID: "transportation"},
	}
}

// DemoBudgets returns the demo budgets for August 2023
func DemoBudgets() []domain.Budget {
	budget := func(id, categoryID, amount string) domain.Budget {
		return domain.Budget{
			ID:         id,
			CategoryID: categoryID,
			Amount:     decimal.RequireFromString(amount),
			Month:      time.August,
			Year:       2023,
		}
	}
	return []domain.Budget{
		budget("1", "housing", "1500"),
		budget("2", "food", "400"),
		budget("3", "transportation", "200"),
		budget("4", "entertainment", "100"),
		budget("5", "shopping", "150"),
	}
}
