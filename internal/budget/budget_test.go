package budget

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(id, categoryID, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Amount:      dec(amount),
		Description: "test transaction " + id,
		Date:        date,
		CategoryID:  categoryID,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func foodBudget(amount string) domain.Budget {
	return domain.Budget{ID: "2", CategoryID: "food", Amount: dec(amount), Month: time.August, Year: 2023}
}

func augustTransactions() []domain.Transaction {
	return []domain.Transaction{
		tx("2", "food", "85.5", day(2023, time.August, 3)),
		tx("9", "food", "65.3", day(2023, time.August, 28)),
		tx("3", "transportation", "45", day(2023, time.August, 5)),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: expected %s, got %s", field, want, got.String())
}

func TestSpentFor_SumsMatchingCategoryAndPeriod(t *testing.T) {
	transactions := append(augustTransactions(),
		tx("10", "food", "20", day(2023, time.September, 1)),
		tx("11", "food", "30", day(2022, time.August, 15)),
	)

	assertDecimal(t, "150.8", SpentFor(transactions, "food", time.August, 2023), "food August 2023")
	assertDecimal(t, "45", SpentFor(transactions, "transportation", time.August, 2023), "transportation")
	assertDecimal(t, "20", SpentFor(transactions, "food", time.September, 2023), "food September 2023")
	assertDecimal(t, "30", SpentFor(transactions, "food", time.August, 2022), "food August 2022")
}

func TestSpentFor_NoMatchesIsZero(t *testing.T) {
	assert.True(t, SpentFor(nil, "food", time.August, 2023).IsZero())
	assert.True(t, SpentFor(augustTransactions(), "housing", time.August, 2023).IsZero())
	assert.True(t, SpentFor(augustTransactions(), "food", time.July, 2023).IsZero())
}

func TestSpentFor_OrderIndependent(t *testing.T) {
	transactions := []domain.Transaction{}
	categories := []string{"food", "housing", "shopping"}
	for i := 0; i < 60; i++ {
		transactions = append(transactions, tx(
			string(rune('a'+i%26)),
			categories[i%len(categories)],
			decimal.NewFromInt(int64(i*7+1)).Div(decimal.NewFromInt(4)).String(),
			day(2023, time.Month(i%3+7), i%28+1),
		))
	}

	want := SpentFor(transactions, "food", time.August, 2023)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.Transaction, len(transactions))
		copy(shuffled, transactions)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := SpentFor(shuffled, "food", time.August, 2023)
		require.Truef(t, want.Equal(got), "shuffle %d: expected %s, got %s", i, want, got)
	}
}

func TestSpentFor_DisjointSubsetsAreIndependent(t *testing.T) {
	transactions := []domain.Transaction{
		tx("1", "food", "10", day(2023, time.August, 1)),
		tx("2", "housing", "1000", day(2023, time.August, 1)),
		tx("3", "food", "5", day(2023, time.July, 31)),
		tx("4", "food", "2.5", day(2023, time.August, 31)),
	}

	food := SpentFor(transactions, "food", time.August, 2023)
	housing := SpentFor(transactions, "housing", time.August, 2023)
	july := SpentFor(transactions, "food", time.July, 2023)

	assertDecimal(t, "12.5", food, "food")
	assertDecimal(t, "1000", housing, "housing")
	assertDecimal(t, "5", july, "july")
	assertDecimal(t, "1017.5", food.Add(housing).Add(july), "sum of disjoint subsets")
	assertDecimal(t, "1017.5", TotalExpenses(transactions), "total")
}

func TestEvaluateBudget_AugustFoodScenario(t *testing.T) {
	e := EvaluateBudget(foodBudget("400"), augustTransactions())

	assertDecimal(t, "150.8", e.Spent, "spent")
	assertDecimal(t, "249.2", e.Remaining, "remaining")
	assert.Equal(t, 38, e.Percentage)
	assert.Equal(t, domain.BudgetStatusOK, e.Status)
	assert.Equal(t, "2", e.Budget.ID)
}

func TestEvaluateBudget_OverBudgetScenario(t *testing.T) {
	transactions := []domain.Transaction{
		tx("1", "food", "300", day(2023, time.August, 2)),
		tx("2", "food", "200", day(2023, time.August, 20)),
	}

	e := EvaluateBudget(foodBudget("400"), transactions)

	assertDecimal(t, "500", e.Spent, "spent")
	assertDecimal(t, "-100", e.Remaining, "remaining")
	assert.Equal(t, 100, e.Percentage)
	assert.Equal(t, domain.BudgetStatusOver, e.Status)
}

func TestEvaluateBudget_RemainingIsExact(t *testing.T) {
	for _, spent := range []string{"0", "0.01", "99.99", "400", "400.01", "12345.67"} {
		e := EvaluateBudget(foodBudget("400"), []domain.Transaction{tx("1", "food", spent, day(2023, time.August, 9))})
		assert.Truef(t, e.Remaining.Equal(e.Budget.Amount.Sub(e.Spent)), "spent %s: remaining %s", spent, e.Remaining)
	}
}

func TestEvaluateBudget_PercentageAlwaysInRange(t *testing.T) {
	for _, spent := range []string{"0.001", "1", "399.99", "400", "800", "4000000"} {
		e := EvaluateBudget(foodBudget("400"), []domain.Transaction{tx("1", "food", spent, day(2023, time.August, 9))})
		assert.GreaterOrEqual(t, e.Percentage, 0, "spent %s", spent)
		assert.LessOrEqual(t, e.Percentage, 100, "spent %s", spent)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		spent string
		want  domain.BudgetStatus
	}{
		{"0", domain.BudgetStatusOK},
		{"79.99", domain.BudgetStatusOK},
		{"80", domain.BudgetStatusOK},
		{"80.01", domain.BudgetStatusWarning},
		{"99.99", domain.BudgetStatusWarning},
		{"100", domain.BudgetStatusWarning},
		{"100.01", domain.BudgetStatusOver},
		{"250", domain.BudgetStatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.spent, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(dec(tt.spent), dec("100")))
		})
	}
}

func TestClassify_BoundariesOnUnevenAmount(t *testing.T) {
	// 80% of 333.33 is 266.664, which a float ratio could misplace.
	assert.Equal(t, domain.BudgetStatusOK, Classify(dec("266.664"), dec("333.33")))
	assert.Equal(t, domain.BudgetStatusWarning, Classify(dec("266.665"), dec("333.33")))
	assert.Equal(t, domain.BudgetStatusWarning, Classify(dec("333.33"), dec("333.33")))
	assert.Equal(t, domain.BudgetStatusOver, Classify(dec("333.331"), dec("333.33")))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		spent  string
		amount string
		want   int
	}{
		{"0", "400", 0},
		{"150.8", "400", 38},
		{"1", "8", 13},  // 12.5 rounds half up
		{"1", "200", 1}, // 0.5 rounds half up
		{"0.1", "400", 0},
		{"399.9", "400", 100},
		{"400", "400", 100},
		{"500", "400", 100},
		{"-10", "400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.spent+"/"+tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(dec(tt.spent), dec(tt.amount)))
		})
	}
}

func TestEvaluateBudget_NonPositiveAmountDoesNotPanic(t *testing.T) {
	transactions := []domain.Transaction{tx("1", "food", "10", day(2023, time.August, 9))}

	require.NotPanics(t, func() {
		e := EvaluateBudget(foodBudget("0"), transactions)
		assert.Equal(t, 100, e.Percentage)
		assert.Equal(t, domain.BudgetStatusOver, e.Status)
		assertDecimal(t, "-10", e.Remaining, "remaining")
	})
	require.NotPanics(t, func() {
		e := EvaluateBudget(foodBudget("0"), nil)
		assert.Equal(t, 0, e.Percentage)
		assert.Equal(t, domain.BudgetStatusOK, e.Status)
	})
}

func TestEvaluateBudget_DeletedCategoryKeepsSpend(t *testing.T) {
	categories := []domain.Category{{ID: "housing", Name: "Housing", Color: "#A78BFA"}}
	transactions := []domain.Transaction{tx("1", "food", "85.5", day(2023, time.August, 3))}

	_, ok := domain.FindCategory(categories, "food")
	assert.False(t, ok)

	e := EvaluateBudget(foodBudget("400"), transactions)
	assertDecimal(t, "85.5", e.Spent, "spent")
	assertDecimal(t, "85.5", CategoryExpenses(transactions, "food"), "category expenses")
}

func TestEvaluateBudget_DoesNotMutateInputs(t *testing.T) {
	transactions := augustTransactions()
	before := make([]domain.Transaction, len(transactions))
	copy(before, transactions)
	b := foodBudget("400")

	EvaluateBudget(b, transactions)

	assert.Equal(t, before, transactions)
	assert.Equal(t, foodBudget("400"), b)
}

func TestEvaluateAll_DuplicatesEvaluatedIndependently(t *testing.T) {
	first := foodBudget("400")
	second := foodBudget("100")
	second.ID = "dup"
	housing := domain.Budget{ID: "1", CategoryID: "housing", Amount: dec("1500"), Month: time.August, Year: 2023}

	evaluations := EvaluateAll([]domain.Budget{first, second, housing}, augustTransactions())
	require.Len(t, evaluations, 3)

	assert.Equal(t, "2", evaluations[0].Budget.ID)
	assert.Equal(t, domain.BudgetStatusOK, evaluations[0].Status)
	assert.Equal(t, "dup", evaluations[1].Budget.ID)
	assertDecimal(t, "150.8", evaluations[1].Spent, "duplicate spent")
	assert.Equal(t, domain.BudgetStatusOver, evaluations[1].Status)
	assert.True(t, evaluations[2].Spent.IsZero())

	assert.Empty(t, EvaluateAll(nil, augustTransactions()))
}

func TestSummarize(t *testing.T) {
	second := foodBudget("100")
	second.ID = "dup"
	evaluations := EvaluateAll([]domain.Budget{foodBudget("400"), second, foodBudget("180")}, augustTransactions())

	s := Summarize(evaluations)

	assertDecimal(t, "680", s.TotalBudgeted, "budgeted")
	assertDecimal(t, "452.4", s.TotalSpent, "spent")
	assertDecimal(t, "227.6", s.TotalRemaining, "remaining")
	assert.Equal(t, 1, s.OK)
	assert.Equal(t, 1, s.Warning)
	assert.Equal(t, 1, s.Over)

	empty := Summarize(nil)
	assert.True(t, empty.TotalSpent.IsZero())
	assert.Equal(t, 0, empty.OK+empty.Warning+empty.Over)
}

func TestExpenseHelpers(t *testing.T) {
	transactions := append(augustTransactions(),
		tx("12", "food", "10", day(2023, time.July, 30)),
		tx("13", "gone", "7.25", day(2023, time.August, 30)),
	)

	assertDecimal(t, "213.05", TotalExpenses(transactions), "total")
	assertDecimal(t, "160.8", CategoryExpenses(transactions, "food"), "food all periods")
	assertDecimal(t, "203.05", ExpensesForMonth(transactions, time.August, 2023), "august")

	byCategory := SpendingByCategory(transactions)
	require.Len(t, byCategory, 3)
	assertDecimal(t, "160.8", byCategory["food"], "food")
	assertDecimal(t, "45", byCategory["transportation"], "transportation")
	assertDecimal(t, "7.25", byCategory["gone"], "dangling category")
}

func TestTrend(t *testing.T) {
	trend, ok := Trend(dec("1100"), dec("1000"))
	require.True(t, ok)
	assertDecimal(t, "10", trend, "trend")

	trend, ok = Trend(dec("213.05"), dec("300"))
	require.True(t, ok)
	assertDecimal(t, "-29", trend, "trend")

	trend, ok = Trend(dec("100"), dec("300"))
	require.True(t, ok)
	assertDecimal(t, "-66.7", trend, "trend")

	_, ok = Trend(dec("50"), decimal.Zero)
	assert.False(t, ok)
}
