// Package budget is the budget-tracking aggregation engine. It joins
// transactions against budgets by category and calendar month and derives
// spend, remaining headroom, a display percentage and a status.
//
// Every function is pure: inputs are read-only snapshots owned by the caller,
// results are new values, and nothing is retained between calls.
package budget
