package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a per-category spending limit. Several rows may share the same
// category for one user; each row is tracked by its own ID.
type Budget struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

type UpdateBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

type SetTotalBudgetRequest struct {
	TotalBudget decimal.Decimal `json:"total_budget"`
}

// BudgetStatus is the per-budget-row view for the budget dashboard. Remaining
// is floored at zero for display; the raw overage is kept separately.
type BudgetStatus struct {
	BudgetID     string          `json:"budget_id"`
	Category     string          `json:"category"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Overage      decimal.Decimal `json:"overage"`
	PercentUsed  float64         `json:"percent_used"`
	OverBudget   bool            `json:"over_budget"`
}

// OverallProgress compares month-to-date spend in budgeted categories against
// the configured total budget. Percent is unclamped; progress bars clamp at
// render time.
type OverallProgress struct {
	TotalSpent  decimal.Decimal `json:"total_spent"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	Percent     float64         `json:"percent"`
}
