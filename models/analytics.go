package models

import "github.com/shopspring/decimal"

// Totals sums the full transaction history with no time filtering.
// Balance may go negative; it is never clamped.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyPoint is one calendar-month bucket, keyed "YYYY-MM". Only months
// with at least one transaction appear; gap months are not synthesized.
type MonthlyPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type SavingsPoint struct {
	Month   string          `json:"month"`
	Savings decimal.Decimal `json:"savings"`
}

type WealthPoint struct {
	Month   string          `json:"month"`
	Balance decimal.Decimal `json:"balance"`
}

// ForecastPoint is a savings point plus an optional projection marker.
// Predicted is set only on the synthetic trailing "Next" point so a chart can
// separate actuals from the projection.
type ForecastPoint struct {
	Month     string           `json:"month"`
	Savings   decimal.Decimal  `json:"savings"`
	Predicted *decimal.Decimal `json:"predicted,omitempty"`
}

// CategoryBreakdown maps category name to summed expense amount.
type CategoryBreakdown map[string]decimal.Decimal

// Snapshot is the read-only per-user dataset the engine computes from.
type Snapshot struct {
	Transactions []Transaction   `json:"transactions"`
	Budgets      []Budget        `json:"budgets"`
	TotalBudget  decimal.Decimal `json:"total_budget"`
}

// DerivedViews bundles everything the dashboard and alert surfaces render.
// It is recomputed from scratch on every call and never persisted.
type DerivedViews struct {
	Totals            Totals            `json:"totals"`
	MonthlySeries     []MonthlyPoint    `json:"monthly_series"`
	SavingsSeries     []SavingsPoint    `json:"savings_series"`
	WealthSeries      []WealthPoint     `json:"wealth_series"`
	CategoryBreakdown CategoryBreakdown `json:"category_breakdown"`
	HealthScore       float64           `json:"health_score"`
	ForecastSeries    []ForecastPoint   `json:"forecast_series"`
	BudgetStatuses    []BudgetStatus    `json:"budget_statuses"`
	OverallProgress   OverallProgress   `json:"overall_progress"`
	Notifications     []Notification    `json:"notifications"`
}
