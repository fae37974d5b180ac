package services

import (
	"time"

	"github.com/fintrack/fintrack-api/models"

	"github.com/shopspring/decimal"
)

// BudgetStatuses evaluates every budget row against month-to-date spend for
// the month containing now. Duplicate categories are evaluated independently,
// each row getting its own copy of the same spend figure.
func BudgetStatuses(budgets []models.Budget, transactions []models.Transaction, now time.Time) ([]models.BudgetStatus, error) {
	spentByCategory, err := CategoryBreakdownForMonth(transactions, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	statuses := make([]models.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]

		remaining := b.Amount.Sub(spent)
		overage := decimal.Zero
		if remaining.IsNegative() {
			overage = spent.Sub(b.Amount)
			remaining = decimal.Zero
		}

		// A zero budget reads as 0% used, never a division by zero.
		percentUsed := float64(0)
		if b.Amount.IsPositive() {
			percentUsed, _ = spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Float64()
		}

		statuses = append(statuses, models.BudgetStatus{
			BudgetID:     b.ID,
			Category:     b.Category,
			BudgetAmount: b.Amount,
			Spent:        spent,
			Remaining:    remaining,
			Overage:      overage,
			PercentUsed:  percentUsed,
			OverBudget:   spent.GreaterThan(b.Amount),
		})
	}
	return statuses, nil
}

// Progress compares spend against the configured total budget. TotalSpent here
// covers configured budget rows only, so unbudgeted categories do not count;
// the notification rules use the all-expense total instead.
func Progress(statuses []models.BudgetStatus, totalBudget decimal.Decimal) models.OverallProgress {
	totalSpent := decimal.Zero
	for _, s := range statuses {
		totalSpent = totalSpent.Add(s.Spent)
	}

	percent := float64(0)
	if totalBudget.IsPositive() {
		percent, _ = totalSpent.Div(totalBudget).Mul(decimal.NewFromInt(100)).Float64()
	}

	return models.OverallProgress{
		TotalSpent:  totalSpent,
		TotalBudget: totalBudget,
		Percent:     percent,
	}
}
