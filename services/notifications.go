package services

import (
	"fmt"

	"github.com/fintrack/fintrack-api/models"

	"github.com/shopspring/decimal"
)

// LargeExpenseThreshold is the hard-coded cutoff for the per-transaction
// high-expense warning. Strictly greater-than: an expense of exactly 1000
// does not fire.
var LargeExpenseThreshold = decimal.NewFromInt(1000)

var (
	warnPercent   = decimal.NewFromInt(80)
	dangerPercent = decimal.NewFromInt(100)
)

// GenerateNotifications evaluates the fixed alert rules against a fresh
// snapshot. Stateless: the result is rebuilt in full on every call.
//
// Rule 1 (total-budget status) fires exactly once, and only when a positive
// total budget is configured. Its spend figure covers ALL expense
// transactions, unlike the budget tracker's budget-scoped total. Rule 2
// (large expense) fires once per qualifying transaction, undeduplicated.
func GenerateNotifications(transactions []models.Transaction, totalBudget decimal.Decimal) ([]models.Notification, error) {
	notifications := []models.Notification{}

	totalSpent := decimal.Zero
	for _, t := range transactions {
		if err := validateTransaction(t); err != nil {
			return nil, err
		}
		if t.Type == models.TypeExpense {
			totalSpent = totalSpent.Add(t.Amount)
		}
	}

	if totalBudget.IsPositive() {
		spentPercent := totalSpent.Div(totalBudget).Mul(dangerPercent)
		switch {
		case spentPercent.GreaterThanOrEqual(dangerPercent):
			notifications = append(notifications, models.Notification{
				ID:       "total-budget",
				Severity: models.SeverityDanger,
				Message:  "You have exceeded your total budget!",
			})
		case spentPercent.GreaterThanOrEqual(warnPercent):
			notifications = append(notifications, models.Notification{
				ID:       "total-budget",
				Severity: models.SeverityWarning,
				Message:  "You have used more than 80% of your budget.",
			})
		default:
			notifications = append(notifications, models.Notification{
				ID:       "total-budget",
				Severity: models.SeverityInfo,
				Message:  fmt.Sprintf("You are within budget. (%s%% spent)", spentPercent.StringFixed(1)),
			})
		}
	}

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}
		if t.Amount.GreaterThan(LargeExpenseThreshold) {
			notifications = append(notifications, models.Notification{
				ID:              t.ID + "-large",
				Severity:        models.SeverityWarning,
				Message:         fmt.Sprintf("High expense: %s on %s", t.Amount.String(), t.Category),
				RelatedDate:     t.Date,
				RelatedCategory: t.Category,
			})
		}
	}

	return notifications, nil
}

// FilterBySeverity returns the subset with the given severity. Filtering is
// purely post-hoc and never affects generation. An empty severity means all.
func FilterBySeverity(notifications []models.Notification, severity models.Severity) []models.Notification {
	if severity == "" {
		return notifications
	}
	filtered := []models.Notification{}
	for _, n := range notifications {
		if n.Severity == severity {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
