package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fintrack/fintrack-api/models"

	"github.com/shopspring/decimal"
)

// Malformed records fail loud: a silently dropped transaction would corrupt
// every total downstream.
var (
	ErrBadDate        = errors.New("transaction date is not in YYYY-MM-DD form")
	ErrNegativeAmount = errors.New("transaction amount is negative")
	ErrBadType        = errors.New("unknown transaction type")
)

func validateTransaction(t models.Transaction) error {
	if !t.Type.Valid() {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrBadType)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrNegativeAmount)
	}
	if _, err := time.Parse(models.DateLayout, t.Date); err != nil {
		return fmt.Errorf("transaction %s: %w", t.ID, ErrBadDate)
	}
	return nil
}

// ComputeTotals sums income and expense across the whole history.
// Balance = income − expense, unclamped.
func ComputeTotals(transactions []models.Transaction) (models.Totals, error) {
	totals := models.Totals{}
	for _, t := range transactions {
		if err := validateTransaction(t); err != nil {
			return models.Totals{}, err
		}
		switch t.Type {
		case models.TypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case models.TypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals, nil
}

// MonthlyBuckets groups transactions into calendar-month buckets keyed
// "YYYY-MM", sorted ascending. Months without transactions do not appear;
// the forecaster treats the nearest active months as consecutive.
func MonthlyBuckets(transactions []models.Transaction) ([]models.MonthlyPoint, error) {
	byMonth := make(map[string]*models.MonthlyPoint)
	for _, t := range transactions {
		if err := validateTransaction(t); err != nil {
			return nil, err
		}
		key := t.Date[:7]
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &models.MonthlyPoint{Month: key}
			byMonth[key] = bucket
		}
		switch t.Type {
		case models.TypeIncome:
			bucket.Income = bucket.Income.Add(t.Amount)
		case models.TypeExpense:
			bucket.Expense = bucket.Expense.Add(t.Amount)
		}
	}

	series := make([]models.MonthlyPoint, 0, len(byMonth))
	for _, b := range byMonth {
		series = append(series, *b)
	}
	// Lexicographic order on zero-padded YYYY-MM is chronological order.
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series, nil
}

// SavingsSeries derives per-month savings (income − expense) from the
// monthly buckets, same order.
func SavingsSeries(monthly []models.MonthlyPoint) []models.SavingsPoint {
	series := make([]models.SavingsPoint, len(monthly))
	for i, m := range monthly {
		series[i] = models.SavingsPoint{Month: m.Month, Savings: m.Income.Sub(m.Expense)}
	}
	return series
}

// WealthSeries is the running prefix sum of savings, seeded at zero.
func WealthSeries(savings []models.SavingsPoint) []models.WealthPoint {
	series := make([]models.WealthPoint, len(savings))
	cumulative := decimal.Zero
	for i, s := range savings {
		cumulative = cumulative.Add(s.Savings)
		series[i] = models.WealthPoint{Month: s.Month, Balance: cumulative}
	}
	return series
}

// HealthScore is a bounded [0,100] proxy for income/expense balance quality:
// the fraction of income kept, clamped. Zero or negative income scores 0.
// Callers needing the unclamped overspend signal must compute it themselves.
func HealthScore(income, expense decimal.Decimal) float64 {
	if income.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	raw, _ := income.Sub(expense).Div(income).Mul(decimal.NewFromInt(100)).Float64()
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}

// ForecastMonth labels the synthetic projected point.
const ForecastMonth = "Next"

// ForecastSeries returns the savings history with one synthetic trailing
// point appended when at least two observations exist. The projection is a
// fixed-weight extrapolation, last + (last−prev)/2: a deliberate design
// choice, not a fitted model. Fewer than two observations is not an error,
// the history is simply returned without a projection.
func ForecastSeries(savings []models.SavingsPoint) []models.ForecastPoint {
	series := make([]models.ForecastPoint, len(savings))
	for i, s := range savings {
		series[i] = models.ForecastPoint{Month: s.Month, Savings: s.Savings}
	}
	if len(savings) < 2 {
		return series
	}
	last := savings[len(savings)-1].Savings
	prev := savings[len(savings)-2].Savings
	delta := last.Sub(prev)
	projected := last.Add(delta.Div(decimal.NewFromInt(2)))
	series = append(series, models.ForecastPoint{
		Month:     ForecastMonth,
		Savings:   projected,
		Predicted: &projected,
	})
	return series
}

// CategoryBreakdown sums expense amounts per category over the whole history
// (the category pie view).
func CategoryBreakdown(transactions []models.Transaction) (models.CategoryBreakdown, error) {
	return categoryBreakdown(transactions, "")
}

// CategoryBreakdownForMonth restricts the breakdown to one calendar month,
// strict equality on the year and month components.
func CategoryBreakdownForMonth(transactions []models.Transaction, year int, month time.Month) (models.CategoryBreakdown, error) {
	return categoryBreakdown(transactions, fmt.Sprintf("%04d-%02d", year, int(month)))
}

func categoryBreakdown(transactions []models.Transaction, monthKey string) (models.CategoryBreakdown, error) {
	breakdown := make(models.CategoryBreakdown)
	for _, t := range transactions {
		if err := validateTransaction(t); err != nil {
			return nil, err
		}
		if t.Type != models.TypeExpense {
			continue
		}
		if monthKey != "" && t.Date[:7] != monthKey {
			continue
		}
		breakdown[t.Category] = breakdown[t.Category].Add(t.Amount)
	}
	return breakdown, nil
}
