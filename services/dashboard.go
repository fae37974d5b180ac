package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// DashboardService fetches a per-user snapshot and runs the aggregation
// pipeline over it. The computation itself is pure; each refresh re-fetches
// and recomputes everything from scratch.
type DashboardService struct {
	transactions *TransactionService
	budgets      *BudgetService
}

func NewDashboardService(db *sql.DB) *DashboardService {
	return &DashboardService{
		transactions: NewTransactionService(db),
		budgets:      NewBudgetService(db),
	}
}

// Snapshot reads the user's full dataset in one pass.
func (s *DashboardService) Snapshot(ctx context.Context, userID string) (models.Snapshot, error) {
	transactions, err := s.transactions.List(ctx, userID)
	if err != nil {
		return models.Snapshot{}, err
	}
	budgets, err := s.budgets.List(ctx, userID)
	if err != nil {
		return models.Snapshot{}, err
	}
	totalBudget, err := s.budgets.GetTotalBudget(ctx, userID)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{
		Transactions: transactions,
		Budgets:      budgets,
		TotalBudget:  totalBudget,
	}, nil
}

// Recompute derives every dashboard view from one immutable snapshot.
// Pure and side-effect free; now anchors the budget tracker's current month.
func Recompute(snapshot models.Snapshot, now time.Time) (models.DerivedViews, error) {
	totals, err := ComputeTotals(snapshot.Transactions)
	if err != nil {
		return models.DerivedViews{}, err
	}

	monthly, err := MonthlyBuckets(snapshot.Transactions)
	if err != nil {
		return models.DerivedViews{}, err
	}

	breakdown, err := CategoryBreakdown(snapshot.Transactions)
	if err != nil {
		return models.DerivedViews{}, err
	}

	statuses, err := BudgetStatuses(snapshot.Budgets, snapshot.Transactions, now)
	if err != nil {
		return models.DerivedViews{}, err
	}

	notifications, err := GenerateNotifications(snapshot.Transactions, snapshot.TotalBudget)
	if err != nil {
		return models.DerivedViews{}, err
	}

	savings := SavingsSeries(monthly)

	return models.DerivedViews{
		Totals:            totals,
		MonthlySeries:     monthly,
		SavingsSeries:     savings,
		WealthSeries:      WealthSeries(savings),
		CategoryBreakdown: breakdown,
		HealthScore:       HealthScore(totals.Income, totals.Expense),
		ForecastSeries:    ForecastSeries(savings),
		BudgetStatuses:    statuses,
		OverallProgress:   Progress(statuses, snapshot.TotalBudget),
		Notifications:     notifications,
	}, nil
}

// Views is the convenience entry point: fetch then recompute.
func (s *DashboardService) Views(ctx context.Context, userID string) (models.DerivedViews, error) {
	snapshot, err := s.Snapshot(ctx, userID)
	if err != nil {
		return models.DerivedViews{}, err
	}
	return Recompute(snapshot, time.Now())
}
