package services

import (
	"errors"
	"testing"

	"github.com/fintrack/fintrack-api/models"

	"github.com/shopspring/decimal"
)

func countBySeverity(notifications []models.Notification, severity models.Severity) int {
	n := 0
	for _, notif := range notifications {
		if notif.Severity == severity {
			n++
		}
	}
	return n
}

func TestTotalBudgetThresholds(t *testing.T) {
	cases := []struct {
		name  string
		spent string
		want  models.Severity
	}{
		{"well within", "200", models.SeverityInfo},
		{"just under warning", "799.99", models.SeverityInfo},
		{"warning boundary inclusive", "800", models.SeverityWarning},
		{"just under danger", "999.99", models.SeverityWarning},
		{"danger boundary inclusive", "1000", models.SeverityDanger},
		{"far over", "1500", models.SeverityDanger},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notifications, err := GenerateNotifications(
				[]models.Transaction{tx("t1", models.TypeExpense, "Rent", tc.spent, "2024-03-01")},
				dec("1000"),
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var status *models.Notification
			for i := range notifications {
				if notifications[i].ID == "total-budget" {
					if status != nil {
						t.Fatal("total-budget rule fired more than once")
					}
					status = &notifications[i]
				}
			}
			if status == nil {
				t.Fatal("total-budget rule did not fire")
			}
			if status.Severity != tc.want {
				t.Errorf("severity = %s, want %s", status.Severity, tc.want)
			}
		})
	}
}

func TestTotalBudgetInfoMessagePercent(t *testing.T) {
	notifications, err := GenerateNotifications(
		[]models.Transaction{tx("t1", models.TypeExpense, "Food", "200", "2024-03-01")},
		dec("1000"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "You are within budget. (20.0% spent)"
	if notifications[0].Message != want {
		t.Errorf("message = %q, want %q", notifications[0].Message, want)
	}
}

func TestNoTotalBudgetConfigured(t *testing.T) {
	notifications, err := GenerateNotifications(
		[]models.Transaction{tx("t1", models.TypeExpense, "Food", "200", "2024-03-01")},
		decimal.Zero,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, n := range notifications {
		if n.ID == "total-budget" {
			t.Error("total-budget rule must not fire without a configured budget")
		}
	}
}

// The large-expense rule is per-transaction and strictly greater-than.
func TestLargeExpenseRule(t *testing.T) {
	notifications, err := GenerateNotifications([]models.Transaction{
		tx("t1", models.TypeExpense, "Electronics", "1500", "2024-03-01"),
		tx("t2", models.TypeExpense, "Food", "500", "2024-03-02"),
		tx("t3", models.TypeExpense, "Travel", "2000", "2024-03-03"),
		tx("t4", models.TypeExpense, "Rent", "1000", "2024-03-04"), // exactly 1000, excluded
		tx("t5", models.TypeIncome, "Salary", "5000", "2024-03-05"),
	}, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := countBySeverity(notifications, models.SeverityWarning); got != 2 {
		t.Fatalf("got %d warnings, want 2", got)
	}

	first := notifications[0]
	if first.Message != "High expense: 1500 on Electronics" {
		t.Errorf("message = %q", first.Message)
	}
	if first.RelatedDate != "2024-03-01" || first.RelatedCategory != "Electronics" {
		t.Errorf("related fields = %q, %q", first.RelatedDate, first.RelatedCategory)
	}
}

func TestGenerateNotificationsRejectsBadData(t *testing.T) {
	_, err := GenerateNotifications([]models.Transaction{
		tx("t1", models.TypeExpense, "Food", "10", "bad-date"),
	}, decimal.Zero)
	if !errors.Is(err, ErrBadDate) {
		t.Errorf("error = %v, want ErrBadDate", err)
	}
}

func TestFilterBySeverity(t *testing.T) {
	notifications := []models.Notification{
		{ID: "1", Severity: models.SeverityInfo},
		{ID: "2", Severity: models.SeverityWarning},
		{ID: "3", Severity: models.SeverityWarning},
		{ID: "4", Severity: models.SeverityDanger},
	}

	if got := FilterBySeverity(notifications, models.SeverityWarning); len(got) != 2 {
		t.Errorf("warning filter returned %d, want 2", len(got))
	}
	if got := FilterBySeverity(notifications, ""); len(got) != 4 {
		t.Errorf("empty filter returned %d, want all 4", len(got))
	}
	if got := FilterBySeverity(nil, models.SeverityInfo); len(got) != 0 {
		t.Errorf("nil input returned %d, want 0", len(got))
	}
}
