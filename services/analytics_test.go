package services

import (
	"errors"
	"testing"

	"github.com/fintrack/fintrack-api/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(id string, typ models.TransactionType, category, amount, date string) models.Transaction {
	return models.Transaction{ID: id, UserID: "u1", Type: typ, Category: category, Amount: dec(amount), Date: date}
}

func sampleHistory() []models.Transaction {
	return []models.Transaction{
		tx("t1", models.TypeIncome, "Salary", "2000", "2024-01-05"),
		tx("t2", models.TypeExpense, "Food", "300", "2024-01-10"),
		tx("t3", models.TypeExpense, "Food", "200", "2024-02-02"),
		tx("t4", models.TypeIncome, "Salary", "2200", "2024-02-15"),
	}
}

func TestComputeTotals(t *testing.T) {
	totals, err := ComputeTotals(sampleHistory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.Income.Equal(dec("4200")) {
		t.Errorf("income = %s, want 4200", totals.Income)
	}
	if !totals.Expense.Equal(dec("500")) {
		t.Errorf("expense = %s, want 500", totals.Expense)
	}
	if !totals.Balance.Equal(dec("3700")) {
		t.Errorf("balance = %s, want 3700", totals.Balance)
	}
}

func TestComputeTotalsNegativeBalance(t *testing.T) {
	totals, err := ComputeTotals([]models.Transaction{
		tx("t1", models.TypeIncome, "Salary", "100", "2024-01-01"),
		tx("t2", models.TypeExpense, "Rent", "250", "2024-01-02"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.Balance.Equal(dec("-150")) {
		t.Errorf("balance = %s, want -150 (no clamping)", totals.Balance)
	}
}

func TestMonthlyBuckets(t *testing.T) {
	buckets, err := MonthlyBuckets(sampleHistory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.MonthlyPoint{
		{Month: "2024-01", Income: dec("2000"), Expense: dec("300")},
		{Month: "2024-02", Income: dec("2200"), Expense: dec("200")},
	}
	if len(buckets) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(want))
	}
	for i, w := range want {
		if buckets[i].Month != w.Month || !buckets[i].Income.Equal(w.Income) || !buckets[i].Expense.Equal(w.Expense) {
			t.Errorf("bucket %d = %+v, want %+v", i, buckets[i], w)
		}
	}
}

func TestMonthlyBucketsEmpty(t *testing.T) {
	buckets, err := MonthlyBuckets(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("got %d buckets, want 0", len(buckets))
	}
}

func TestMonthlyBucketsSkipGapMonths(t *testing.T) {
	buckets, err := MonthlyBuckets([]models.Transaction{
		tx("t1", models.TypeIncome, "Salary", "100", "2024-01-05"),
		tx("t2", models.TypeIncome, "Salary", "100", "2024-04-05"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("gap months must not be synthesized, got %d buckets", len(buckets))
	}
	if buckets[0].Month != "2024-01" || buckets[1].Month != "2024-04" {
		t.Errorf("months = %s, %s", buckets[0].Month, buckets[1].Month)
	}
}

// Bucket income/expense must partition the unbucketed totals.
func TestBucketingPartitionsTotals(t *testing.T) {
	sets := [][]models.Transaction{
		sampleHistory(),
		{
			tx("a", models.TypeExpense, "Rent", "1200.55", "2023-11-01"),
			tx("b", models.TypeIncome, "Salary", "3000.10", "2023-11-02"),
			tx("c", models.TypeExpense, "Food", "0.01", "2024-01-31"),
			tx("d", models.TypeExpense, "Food", "99.99", "2024-01-31"),
			tx("e", models.TypeIncome, "Bonus", "500", "2024-03-15"),
		},
		nil,
	}

	for i, set := range sets {
		totals, err := ComputeTotals(set)
		if err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
		buckets, err := MonthlyBuckets(set)
		if err != nil {
			t.Fatalf("set %d: %v", i, err)
		}

		income, expense := decimal.Zero, decimal.Zero
		for _, b := range buckets {
			income = income.Add(b.Income)
			expense = expense.Add(b.Expense)
		}
		if !income.Equal(totals.Income) {
			t.Errorf("set %d: bucket income sum %s != totals income %s", i, income, totals.Income)
		}
		if !expense.Equal(totals.Expense) {
			t.Errorf("set %d: bucket expense sum %s != totals expense %s", i, expense, totals.Expense)
		}
	}
}

func TestMalformedTransactionsRejected(t *testing.T) {
	cases := []struct {
		name string
		t    models.Transaction
		want error
	}{
		{"bad date", tx("t1", models.TypeExpense, "Food", "10", "01/05/2024"), ErrBadDate},
		{"empty date", tx("t1", models.TypeExpense, "Food", "10", ""), ErrBadDate},
		{"negative amount", tx("t1", models.TypeExpense, "Food", "-10", "2024-01-05"), ErrNegativeAmount},
		{"bad type", models.Transaction{ID: "t1", Type: "transfer", Category: "Food", Amount: dec("10"), Date: "2024-01-05"}, ErrBadType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MonthlyBuckets([]models.Transaction{tc.t}); !errors.Is(err, tc.want) {
				t.Errorf("MonthlyBuckets error = %v, want %v", err, tc.want)
			}
			if _, err := ComputeTotals([]models.Transaction{tc.t}); !errors.Is(err, tc.want) {
				t.Errorf("ComputeTotals error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSavingsSeries(t *testing.T) {
	buckets, err := MonthlyBuckets(sampleHistory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	savings := SavingsSeries(buckets)
	if len(savings) != 2 {
		t.Fatalf("got %d points, want 2", len(savings))
	}
	if !savings[0].Savings.Equal(dec("1700")) || !savings[1].Savings.Equal(dec("2000")) {
		t.Errorf("savings = [%s, %s], want [1700, 2000]", savings[0].Savings, savings[1].Savings)
	}
}

// The final wealth point must equal the sum of the savings series.
func TestWealthSeriesSumsToFinalBalance(t *testing.T) {
	savings := []models.SavingsPoint{
		{Month: "2024-01", Savings: dec("1700")},
		{Month: "2024-02", Savings: dec("-300")},
		{Month: "2024-03", Savings: dec("2000")},
	}

	wealth := WealthSeries(savings)
	if len(wealth) != 3 {
		t.Fatalf("got %d points, want 3", len(wealth))
	}

	total := decimal.Zero
	for _, s := range savings {
		total = total.Add(s.Savings)
	}
	if !wealth[len(wealth)-1].Balance.Equal(total) {
		t.Errorf("final balance %s != savings sum %s", wealth[len(wealth)-1].Balance, total)
	}
	if !wealth[1].Balance.Equal(dec("1400")) {
		t.Errorf("intermediate balance = %s, want 1400", wealth[1].Balance)
	}
}

func TestHealthScore(t *testing.T) {
	cases := []struct {
		name            string
		income, expense string
		want            float64
	}{
		{"zero income", "0", "500", 0},
		{"no expense", "1000", "0", 100},
		{"quarter kept", "1000", "750", 25},
		{"overspent clamps to zero", "1000", "1500", 0},
		{"break even", "1000", "1000", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HealthScore(dec(tc.income), dec(tc.expense))
			if got != tc.want {
				t.Errorf("HealthScore(%s, %s) = %v, want %v", tc.income, tc.expense, got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %v out of [0,100]", got)
			}
		})
	}
}

func TestForecastSeries(t *testing.T) {
	savings := []models.SavingsPoint{
		{Month: "2024-01", Savings: dec("100")},
		{Month: "2024-02", Savings: dec("150")},
		{Month: "2024-03", Savings: dec("200")},
	}

	forecast := ForecastSeries(savings)
	if len(forecast) != 4 {
		t.Fatalf("got %d points, want 4", len(forecast))
	}

	for i := 0; i < 3; i++ {
		if forecast[i].Predicted != nil {
			t.Errorf("historical point %d carries a predicted marker", i)
		}
	}

	last := forecast[3]
	if last.Month != ForecastMonth {
		t.Errorf("projected month = %q, want %q", last.Month, ForecastMonth)
	}
	// delta = 200-150 = 50; projected = 200 + 25 = 225
	if !last.Savings.Equal(dec("225")) {
		t.Errorf("projected = %s, want 225", last.Savings)
	}
	if last.Predicted == nil || !last.Predicted.Equal(dec("225")) {
		t.Errorf("predicted marker = %v, want 225", last.Predicted)
	}
}

func TestForecastSeriesInsufficientHistory(t *testing.T) {
	for _, savings := range [][]models.SavingsPoint{
		nil,
		{{Month: "2024-01", Savings: dec("100")}},
	} {
		forecast := ForecastSeries(savings)
		if len(forecast) != len(savings) {
			t.Errorf("with %d observations got %d points, want no projection", len(savings), len(forecast))
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	breakdown, err := CategoryBreakdown(sampleHistory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(breakdown) != 1 {
		t.Fatalf("got %d categories, want 1 (income must be excluded)", len(breakdown))
	}
	if !breakdown["Food"].Equal(dec("500")) {
		t.Errorf("Food = %s, want 500", breakdown["Food"])
	}
}

func TestCategoryBreakdownForMonth(t *testing.T) {
	breakdown, err := CategoryBreakdownForMonth(sampleHistory(), 2024, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !breakdown["Food"].Equal(dec("300")) {
		t.Errorf("Food in 2024-01 = %s, want 300", breakdown["Food"])
	}
	if _, ok := breakdown["Salary"]; ok {
		t.Error("income category leaked into expense breakdown")
	}
}
