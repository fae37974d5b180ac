package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNegativeBudget = errors.New("budget amount is negative")

type BudgetService struct {
	db *sql.DB
}

func NewBudgetService(db *sql.DB) *BudgetService {
	return &BudgetService{db: db}
}

// List returns all budget rows for a user in creation order. Duplicate
// categories are allowed and returned as separate rows.
func (s *BudgetService) List(ctx context.Context, userID string) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (s *BudgetService) Create(ctx context.Context, userID string, req models.CreateBudgetRequest) (*models.Budget, error) {
	if req.Amount.IsNegative() {
		return nil, ErrNegativeBudget
	}

	b := models.Budget{
		ID:        uuid.New().String(),
		UserID:    userID,
		Category:  req.Category,
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO budgets (id, user_id, category, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, b.ID, b.UserID, b.Category, b.Amount, b.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert budget: %w", err)
	}
	return &b, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	if req.Amount.IsNegative() {
		return nil, ErrNegativeBudget
	}

	b := models.Budget{ID: id, UserID: userID, Category: req.Category, Amount: req.Amount}

	query := `
		UPDATE budgets
		SET category = $1, amount = $2
		WHERE id = $3 AND user_id = $4
		RETURNING created_at
	`
	err := s.db.QueryRowContext(ctx, query, req.Category, req.Amount, id, userID).Scan(&b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return &b, nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetTotalBudget returns the user's total budget, zero when unset.
func (s *BudgetService) GetTotalBudget(ctx context.Context, userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRowContext(ctx,
		`SELECT total_budget FROM total_budget WHERE user_id = $1`, userID).Scan(&total)
	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get total budget: %w", err)
	}
	return total, nil
}

// SetTotalBudget upserts the single total-budget row for the user.
func (s *BudgetService) SetTotalBudget(ctx context.Context, userID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeBudget
	}

	query := `
		INSERT INTO total_budget (user_id, total_budget)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET total_budget = $2
	`
	if _, err := s.db.ExecContext(ctx, query, userID, amount); err != nil {
		return fmt.Errorf("failed to set total budget: %w", err)
	}
	return nil
}
