package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fintrack/fintrack-api/models"

	"github.com/google/uuid"
)

type TransactionService struct {
	db *sql.DB
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// List returns the user's full transaction history, newest first.
func (s *TransactionService) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, category, amount, to_char(date, 'YYYY-MM-DD'), created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Category, &t.Amount, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Create validates and inserts a transaction. Validation mirrors the engine's
// DataError rules so bad records never reach storage.
func (s *TransactionService) Create(ctx context.Context, userID string, req models.CreateTransactionRequest) (*models.Transaction, error) {
	t := models.Transaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      models.TransactionType(req.Type),
		Category:  req.Category,
		Amount:    req.Amount,
		Date:      req.Date,
		CreatedAt: time.Now(),
	}

	if err := validateTransaction(t); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO transactions (id, user_id, type, category, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query, t.ID, t.UserID, t.Type, t.Category, t.Amount, t.Date, t.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return &t, nil
}

// Update rewrites a transaction owned by the user.
func (s *TransactionService) Update(ctx context.Context, userID, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	t := models.Transaction{
		ID:       id,
		UserID:   userID,
		Type:     models.TransactionType(req.Type),
		Category: req.Category,
		Amount:   req.Amount,
		Date:     req.Date,
	}

	if err := validateTransaction(t); err != nil {
		return nil, err
	}

	query := `
		UPDATE transactions
		SET type = $1, category = $2, amount = $3, date = $4
		WHERE id = $5 AND user_id = $6
		RETURNING created_at
	`
	err := s.db.QueryRowContext(ctx, query, t.Type, t.Category, t.Amount, t.Date, id, userID).Scan(&t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return &t, nil
}

// Delete removes a transaction owned by the user.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
