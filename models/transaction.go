package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is a closed two-variant enum. Direction of money is carried
// by the type, never by the sign of the amount.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DateLayout is the wire and storage form of transaction dates.
const DateLayout = "2006-01-02"

type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      TransactionType `json:"type"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time       `json:"created_at"`
}

type CreateTransactionRequest struct {
	Type     string          `json:"type" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date" binding:"required"`
}

type UpdateTransactionRequest struct {
	Type     string          `json:"type" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date" binding:"required"`
}
