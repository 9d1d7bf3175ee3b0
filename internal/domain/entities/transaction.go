package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// TransactionType classifies ledger entries
type TransactionType string

const (
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypePresale    TransactionType = "presale"
	TransactionTypeCredit     TransactionType = "credit"
	TransactionTypeDebit      TransactionType = "debit"
)

// TransactionStatus is recorded once when the entry is written
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction is an append-only ledger entry
type Transaction struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Wallet    null.String       `json:"wallet"`
	Status    TransactionStatus `json:"status"`
	Metadata  null.String       `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}
