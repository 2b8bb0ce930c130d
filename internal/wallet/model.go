package wallet

import "time"

const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Transaction is an append-only ledger entry. The sign of Amount matches
// TransactionType: credits are positive, debits negative.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	Amount          int       `gorm:"not null" json:"amount"`
	TransactionType string    `gorm:"not null" json:"transaction_type"`
	Description     string    `json:"description"`
	Reference       string    `gorm:"uniqueIndex" json:"reference"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Transaction) TableName() string {
	return "wallet_transactions"
}

type AddCreditsRequest struct {
	Amount int `json:"amount"`
}
