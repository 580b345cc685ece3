package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an outstanding receivable document mirrored from the
// server for client summaries. The business key is the concatenation of
// document type, branch and number, stored as one opaque identifier the same
// way the server reports it.
type Invoice struct {
	CSID           string          `gorm:"primaryKey;size:40;column:csid" json:"csid"`
	ClientID       int             `gorm:"not null;index" json:"client_id"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	OriginalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"original_amount"`
	Balance        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"balance"`
	Status         string          `gorm:"size:20" json:"status"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
