package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client represents a customer account mirrored from the central server
type Client struct {
	ID             int             `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"size:120;index" json:"name"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"current_balance"`
	OverdueBalance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"overdue_balance"`
	CreditLimit    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"credit_limit"`
	CreditUsed     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"credit_used"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// ClientSummary is the aggregate account view shown before taking an order:
// the client header joined with its outstanding invoices. It is a projection,
// not a table.
type ClientSummary struct {
	ClientID       int             `json:"client_id"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	OverdueBalance decimal.Decimal `json:"overdue_balance"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	CreditUsed     decimal.Decimal `json:"credit_used"`
	Invoices       []Invoice       `json:"invoices"`
}
