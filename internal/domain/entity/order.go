package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/softcrates/fieldsync/internal/domain/enum"
)

// Order represents an order header. Orders created on device start as
// Pending/Local; after the server acknowledges a pushed batch the local rows
// are deleted and reappear through down-sync as Synced/Server. A header is
// never updated in place after push.
type Order struct {
	CSID          string           `gorm:"primaryKey;size:40;column:csid" json:"csid"`
	DocType       int16            `gorm:"not null;index:idx_orders_scope" json:"doc_type"`
	Branch        int16            `gorm:"not null;index:idx_orders_scope" json:"branch"`
	Number        int              `gorm:"not null" json:"number"`
	ClientID      int              `gorm:"not null;index" json:"client_id"`
	DeliveryPoint int              `json:"delivery_point"`
	OrderDate     time.Time        `json:"order_date"`
	DeliveryDate  time.Time        `json:"delivery_date"`
	GrossTotal    decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"gross_total"`
	DiscountTotal decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"discount_total"`
	NetTotal      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"net_total"`
	TaxTotal      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0" json:"tax_total"`
	Status        enum.OrderStatus `gorm:"not null;default:0;index" json:"status"`
	Origin        enum.OrderOrigin `gorm:"not null;default:0;index" json:"origin"`
	Confirmed     bool             `gorm:"not null;default:false" json:"confirmed"`
	CreatedAt     time.Time        `json:"created_at"`

	// Relationships
	Lines []OrderLine `gorm:"foreignKey:CSID;references:CSID" json:"lines,omitempty"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ComposeCSID derives the opaque order identifier from its business key
// parts. The concatenation matches what the server produces, so a locally
// derived csid and the server's csid for the same order are identical.
func ComposeCSID(docType, branch int16, number, clientID int) string {
	return fmt.Sprintf("%d%d%d%d", docType, branch, number, clientID)
}

// AssignNumber sets the scoped sequential number, derives the csid and
// stamps it onto every line. Called inside the creation transaction once the
// next number for the (docType, branch) scope is known.
func (o *Order) AssignNumber(number int) {
	o.Number = number
	o.CSID = ComposeCSID(o.DocType, o.Branch, number, o.ClientID)
	for i := range o.Lines {
		o.Lines[i].CSID = o.CSID
	}
}

// OrderLine represents one line of an order, keyed by (csid, sequence)
type OrderLine struct {
	CSID           string          `gorm:"primaryKey;size:40;column:csid" json:"csid"`
	Sequence       int16           `gorm:"primaryKey" json:"sequence"`
	ArticleCode    string          `gorm:"size:20;not null" json:"article_code"`
	Description    string          `gorm:"size:160" json:"description"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	DiscountClass  int16           `gorm:"not null;default:0" json:"discount_class"`
	GrossAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"gross_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount_amount"`
	NetAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"net_amount"`
	DeliveryDate   time.Time       `json:"delivery_date"`
}

// TableName returns the table name for the OrderLine model
func (OrderLine) TableName() string {
	return "order_lines"
}
