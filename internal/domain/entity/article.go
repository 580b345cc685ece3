package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article represents a catalog item mirrored from the central server. The
// mirror is read-only on device and refreshed by upsert during down-sync.
type Article struct {
	Code        string          `gorm:"primaryKey;size:20" json:"code"`
	Description string          `gorm:"size:160;index" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the table name for the Article model
func (Article) TableName() string {
	return "articles"
}
