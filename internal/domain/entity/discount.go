package entity

import (
	"github.com/shopspring/decimal"

	"github.com/softcrates/fieldsync/internal/domain/enum"
)

// DiscountTier is one bracket of a discount class schedule. Tiers are
// ordered by Sequence within their class; AmountTo is open-ended when null.
// The local table is a replaceable mirror, never authored on device.
type DiscountTier struct {
	ClassCode        int16               `gorm:"primaryKey" json:"class_code"`
	Sequence         int16               `gorm:"primaryKey" json:"sequence"`
	TierType         enum.TierType       `gorm:"size:10" json:"tier_type"`
	AmountFrom       decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0" json:"amount_from"`
	AmountTo         decimal.NullDecimal `gorm:"type:decimal(18,4)" json:"amount_to"`
	PercentOnAmount  decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:0" json:"percent_on_amount"`
	PercentOnQty     decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:0" json:"percent_on_quantity"`
}

// TableName returns the table name for the DiscountTier model
func (DiscountTier) TableName() string {
	return "discount_tiers"
}

// ClientArticleDiscount maps a (client, article) pair to its discount class.
// Replaceable mirror.
type ClientArticleDiscount struct {
	ClientID    int    `gorm:"primaryKey" json:"client_id"`
	ArticleCode string `gorm:"primaryKey;size:20" json:"article_code"`
	ClassCode   int16  `gorm:"not null" json:"class_code"`
	Inactive    bool   `gorm:"not null;default:false" json:"inactive"`
}

// TableName returns the table name for the ClientArticleDiscount model
func (ClientArticleDiscount) TableName() string {
	return "client_article_discounts"
}

// ArticleDiscount is the catalog view offered when composing an order: every
// article with the base discount the client gets on it, zero when no active
// class applies.
type ArticleDiscount struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ClassCode   int16           `json:"class_code"`
	BasePercent decimal.Decimal `json:"base_percent"`
}
