package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents the create order request payload
type CreateOrderRequest struct {
	ClientID      int                      `json:"client_id" binding:"required"`
	DeliveryPoint int                      `json:"delivery_point"`
	DocType       int16                    `json:"doc_type" binding:"required"`
	Branch        int16                    `json:"branch" binding:"required"`
	OrderDate     time.Time                `json:"order_date"`
	DeliveryDate  time.Time                `json:"delivery_date"`
	Confirmed     bool                     `json:"confirmed"`
	Lines         []CreateOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateOrderLineRequest represents one line of the create order payload
type CreateOrderLineRequest struct {
	ArticleCode  string          `json:"article_code" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	DeliveryDate time.Time       `json:"delivery_date"`
}
