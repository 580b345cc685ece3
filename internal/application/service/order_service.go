package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/enum"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/pkg/apperror"
)

// OrderService creates orders in the local store. Every order is created
// offline-capable: it lands as Pending/Local regardless of connectivity and
// reaches the server through the next push.
type OrderService struct {
	orderRepo       repository.OrderRepository
	articleRepo     repository.ArticleRepository
	clientRepo      repository.ClientRepository
	discountService *DiscountService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	articleRepo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
	discountService *DiscountService,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		articleRepo:     articleRepo,
		clientRepo:      clientRepo,
		discountService: discountService,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	ClientID      int
	DeliveryPoint int
	DocType       int16
	Branch        int16
	OrderDate     time.Time
	DeliveryDate  time.Time
	Confirmed     bool
	Lines         []CreateOrderLineInput
}

// CreateOrderLineInput represents one requested order line
type CreateOrderLineInput struct {
	ArticleCode  string
	Quantity     decimal.Decimal
	DeliveryDate time.Time
}

// CreateOrder builds and persists a new order. Prices come from the local
// article mirror and discounts are resolved per line before the transaction
// opens; inside the transaction the order takes the next number for its
// (docType, branch) scope, derives its csid from it and is written together
// with its lines.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one line")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	var (
		lines         []entity.OrderLine
		grossTotal    decimal.Decimal
		discountTotal decimal.Decimal
	)
	for i, lineInput := range input.Lines {
		if lineInput.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Line %d: quantity must be positive", i+1))
		}

		article, err := s.articleRepo.GetByCode(ctx, lineInput.ArticleCode)
		if err != nil {
			return nil, err
		}
		if article == nil {
			return nil, apperror.NewNotFoundError("Article " + lineInput.ArticleCode)
		}

		gross := article.Price.Mul(lineInput.Quantity)

		discount, err := s.discountService.Resolve(ctx, input.ClientID, article.Code, gross)
		if err != nil {
			return nil, err
		}
		discountAmount := gross.Mul(discount.Percent).Div(decimal.NewFromInt(100))

		deliveryDate := lineInput.DeliveryDate
		if deliveryDate.IsZero() {
			deliveryDate = input.DeliveryDate
		}

		lines = append(lines, entity.OrderLine{
			Sequence:       int16(i + 1),
			ArticleCode:    article.Code,
			Description:    article.Description,
			Quantity:       lineInput.Quantity,
			UnitPrice:      article.Price,
			DiscountClass:  discount.ClassCode,
			GrossAmount:    gross,
			DiscountAmount: discountAmount,
			NetAmount:      gross.Sub(discountAmount),
			DeliveryDate:   deliveryDate,
		})
		grossTotal = grossTotal.Add(gross)
		discountTotal = discountTotal.Add(discountAmount)
	}

	order := &entity.Order{
		DocType:       input.DocType,
		Branch:        input.Branch,
		ClientID:      input.ClientID,
		DeliveryPoint: input.DeliveryPoint,
		OrderDate:     orderDate,
		DeliveryDate:  input.DeliveryDate,
		GrossTotal:    grossTotal,
		DiscountTotal: discountTotal,
		NetTotal:      grossTotal.Sub(discountTotal),
		TaxTotal:      decimal.Zero,
		Status:        enum.OrderStatusPending,
		Origin:        enum.OrderOriginLocal,
		Confirmed:     input.Confirmed,
		CreatedAt:     time.Now(),
		Lines:         lines,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Printf("[ORDER] created %s for client %d (%d lines, net %s)",
		order.CSID, order.ClientID, len(order.Lines), order.NetTotal.StringFixed(2))
	return order, nil
}
