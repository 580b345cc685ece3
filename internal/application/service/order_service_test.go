package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/enum"
	"github.com/softcrates/fieldsync/internal/infrastructure/repository"
	"github.com/softcrates/fieldsync/pkg/apperror"
)

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewArticleRepository(db),
		repository.NewClientRepository(db),
		NewDiscountService(repository.NewDiscountRepository(db)),
	)
}

func seedClientAndArticle(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Client{ID: 100, Name: "Corner Shop"}).Error)
	require.NoError(t, db.Create(&entity.Article{Code: "A001", Description: "Widget", Price: dec("10")}).Error)
}

func TestCreateOrderWorksOffline(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 100,
		DocType:  1,
		Branch:   2,
		Lines: []CreateOrderLineInput{
			{ArticleCode: "A001", Quantity: dec("3")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, order.Number)
	assert.Equal(t, entity.ComposeCSID(1, 2, 1, 100), order.CSID)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, enum.OrderOriginLocal, order.Origin)
	assert.True(t, order.GrossTotal.Equal(dec("30")))
	assert.True(t, order.NetTotal.Equal(dec("30")))
}

func TestCreateOrderAppliesResolvedDiscounts(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	seedDiscountClass(t, db, 100, "A001")
	svc := newOrderService(t, db)

	// 50 units at 10 -> gross 500, landing in the 8% bracket.
	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 100,
		DocType:  1,
		Branch:   1,
		Lines: []CreateOrderLineInput{
			{ArticleCode: "A001", Quantity: dec("50")},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	line := order.Lines[0]
	assert.True(t, line.GrossAmount.Equal(dec("500")))
	assert.True(t, line.DiscountAmount.Equal(dec("40")))
	assert.True(t, line.NetAmount.Equal(dec("460")))
	assert.Equal(t, int16(5), line.DiscountClass)
	assert.True(t, order.DiscountTotal.Equal(dec("40")))
	assert.True(t, order.NetTotal.Equal(dec("460")))
}

func TestCreateOrderPricesFromCatalog(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 100,
		DocType:  1,
		Branch:   1,
		Lines: []CreateOrderLineInput{
			{ArticleCode: "A001", Quantity: dec("2")},
		},
	})
	require.NoError(t, err)
	assert.True(t, order.Lines[0].UnitPrice.Equal(dec("10")))
	assert.Equal(t, "Widget", order.Lines[0].Description)
}

func TestCreateOrderRejectsEmptyLines(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 100, DocType: 1, Branch: 1,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 999, DocType: 1, Branch: 1,
		Lines: []CreateOrderLineInput{{ArticleCode: "A001", Quantity: dec("1")}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsUnknownArticle(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 100, DocType: 1, Branch: 1,
		Lines: []CreateOrderLineInput{{ArticleCode: "NOPE", Quantity: dec("1")}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ClientID: 100, DocType: 1, Branch: 1,
		Lines: []CreateOrderLineInput{{ArticleCode: "A001", Quantity: dec("0")}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrderNumbersStayDistinctPerScope(t *testing.T) {
	db := setupTestDB(t)
	seedClientAndArticle(t, db)
	svc := newOrderService(t, db)
	ctx := context.Background()

	input := func() *CreateOrderInput {
		return &CreateOrderInput{
			ClientID: 100, DocType: 1, Branch: 1, OrderDate: time.Now(),
			Lines: []CreateOrderLineInput{{ArticleCode: "A001", Quantity: decimal.NewFromInt(1)}},
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		order, err := svc.CreateOrder(ctx, input())
		require.NoError(t, err)
		assert.Equal(t, i+1, order.Number)
		assert.False(t, seen[order.CSID], "csid %s repeated", order.CSID)
		seen[order.CSID] = true
	}
}
