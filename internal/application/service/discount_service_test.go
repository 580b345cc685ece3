package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/enum"
	"github.com/softcrates/fieldsync/internal/infrastructure/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Article{},
		&entity.Client{},
		&entity.Invoice{},
		&entity.DeliveryPoint{},
		&entity.DiscountTier{},
		&entity.ClientArticleDiscount{},
		&entity.User{},
		&entity.Order{},
		&entity.OrderLine{},
	))
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

// seedDiscountClass sets up class 5 with three amount brackets:
// [0,100) -> 2%, [100,500) -> 5%, [500,...) -> 8%
func seedDiscountClass(t *testing.T, db *gorm.DB, clientID int, articleCode string) {
	t.Helper()
	tiers := []entity.DiscountTier{
		{ClassCode: 5, Sequence: 1, TierType: enum.TierTypeAmount, AmountFrom: dec("0"), AmountTo: nullDec("99.99"), PercentOnAmount: dec("2")},
		{ClassCode: 5, Sequence: 2, TierType: enum.TierTypeAmount, AmountFrom: dec("100"), AmountTo: nullDec("499.99"), PercentOnAmount: dec("5")},
		{ClassCode: 5, Sequence: 3, TierType: enum.TierTypeAmount, AmountFrom: dec("500"), PercentOnAmount: dec("8")},
	}
	require.NoError(t, db.Create(&tiers).Error)
	require.NoError(t, db.Create(&entity.ClientArticleDiscount{
		ClientID: clientID, ArticleCode: articleCode, ClassCode: 5,
	}).Error)
}

func TestResolvePicksBracketCoveringAmount(t *testing.T) {
	db := setupTestDB(t)
	seedDiscountClass(t, db, 100, "A001")
	svc := NewDiscountService(repository.NewDiscountRepository(db))
	ctx := context.Background()

	cases := []struct {
		amount  string
		percent string
	}{
		{"50", "2"},
		{"100", "5"},
		{"499.99", "5"},
		{"500", "8"},
		{"10000", "8"},
	}
	for _, tc := range cases {
		got, err := svc.Resolve(ctx, 100, "A001", dec(tc.amount))
		require.NoError(t, err)
		assert.True(t, got.Percent.Equal(dec(tc.percent)), "amount %s: expected %s%%, got %s%%", tc.amount, tc.percent, got.Percent)
		assert.Equal(t, int16(5), got.ClassCode)
	}
}

func TestResolveFallsBackToBaseTier(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(repository.NewDiscountRepository(db))
	ctx := context.Background()

	// Brackets start above zero; an amount below every bracket earns the
	// first tier's percent.
	tiers := []entity.DiscountTier{
		{ClassCode: 7, Sequence: 1, TierType: enum.TierTypeAmount, AmountFrom: dec("200"), AmountTo: nullDec("999.99"), PercentOnAmount: dec("3")},
		{ClassCode: 7, Sequence: 2, TierType: enum.TierTypeAmount, AmountFrom: dec("1000"), PercentOnAmount: dec("6")},
	}
	require.NoError(t, db.Create(&tiers).Error)
	require.NoError(t, db.Create(&entity.ClientArticleDiscount{ClientID: 100, ArticleCode: "A001", ClassCode: 7}).Error)

	got, err := svc.Resolve(ctx, 100, "A001", dec("50"))
	require.NoError(t, err)
	assert.True(t, got.Percent.Equal(dec("3")))
}

func TestResolveSelectsByBoundNotSequence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(repository.NewDiscountRepository(db))
	ctx := context.Background()

	// Sequence numbers deliberately misaligned with the thresholds: the
	// open-ended zero bracket carries the higher sequence. Selection must
	// go by the greatest qualifying lower bound.
	tiers := []entity.DiscountTier{
		{ClassCode: 9, Sequence: 1, TierType: enum.TierTypeAmount, AmountFrom: dec("1000"), PercentOnAmount: dec("10")},
		{ClassCode: 9, Sequence: 2, TierType: enum.TierTypeAmount, AmountFrom: dec("0"), PercentOnAmount: dec("0")},
	}
	require.NoError(t, db.Create(&tiers).Error)
	require.NoError(t, db.Create(&entity.ClientArticleDiscount{ClientID: 100, ArticleCode: "A001", ClassCode: 9}).Error)

	got, err := svc.Resolve(ctx, 100, "A001", dec("1500"))
	require.NoError(t, err)
	assert.True(t, got.Percent.Equal(dec("10")), "expected the 1000-from bracket, got %s%%", got.Percent)

	got, err = svc.Resolve(ctx, 100, "A001", dec("500"))
	require.NoError(t, err)
	assert.True(t, got.Percent.IsZero())
}

func TestResolveZeroWithoutAssignment(t *testing.T) {
	db := setupTestDB(t)
	seedDiscountClass(t, db, 100, "A001")
	svc := NewDiscountService(repository.NewDiscountRepository(db))
	ctx := context.Background()

	got, err := svc.Resolve(ctx, 999, "A001", dec("100"))
	require.NoError(t, err)
	assert.True(t, got.Percent.IsZero())
	assert.Zero(t, got.ClassCode)
}

func TestResolveIgnoresInactiveAssignment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(repository.NewDiscountRepository(db))
	ctx := context.Background()

	require.NoError(t, db.Create(&entity.DiscountTier{
		ClassCode: 5, Sequence: 1, TierType: enum.TierTypeAmount, AmountFrom: dec("0"), PercentOnAmount: dec("2"),
	}).Error)
	require.NoError(t, db.Create(&entity.ClientArticleDiscount{
		ClientID: 100, ArticleCode: "A001", ClassCode: 5, Inactive: true,
	}).Error)

	got, err := svc.Resolve(ctx, 100, "A001", dec("100"))
	require.NoError(t, err)
	assert.True(t, got.Percent.IsZero())
}
