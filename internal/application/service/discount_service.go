package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/repository"
)

// LineDiscount is the resolved discount for one order line
type LineDiscount struct {
	ClassCode int16
	Percent   decimal.Decimal
}

// DiscountService resolves the discount an order line earns. Resolution
// always reads the local mirror, never the server: the discount applied to
// an order must match the schedule the device displayed when the line was
// entered, even if a sync lands mid-order.
type DiscountService struct {
	discountRepo repository.DiscountRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(discountRepo repository.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

// Resolve returns the discount for a (client, article) pair at the given
// line amount. With no active assignment the discount is zero. Within the
// assigned class the highest bracket whose range covers the amount wins;
// when no bracket covers it the first tier of the class applies.
func (s *DiscountService) Resolve(ctx context.Context, clientID int, articleCode string, amount decimal.Decimal) (LineDiscount, error) {
	assignment, err := s.discountRepo.ActiveAssignment(ctx, clientID, articleCode)
	if err != nil {
		return LineDiscount{}, fmt.Errorf("failed to resolve discount assignment: %w", err)
	}
	if assignment == nil {
		return LineDiscount{}, nil
	}

	tiers, err := s.discountRepo.TiersByClass(ctx, assignment.ClassCode)
	if err != nil {
		return LineDiscount{}, fmt.Errorf("failed to load discount tiers: %w", err)
	}
	if len(tiers) == 0 {
		return LineDiscount{}, nil
	}

	if tier := matchTier(tiers, amount); tier != nil {
		return LineDiscount{ClassCode: assignment.ClassCode, Percent: tier.PercentOnAmount}, nil
	}
	// Below every bracket: the base tier applies.
	return LineDiscount{ClassCode: assignment.ClassCode, Percent: tiers[0].PercentOnAmount}, nil
}

// matchTier returns the qualifying bracket with the greatest lower bound.
// Selection goes by the bound value, not by sequence; a schedule whose
// sequence numbers do not track the thresholds still resolves correctly.
func matchTier(tiers []entity.DiscountTier, amount decimal.Decimal) *entity.DiscountTier {
	var best *entity.DiscountTier
	for i := range tiers {
		tier := &tiers[i]
		if amount.LessThan(tier.AmountFrom) {
			continue
		}
		if tier.AmountTo.Valid && amount.GreaterThan(tier.AmountTo.Decimal) {
			continue
		}
		if best == nil || tier.AmountFrom.GreaterThan(best.AmountFrom) {
			best = tier
		}
	}
	return best
}
