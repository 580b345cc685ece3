package repository

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
)

// DiscountRepository defines local access to the discount schedule mirrors:
// the tier table and the per-client article assignments. Both are replaced
// wholesale on down-sync and never authored locally.
type DiscountRepository interface {
	// ActiveAssignment returns the active discount class assignment for the
	// pair, or nil when there is none or the assignment is inactive.
	ActiveAssignment(ctx context.Context, clientID int, articleCode string) (*entity.ClientArticleDiscount, error)
	// TiersByClass returns the schedule ordered by sequence.
	TiersByClass(ctx context.Context, classCode int16) ([]entity.DiscountTier, error)
	// ArticlesWithDiscount lists the catalog with each article's base
	// discount for the client applied from the first tier of its class.
	ArticlesWithDiscount(ctx context.Context, clientID int) ([]entity.ArticleDiscount, error)
	ReplaceTiers(ctx context.Context, tiers []entity.DiscountTier) (int, error)
	ReplaceAssignments(ctx context.Context, assignments []entity.ClientArticleDiscount) (int, error)
}
