package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	domainRepo "github.com/softcrates/fieldsync/internal/domain/repository"
)

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) domainRepo.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) ActiveAssignment(ctx context.Context, clientID int, articleCode string) (*entity.ClientArticleDiscount, error) {
	var assignment entity.ClientArticleDiscount
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND article_code = ? AND inactive = ?", clientID, articleCode, false).
		First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *discountRepository) TiersByClass(ctx context.Context, classCode int16) ([]entity.DiscountTier, error) {
	var tiers []entity.DiscountTier
	err := r.db.WithContext(ctx).
		Where("class_code = ?", classCode).
		Order("sequence ASC").
		Find(&tiers).Error
	return tiers, err
}

func (r *discountRepository) ArticlesWithDiscount(ctx context.Context, clientID int) ([]entity.ArticleDiscount, error) {
	var articles []entity.Article
	err := r.db.WithContext(ctx).Order("description ASC").Find(&articles).Error
	if err != nil {
		return nil, err
	}

	// Base discount per article: the lowest-sequence tier of the assigned
	// class.
	type baseDiscount struct {
		ArticleCode     string
		ClassCode       int16
		PercentOnAmount decimal.Decimal
	}
	var bases []baseDiscount
	err = r.db.WithContext(ctx).Raw(`
		SELECT cad.article_code, cad.class_code, dt.percent_on_amount
		FROM client_article_discounts cad
		INNER JOIN discount_tiers dt
			ON dt.class_code = cad.class_code
			AND dt.sequence = (
				SELECT MIN(sequence) FROM discount_tiers
				WHERE class_code = cad.class_code
			)
		WHERE cad.client_id = ? AND cad.inactive = ?`,
		clientID, false).Scan(&bases).Error
	if err != nil {
		return nil, err
	}

	baseByCode := make(map[string]baseDiscount, len(bases))
	for _, b := range bases {
		baseByCode[b.ArticleCode] = b
	}

	out := make([]entity.ArticleDiscount, 0, len(articles))
	for _, a := range articles {
		row := entity.ArticleDiscount{
			Code:        a.Code,
			Description: a.Description,
			Price:       a.Price,
		}
		if b, ok := baseByCode[a.Code]; ok {
			row.ClassCode = b.ClassCode
			row.BasePercent = b.PercentOnAmount
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *discountRepository) ReplaceTiers(ctx context.Context, tiers []entity.DiscountTier) (int, error) {
	return replaceAll(ctx, r.db, tiers)
}

func (r *discountRepository) ReplaceAssignments(ctx context.Context, assignments []entity.ClientArticleDiscount) (int, error) {
	return replaceAll(ctx, r.db, assignments)
}
