package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	domainRepo "github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) domainRepo.ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Article, error) {
	var articles []entity.Article
	params.Validate()
	err := r.db.WithContext(ctx).
		Order("description ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByCode(ctx context.Context, code string) (*entity.Article, error) {
	var article entity.Article
	err := r.db.WithContext(ctx).First(&article, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) SearchByName(ctx context.Context, name string) ([]entity.Article, error) {
	var articles []entity.Article
	err := r.db.WithContext(ctx).
		Where("description LIKE ?", "%"+name+"%").
		Order("description ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) UpsertAll(ctx context.Context, articles []entity.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	processed := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range articles {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{"description", "price", "updated_at"}),
			}).Create(&articles[i]).Error
			if err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return processed, nil
}
