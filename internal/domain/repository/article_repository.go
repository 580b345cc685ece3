package repository

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// ArticleRepository defines local catalog access. The article mirror is
// refreshed by upsert: rows are inserted when absent and their mutable
// fields updated when present, keyed by article code.
type ArticleRepository interface {
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Article, error)
	GetByCode(ctx context.Context, code string) (*entity.Article, error)
	SearchByName(ctx context.Context, name string) ([]entity.Article, error)
	UpsertAll(ctx context.Context, articles []entity.Article) (int, error)
}
