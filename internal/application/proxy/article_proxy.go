package proxy

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/connectivity"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// ArticleProxy answers catalog reads remote-first with fallback to the
// local mirror
type ArticleProxy struct {
	oracle connectivity.Oracle
	remote *remote.Client
	local  repository.ArticleRepository
}

// NewArticleProxy creates a new article proxy
func NewArticleProxy(oracle connectivity.Oracle, remoteClient *remote.Client, local repository.ArticleRepository) *ArticleProxy {
	return &ArticleProxy{oracle: oracle, remote: remoteClient, local: local}
}

func (p *ArticleProxy) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Article, error) {
	return Fetch(p.oracle, "list articles",
		func() ([]entity.Article, error) { return p.remote.FetchArticles(ctx, params) },
		func() ([]entity.Article, error) { return p.local.List(ctx, params) },
	)
}

func (p *ArticleProxy) GetByCode(ctx context.Context, code string) (*entity.Article, error) {
	return Fetch(p.oracle, "get article",
		func() (*entity.Article, error) { return p.remote.FetchArticleByCode(ctx, code) },
		func() (*entity.Article, error) { return p.local.GetByCode(ctx, code) },
	)
}

func (p *ArticleProxy) SearchByName(ctx context.Context, name string) ([]entity.Article, error) {
	return Fetch(p.oracle, "search articles",
		func() ([]entity.Article, error) { return p.remote.SearchArticles(ctx, name) },
		func() ([]entity.Article, error) { return p.local.SearchByName(ctx, name) },
	)
}
