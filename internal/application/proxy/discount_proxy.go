package proxy

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/connectivity"
)

// DiscountProxy answers the per-client discounted catalog remote-first with
// fallback to the local mirror. Discount resolution during order creation
// never goes through this proxy; it always reads the local mirror so that a
// created order matches what the device showed.
type DiscountProxy struct {
	oracle connectivity.Oracle
	remote *remote.Client
	local  repository.DiscountRepository
}

// NewDiscountProxy creates a new discount proxy
func NewDiscountProxy(oracle connectivity.Oracle, remoteClient *remote.Client, local repository.DiscountRepository) *DiscountProxy {
	return &DiscountProxy{oracle: oracle, remote: remoteClient, local: local}
}

func (p *DiscountProxy) ArticlesWithDiscount(ctx context.Context, clientID int) ([]entity.ArticleDiscount, error) {
	return Fetch(p.oracle, "client catalog",
		func() ([]entity.ArticleDiscount, error) { return p.remote.FetchArticlesWithDiscount(ctx, clientID) },
		func() ([]entity.ArticleDiscount, error) { return p.local.ArticlesWithDiscount(ctx, clientID) },
	)
}
