package proxy

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/connectivity"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// OrderProxy answers order reads remote-first with fallback to the local
// store. Locally authored pending orders only exist in the local store, so
// history served remotely can trail what the device itself just created
// until the next push.
type OrderProxy struct {
	oracle connectivity.Oracle
	remote *remote.Client
	local  repository.OrderRepository
}

// NewOrderProxy creates a new order proxy
func NewOrderProxy(oracle connectivity.Oracle, remoteClient *remote.Client, local repository.OrderRepository) *OrderProxy {
	return &OrderProxy{oracle: oracle, remote: remoteClient, local: local}
}

func (p *OrderProxy) History(ctx context.Context, clientID int, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	return Fetch(p.oracle, "order history",
		func() (*pagination.PaginatedResult[entity.Order], error) {
			return p.remote.FetchOrderHistory(ctx, clientID, params)
		},
		func() (*pagination.PaginatedResult[entity.Order], error) {
			orders, total, err := p.local.History(ctx, clientID, params)
			if err != nil {
				return nil, err
			}
			return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Page, params.PerPage, total)), nil
		},
	)
}

func (p *OrderProxy) GetByCSID(ctx context.Context, csid string) (*entity.Order, error) {
	return Fetch(p.oracle, "get order",
		func() (*entity.Order, error) { return p.remote.FetchOrderByCSID(ctx, csid) },
		func() (*entity.Order, error) { return p.local.GetByCSID(ctx, csid) },
	)
}
