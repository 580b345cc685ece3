package proxy

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/connectivity"
)

// ClientProxy answers client account reads remote-first with fallback to
// the local mirror
type ClientProxy struct {
	oracle connectivity.Oracle
	remote *remote.Client
	local  repository.ClientRepository
}

// NewClientProxy creates a new client proxy
func NewClientProxy(oracle connectivity.Oracle, remoteClient *remote.Client, local repository.ClientRepository) *ClientProxy {
	return &ClientProxy{oracle: oracle, remote: remoteClient, local: local}
}

func (p *ClientProxy) Search(ctx context.Context, term string) ([]entity.Client, error) {
	return Fetch(p.oracle, "search clients",
		func() ([]entity.Client, error) { return p.remote.SearchClients(ctx, term) },
		func() ([]entity.Client, error) { return p.local.Search(ctx, term) },
	)
}

func (p *ClientProxy) GetByID(ctx context.Context, id int) (*entity.Client, error) {
	return Fetch(p.oracle, "get client",
		func() (*entity.Client, error) {
			summary, err := p.remote.FetchClientSummary(ctx, id)
			if err != nil {
				return nil, err
			}
			return &entity.Client{
				ID:             summary.ClientID,
				Name:           summary.Name,
				CurrentBalance: summary.CurrentBalance,
				OverdueBalance: summary.OverdueBalance,
				CreditLimit:    summary.CreditLimit,
				CreditUsed:     summary.CreditUsed,
			}, nil
		},
		func() (*entity.Client, error) { return p.local.GetByID(ctx, id) },
	)
}

func (p *ClientProxy) Summary(ctx context.Context, id int) (*entity.ClientSummary, error) {
	return Fetch(p.oracle, "client summary",
		func() (*entity.ClientSummary, error) { return p.remote.FetchClientSummary(ctx, id) },
		func() (*entity.ClientSummary, error) { return p.local.Summary(ctx, id) },
	)
}
