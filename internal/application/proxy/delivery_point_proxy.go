package proxy

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/connectivity"
)

// DeliveryPointProxy answers delivery point reads remote-first with
// fallback to the local mirror
type DeliveryPointProxy struct {
	oracle connectivity.Oracle
	remote *remote.Client
	local  repository.DeliveryPointRepository
}

// NewDeliveryPointProxy creates a new delivery point proxy
func NewDeliveryPointProxy(oracle connectivity.Oracle, remoteClient *remote.Client, local repository.DeliveryPointRepository) *DeliveryPointProxy {
	return &DeliveryPointProxy{oracle: oracle, remote: remoteClient, local: local}
}

func (p *DeliveryPointProxy) ListByClient(ctx context.Context, clientID int) ([]entity.DeliveryPoint, error) {
	return Fetch(p.oracle, "list delivery points",
		func() ([]entity.DeliveryPoint, error) { return p.remote.FetchDeliveryPointsByClient(ctx, clientID) },
		func() ([]entity.DeliveryPoint, error) { return p.local.ListByClient(ctx, clientID) },
	)
}
