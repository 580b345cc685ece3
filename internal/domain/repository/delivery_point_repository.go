package repository

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
)

// DeliveryPointRepository defines local access to the delivery point mirror
type DeliveryPointRepository interface {
	List(ctx context.Context) ([]entity.DeliveryPoint, error)
	ListByClient(ctx context.Context, clientID int) ([]entity.DeliveryPoint, error)
	ReplaceAll(ctx context.Context, points []entity.DeliveryPoint) (int, error)
}
