package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	domainRepo "github.com/softcrates/fieldsync/internal/domain/repository"
)

type deliveryPointRepository struct {
	db *gorm.DB
}

// NewDeliveryPointRepository creates a new delivery point repository
func NewDeliveryPointRepository(db *gorm.DB) domainRepo.DeliveryPointRepository {
	return &deliveryPointRepository{db: db}
}

func (r *deliveryPointRepository) List(ctx context.Context) ([]entity.DeliveryPoint, error) {
	var points []entity.DeliveryPoint
	err := r.db.WithContext(ctx).
		Order("client_id ASC, sequence ASC").
		Find(&points).Error
	return points, err
}

func (r *deliveryPointRepository) ListByClient(ctx context.Context, clientID int) ([]entity.DeliveryPoint, error) {
	var points []entity.DeliveryPoint
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("sequence ASC").
		Find(&points).Error
	return points, err
}

func (r *deliveryPointRepository) ReplaceAll(ctx context.Context, points []entity.DeliveryPoint) (int, error) {
	return replaceAll(ctx, r.db, points)
}
