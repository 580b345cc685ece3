package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/enum"
	domainRepo "github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		err := tx.Model(&entity.Order{}).
			Where("doc_type = ? AND branch = ?", order.DocType, order.Branch).
			Select("COALESCE(MAX(number), 0)").
			Scan(&maxNumber).Error
		if err != nil {
			return fmt.Errorf("failed to read max order number: %w", err)
		}

		order.AssignNumber(maxNumber + 1)

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order %s: %w", order.CSID, err)
		}
		return nil
	})
}

func (r *orderRepository) GetByCSID(ctx context.Context, csid string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Where("csid = ?", csid).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) History(ctx context.Context, clientID int, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.Order{}).Where("client_id = ?", clientID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := query.
		Order("order_date DESC, number DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) ListPendingLocal(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Where("status = ? AND origin = ?", enum.OrderStatusPending, enum.OrderOriginLocal).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) InsertIgnoreBatch(ctx context.Context, orders []entity.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			if err := ctx.Err(); err != nil {
				return err
			}
			header := orders[i]
			lines := header.Lines
			header.Lines = nil

			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&header)
			if res.Error != nil {
				return fmt.Errorf("failed to import order %s: %w", header.CSID, res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}
			inserted++

			if len(lines) > 0 {
				if err := tx.Create(&lines).Error; err != nil {
					return fmt.Errorf("failed to import lines for order %s: %w", header.CSID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *orderRepository) DeleteByCSIDs(ctx context.Context, csids []string) error {
	if len(csids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("csid IN ?", csids).Delete(&entity.OrderLine{}).Error; err != nil {
			return fmt.Errorf("failed to delete order lines: %w", err)
		}
		if err := tx.Where("csid IN ?", csids).Delete(&entity.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete order headers: %w", err)
		}
		return nil
	})
}
