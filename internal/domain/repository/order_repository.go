package repository

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// OrderRepository defines local access to order headers and lines, covering
// both the on-device staging area (Pending/Local rows awaiting push) and the
// mirror of server-authored orders.
type OrderRepository interface {
	// Create persists a new locally-authored order in one transaction:
	// the next sequential number for the (docType, branch) scope is read
	// inside the same transaction as the inserts, the csid is derived from
	// it, and header plus lines are written atomically.
	Create(ctx context.Context, order *entity.Order) error
	GetByCSID(ctx context.Context, csid string) (*entity.Order, error)
	History(ctx context.Context, clientID int, params *pagination.PaginationParams) ([]entity.Order, int64, error)
	// ListPendingLocal returns every header eligible for up-sync
	// (status Pending, origin Local) with its lines ordered by sequence.
	ListPendingLocal(ctx context.Context) ([]entity.Order, error)
	// InsertIgnoreBatch imports server-authored orders, skipping any csid
	// already present. Headers are written before their lines. Returns the
	// number of headers actually inserted.
	InsertIgnoreBatch(ctx context.Context, orders []entity.Order) (int, error)
	// DeleteByCSIDs removes the given orders in one transaction, lines
	// before headers.
	DeleteByCSIDs(ctx context.Context, csids []string) error
}
