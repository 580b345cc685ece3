package repository

import (
	"context"

	"github.com/softcrates/fieldsync/internal/domain/entity"
)

// ClientRepository defines local access to the mirrored client accounts
type ClientRepository interface {
	Search(ctx context.Context, term string) ([]entity.Client, error)
	GetByID(ctx context.Context, id int) (*entity.Client, error)
	Summary(ctx context.Context, id int) (*entity.ClientSummary, error)
	ReplaceAll(ctx context.Context, clients []entity.Client) (int, error)
}

// InvoiceRepository defines local access to the mirrored outstanding
// invoices used by client summaries
type InvoiceRepository interface {
	ListByClient(ctx context.Context, clientID int) ([]entity.Invoice, error)
	ReplaceAll(ctx context.Context, invoices []entity.Invoice) (int, error)
}
