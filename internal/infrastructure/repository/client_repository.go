package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	domainRepo "github.com/softcrates/fieldsync/internal/domain/repository"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Search(ctx context.Context, term string) ([]entity.Client, error) {
	var clients []entity.Client
	query := r.db.WithContext(ctx).Order("name ASC")
	if term != "" {
		query = query.Where("name LIKE ?", "%"+term+"%")
	}
	err := query.Find(&clients).Error
	return clients, err
}

func (r *clientRepository) GetByID(ctx context.Context, id int) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Summary(ctx context.Context, id int) (*entity.ClientSummary, error) {
	client, err := r.GetByID(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}

	var invoices []entity.Invoice
	err = r.db.WithContext(ctx).
		Where("client_id = ?", id).
		Order("issue_date DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	return &entity.ClientSummary{
		ClientID:       client.ID,
		Name:           client.Name,
		CurrentBalance: client.CurrentBalance,
		OverdueBalance: client.OverdueBalance,
		CreditLimit:    client.CreditLimit,
		CreditUsed:     client.CreditUsed,
		Invoices:       invoices,
	}, nil
}

func (r *clientRepository) ReplaceAll(ctx context.Context, clients []entity.Client) (int, error) {
	return replaceAll(ctx, r.db, clients)
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) ListByClient(ctx context.Context, clientID int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("issue_date DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ReplaceAll(ctx context.Context, invoices []entity.Invoice) (int, error) {
	return replaceAll(ctx, r.db, invoices)
}
