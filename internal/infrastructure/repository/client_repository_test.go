package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcrates/fieldsync/internal/domain/entity"
)

func TestSearchMatchesPartialNames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.ReplaceAll(ctx, []entity.Client{
		{ID: 1, Name: "Corner Shop"},
		{ID: 2, Name: "Main Street Grocer"},
		{ID: 3, Name: "corner bakery"},
	})
	require.NoError(t, err)

	got, err := repo.Search(ctx, "corner")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSummaryJoinsOutstandingInvoices(t *testing.T) {
	db := setupTestDB(t)
	clients := NewClientRepository(db)
	invoices := NewInvoiceRepository(db)
	ctx := context.Background()

	_, err := clients.ReplaceAll(ctx, []entity.Client{{
		ID: 1, Name: "Corner Shop",
		CurrentBalance: decimal.NewFromInt(150),
		CreditLimit:    decimal.NewFromInt(1000),
	}})
	require.NoError(t, err)

	older := time.Now().AddDate(0, -2, 0)
	newer := time.Now().AddDate(0, -1, 0)
	_, err = invoices.ReplaceAll(ctx, []entity.Invoice{
		{CSID: "INV-1", ClientID: 1, IssueDate: older, Balance: decimal.NewFromInt(100)},
		{CSID: "INV-2", ClientID: 1, IssueDate: newer, Balance: decimal.NewFromInt(50)},
		{CSID: "INV-3", ClientID: 2, IssueDate: newer, Balance: decimal.NewFromInt(70)},
	})
	require.NoError(t, err)

	summary, err := clients.Summary(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "Corner Shop", summary.Name)
	require.Len(t, summary.Invoices, 2)
	assert.Equal(t, "INV-2", summary.Invoices[0].CSID, "newest invoice first")
}

func TestSummaryNilForUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	summary, err := repo.Summary(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, summary)
}
