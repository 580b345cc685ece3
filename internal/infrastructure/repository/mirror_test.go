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

func TestReplaceAllSwapsTheMirror(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	n, err := repo.ReplaceAll(ctx, []entity.Client{
		{ID: 1, Name: "Old One"},
		{ID: 2, Name: "Old Two"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.ReplaceAll(ctx, []entity.Client{
		{ID: 3, Name: "New Three"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	gone, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "New Three", kept.Name)
}

func TestReplaceAllKeepsMirrorOnEmptyFetch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.ReplaceAll(ctx, []entity.Client{{ID: 1, Name: "Survivor"}})
	require.NoError(t, err)

	n, err := repo.ReplaceAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	still, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, still, "an empty fetch must not wipe offline data")
}

func TestReplaceAllRollsBackOnInsertFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.ReplaceAll(ctx, []entity.Client{
		{ID: 1, Name: "Old One"},
		{ID: 2, Name: "Old Two"},
	})
	require.NoError(t, err)

	// Duplicate primary key inside the fetched set makes the insert fail
	// after the delete already ran inside the transaction.
	_, err = repo.ReplaceAll(ctx, []entity.Client{
		{ID: 3, Name: "New Three"},
		{ID: 3, Name: "New Three Again"},
	})
	require.Error(t, err)

	// The rollback restores the pre-sync mirror, never a half-empty table.
	var clients []entity.Client
	require.NoError(t, db.Order("id ASC").Find(&clients).Error)
	require.Len(t, clients, 2)
	assert.Equal(t, "Old One", clients[0].Name)
	assert.Equal(t, "Old Two", clients[1].Name)
}

func TestUpsertAllMergesCatalog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	_, err := repo.UpsertAll(ctx, []entity.Article{
		{Code: "A001", Description: "Widget", Price: decimal.NewFromInt(10), UpdatedAt: time.Now()},
		{Code: "A002", Description: "Gadget", Price: decimal.NewFromInt(20), UpdatedAt: time.Now()},
	})
	require.NoError(t, err)

	n, err := repo.UpsertAll(ctx, []entity.Article{
		{Code: "A001", Description: "Widget v2", Price: decimal.NewFromInt(12), UpdatedAt: time.Now()},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	updated, err := repo.GetByCode(ctx, "A001")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Widget v2", updated.Description)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(12)))

	// A partial fetch never shrinks the catalog.
	untouched, err := repo.GetByCode(ctx, "A002")
	require.NoError(t, err)
	require.NotNil(t, untouched)
}
