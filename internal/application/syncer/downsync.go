package syncer

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/softcrates/fieldsync/internal/domain/enum"
	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
)

// DownSyncEngine refreshes the local mirrors from the backend. Each entity
// is guarded by its own non-reentrant lock: a refresh that finds its entity
// already being synced reports busy instead of queueing, so overlapping
// triggers (startup, reconnect, manual) never stack.
//
// Mirror refreshes are all-or-nothing per entity. An empty fetch is treated
// as suspect and leaves the existing mirror untouched rather than wiping
// usable offline data.
type DownSyncEngine struct {
	remote         *remote.Client
	articles       repository.ArticleRepository
	clients        repository.ClientRepository
	invoices       repository.InvoiceRepository
	deliveryPoints repository.DeliveryPointRepository
	discounts      repository.DiscountRepository
	orders         repository.OrderRepository
	users          repository.UserRepository

	articleMu  sync.Mutex
	clientMu   sync.Mutex
	deliveryMu sync.Mutex
	discountMu sync.Mutex
	orderMu    sync.Mutex
	userMu     sync.Mutex
}

// NewDownSyncEngine creates a new down-sync engine
func NewDownSyncEngine(
	remoteClient *remote.Client,
	articles repository.ArticleRepository,
	clients repository.ClientRepository,
	invoices repository.InvoiceRepository,
	deliveryPoints repository.DeliveryPointRepository,
	discounts repository.DiscountRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
) *DownSyncEngine {
	return &DownSyncEngine{
		remote:         remoteClient,
		articles:       articles,
		clients:        clients,
		invoices:       invoices,
		deliveryPoints: deliveryPoints,
		discounts:      discounts,
		orders:         orders,
		users:          users,
	}
}

// RefreshArticles upserts the article catalog. Articles are merged rather
// than replaced so a partial fetch can never shrink the catalog.
func (e *DownSyncEngine) RefreshArticles(ctx context.Context) (Result, error) {
	if !e.articleMu.TryLock() {
		return busyResult("articles"), nil
	}
	defer e.articleMu.Unlock()

	articles, err := e.remote.FetchAllArticles(ctx)
	if err != nil {
		return Result{Entity: "articles"}, err
	}
	n, err := e.articles.UpsertAll(ctx, articles)
	if err != nil {
		return Result{Entity: "articles"}, fmt.Errorf("failed to upsert articles: %w", err)
	}
	return Result{Entity: "articles", Processed: n}, nil
}

// RefreshClients replaces the client mirror together with its outstanding
// invoices.
func (e *DownSyncEngine) RefreshClients(ctx context.Context) (Result, error) {
	if !e.clientMu.TryLock() {
		return busyResult("clients"), nil
	}
	defer e.clientMu.Unlock()

	clients, err := e.remote.FetchClients(ctx)
	if err != nil {
		return Result{Entity: "clients"}, err
	}
	n, err := e.clients.ReplaceAll(ctx, clients)
	if err != nil {
		return Result{Entity: "clients"}, fmt.Errorf("failed to replace clients: %w", err)
	}

	invoices, err := e.remote.FetchInvoices(ctx)
	if err != nil {
		return Result{Entity: "clients", Processed: n}, err
	}
	m, err := e.invoices.ReplaceAll(ctx, invoices)
	if err != nil {
		return Result{Entity: "clients", Processed: n}, fmt.Errorf("failed to replace invoices: %w", err)
	}
	return Result{Entity: "clients", Processed: n + m}, nil
}

// RefreshDeliveryPoints replaces the delivery point mirror.
func (e *DownSyncEngine) RefreshDeliveryPoints(ctx context.Context) (Result, error) {
	if !e.deliveryMu.TryLock() {
		return busyResult("delivery_points"), nil
	}
	defer e.deliveryMu.Unlock()

	points, err := e.remote.FetchDeliveryPoints(ctx)
	if err != nil {
		return Result{Entity: "delivery_points"}, err
	}
	n, err := e.deliveryPoints.ReplaceAll(ctx, points)
	if err != nil {
		return Result{Entity: "delivery_points"}, fmt.Errorf("failed to replace delivery points: %w", err)
	}
	return Result{Entity: "delivery_points", Processed: n}, nil
}

// RefreshDiscounts replaces the discount tier schedules and the per-client
// assignments.
func (e *DownSyncEngine) RefreshDiscounts(ctx context.Context) (Result, error) {
	if !e.discountMu.TryLock() {
		return busyResult("discounts"), nil
	}
	defer e.discountMu.Unlock()

	tiers, err := e.remote.FetchDiscountTiers(ctx)
	if err != nil {
		return Result{Entity: "discounts"}, err
	}
	n, err := e.discounts.ReplaceTiers(ctx, tiers)
	if err != nil {
		return Result{Entity: "discounts"}, fmt.Errorf("failed to replace discount tiers: %w", err)
	}

	assignments, err := e.remote.FetchDiscountAssignments(ctx)
	if err != nil {
		return Result{Entity: "discounts", Processed: n}, err
	}
	m, err := e.discounts.ReplaceAssignments(ctx, assignments)
	if err != nil {
		return Result{Entity: "discounts", Processed: n}, fmt.Errorf("failed to replace discount assignments: %w", err)
	}
	return Result{Entity: "discounts", Processed: n + m}, nil
}

// RefreshUsers replaces the user mirror backing offline login.
func (e *DownSyncEngine) RefreshUsers(ctx context.Context) (Result, error) {
	if !e.userMu.TryLock() {
		return busyResult("users"), nil
	}
	defer e.userMu.Unlock()

	users, err := e.remote.FetchUsers(ctx)
	if err != nil {
		return Result{Entity: "users"}, err
	}
	n, err := e.users.ReplaceAll(ctx, users)
	if err != nil {
		return Result{Entity: "users"}, fmt.Errorf("failed to replace users: %w", err)
	}
	return Result{Entity: "users", Processed: n}, nil
}

// ImportOrders pulls server-authored orders into the local store. Orders
// are tagged Synced/Server on the way in and inserted with insert-ignore:
// a csid already present locally, pending or not, is never overwritten.
func (e *DownSyncEngine) ImportOrders(ctx context.Context) (Result, error) {
	if !e.orderMu.TryLock() {
		return busyResult("orders"), nil
	}
	defer e.orderMu.Unlock()

	orders, err := e.remote.FetchOrders(ctx)
	if err != nil {
		return Result{Entity: "orders"}, err
	}
	for i := range orders {
		orders[i].Status = enum.OrderStatusSynced
		orders[i].Origin = enum.OrderOriginServer
	}
	inserted, err := e.orders.InsertIgnoreBatch(ctx, orders)
	if err != nil {
		return Result{Entity: "orders"}, fmt.Errorf("failed to import orders: %w", err)
	}
	return Result{Entity: "orders", Processed: inserted, Skipped: len(orders) - inserted}, nil
}

// RunAll refreshes every mirror and imports server orders. A failure on one
// entity is logged and does not stop the rest.
func (e *DownSyncEngine) RunAll(ctx context.Context) []Result {
	steps := []func(context.Context) (Result, error){
		e.RefreshArticles,
		e.RefreshClients,
		e.RefreshDeliveryPoints,
		e.RefreshDiscounts,
		e.RefreshUsers,
		e.ImportOrders,
	}

	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		result, err := step(ctx)
		if err != nil {
			log.Printf("[SYNC] down-sync %s failed: %v", result.Entity, err)
			result.Message = err.Error()
		}
		results = append(results, result)
	}
	return results
}
