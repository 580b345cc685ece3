package syncer

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/softcrates/fieldsync/internal/domain/repository"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/apperror"
)

// UpSyncEngine pushes locally authored pending orders to the backend.
// Deletion of a local order is gated on the server's acknowledgement of its
// csid: an order whose csid never comes back in the ack stays Pending and is
// retried on the next push. After a successful push the acknowledged orders
// are re-imported through down-sync so they reappear as server-authored rows.
type UpSyncEngine struct {
	remote *remote.Client
	orders repository.OrderRepository
	down   *DownSyncEngine

	mu sync.Mutex
}

// NewUpSyncEngine creates a new up-sync engine
func NewUpSyncEngine(remoteClient *remote.Client, orders repository.OrderRepository, down *DownSyncEngine) *UpSyncEngine {
	return &UpSyncEngine{remote: remoteClient, orders: orders, down: down}
}

// PushPending submits every Pending/Local order in one batch. With nothing
// pending it is a no-op. When a push is already running the call reports
// busy instead of waiting.
func (e *UpSyncEngine) PushPending(ctx context.Context) (Result, error) {
	if !e.mu.TryLock() {
		return busyResult("push"), nil
	}
	defer e.mu.Unlock()

	pending, err := e.orders.ListPendingLocal(ctx)
	if err != nil {
		return Result{Entity: "push"}, fmt.Errorf("failed to list pending orders: %w", err)
	}
	if len(pending) == 0 {
		return Result{Entity: "push"}, nil
	}

	acked, err := e.remote.SubmitOrders(ctx, pending)
	if err != nil {
		// The batch may or may not have landed. Nothing is deleted; the
		// idempotency key makes the retry safe server-side.
		log.Printf("[SYNC] push: batch outcome unknown: %v", err)
		return Result{Entity: "push", Skipped: len(pending)}, apperror.ErrAmbiguousPush
	}

	if len(acked) == 0 {
		log.Printf("[SYNC] push: server acknowledged none of %d pending orders", len(pending))
		return Result{Entity: "push", Skipped: len(pending)}, nil
	}

	if err := e.orders.DeleteByCSIDs(ctx, acked); err != nil {
		return Result{Entity: "push"}, fmt.Errorf("failed to clear acknowledged orders: %w", err)
	}

	result := Result{Entity: "push", Processed: len(acked), Skipped: len(pending) - len(acked)}

	// Re-import so the pushed orders reappear tagged as server-authored.
	if _, err := e.down.ImportOrders(ctx); err != nil {
		log.Printf("[SYNC] push: re-import after push failed: %v", err)
		result.Message = "pushed, re-import pending next down-sync"
	}
	return result, nil
}
