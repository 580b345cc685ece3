package syncer

import (
	"context"
	"log"
	"time"

	"github.com/softcrates/fieldsync/pkg/connectivity"
)

// Manager sequences the two engines and reacts to connectivity changes
type Manager struct {
	down    *DownSyncEngine
	up      *UpSyncEngine
	monitor *connectivity.Monitor
}

// NewManager creates a new sync manager
func NewManager(down *DownSyncEngine, up *UpSyncEngine, monitor *connectivity.Monitor) *Manager {
	return &Manager{down: down, up: up, monitor: monitor}
}

// RunFull runs a complete sync cycle: mirrors down, then pending orders up.
// The push re-imports acknowledged orders itself, so after a full cycle the
// local store reflects the server.
func (m *Manager) RunFull(ctx context.Context) []Result {
	results := m.down.RunAll(ctx)

	pushResult, err := m.up.PushPending(ctx)
	if err != nil {
		log.Printf("[SYNC] full cycle: push failed: %v", err)
		pushResult.Message = err.Error()
	}
	return append(results, pushResult)
}

// Watch probes connectivity at the given interval and pushes pending orders
// whenever the device comes back online. Blocks until the context is done.
func (m *Manager) Watch(ctx context.Context, interval time.Duration) {
	for online := range m.monitor.Watch(ctx, interval) {
		if !online {
			log.Printf("[SYNC] connectivity lost, queueing orders locally")
			continue
		}
		log.Printf("[SYNC] connectivity restored, pushing pending orders")
		if _, err := m.up.PushPending(ctx); err != nil {
			log.Printf("[SYNC] reconnect push failed: %v", err)
		}
	}
}
