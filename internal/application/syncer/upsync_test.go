package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softcrates/fieldsync/internal/domain/entity"
	"github.com/softcrates/fieldsync/internal/domain/enum"
	"github.com/softcrates/fieldsync/internal/infrastructure/remote"
	"github.com/softcrates/fieldsync/pkg/apperror"
	"github.com/softcrates/fieldsync/pkg/utils"
)

func seedPendingOrder(t *testing.T, env *testEnv, csid string, clientID int) {
	t.Helper()
	order := serverOrder(csid, clientID)
	order.Status = enum.OrderStatusPending
	order.Origin = enum.OrderOriginLocal
	require.NoError(t, env.db.Create(&order).Error)
}

// ackServer acknowledges exactly the given csids on the batch endpoint and
// serves the same orders back on the down-sync endpoint.
func (env *testEnv) ackCSIDs(csids ...string) {
	env.respond["/orders/batch"] = remote.SubmitResult{AcceptedCSIDs: csids}

	var orders []entity.Order
	for _, csid := range csids {
		orders = append(orders, serverOrder(csid, 500))
	}
	env.respond["/orders"] = orders
}

func TestPushPendingDeletesOnlyAcknowledged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedPendingOrder(t, env, "117100", 100)
	seedPendingOrder(t, env, "118200", 200)
	env.ackCSIDs("117100")

	result, err := env.up.PushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)

	// The unacknowledged order stays pending for the next push.
	var unacked entity.Order
	require.NoError(t, env.db.Where("csid = ?", "118200").First(&unacked).Error)
	assert.Equal(t, enum.OrderStatusPending, unacked.Status)

	// The acknowledged order came back through re-import as server-authored.
	var acked entity.Order
	require.NoError(t, env.db.Where("csid = ?", "117100").First(&acked).Error)
	assert.Equal(t, enum.OrderStatusSynced, acked.Status)
	assert.Equal(t, enum.OrderOriginServer, acked.Origin)
}

func TestPushPendingSecondRunProcessesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedPendingOrder(t, env, "117100", 100)
	env.ackCSIDs("117100")

	first, err := env.up.PushPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Processed)

	second, err := env.up.PushPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Processed)
}

func TestPushPendingNoopWithNothingPending(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.up.PushPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	assert.Zero(t, result.Skipped)
}

func TestPushPendingKeepsOrdersOnEmptyAck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedPendingOrder(t, env, "117100", 100)
	env.respond["/orders/batch"] = remote.SubmitResult{}

	result, err := env.up.PushPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	assert.Equal(t, 1, result.Skipped)

	var count int64
	require.NoError(t, env.db.Model(&entity.Order{}).Where("status = ?", enum.OrderStatusPending).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPushPendingKeepsOrdersOnRemoteFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedPendingOrder(t, env, "117100", 100)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()
	env.up.remote = remote.NewClient(failing.URL, time.Second, utils.NewTokenStore())

	_, err := env.up.PushPending(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrAmbiguousPush)

	var count int64
	require.NoError(t, env.db.Model(&entity.Order{}).Where("status = ?", enum.OrderStatusPending).Count(&count).Error)
	assert.Equal(t, int64(1), count, "nothing is deleted until the server acknowledges")
}

func TestPushPendingReportsBusyWhenLocked(t *testing.T) {
	env := newTestEnv(t)

	env.up.mu.Lock()
	defer env.up.mu.Unlock()

	result, err := env.up.PushPending(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Busy)
}

func TestPushPendingSendsIdempotencyKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedPendingOrder(t, env, "117100", 100)

	var key string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/orders/batch" {
			key = r.Header.Get("Idempotency-Key")
			json.NewEncoder(w).Encode(remote.SubmitResult{AcceptedCSIDs: []string{"117100"}})
			return
		}
		json.NewEncoder(w).Encode([]any{})
	}))
	defer server.Close()
	env.up.remote = remote.NewClient(server.URL, time.Second, utils.NewTokenStore())

	_, err := env.up.PushPending(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, key)
}
