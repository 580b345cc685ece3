package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/softcrates/fieldsync/internal/application/syncer"
	"github.com/softcrates/fieldsync/internal/presentation/http/dto/response"
	"github.com/softcrates/fieldsync/pkg/apperror"
	"github.com/softcrates/fieldsync/pkg/connectivity"
)

// SyncHandler handles manual sync triggers and status
type SyncHandler struct {
	manager *syncer.Manager
	down    *syncer.DownSyncEngine
	up      *syncer.UpSyncEngine
	oracle  connectivity.Oracle
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(manager *syncer.Manager, down *syncer.DownSyncEngine, up *syncer.UpSyncEngine, oracle connectivity.Oracle) *SyncHandler {
	return &SyncHandler{manager: manager, down: down, up: up, oracle: oracle}
}

// Status handles GET /sync/status
func (h *SyncHandler) Status(c *gin.Context) {
	response.OK(c, "Sync status", gin.H{
		"online": h.oracle.IsConnected(),
	})
}

// RunFull handles POST /sync/full
func (h *SyncHandler) RunFull(c *gin.Context) {
	results := h.manager.RunFull(c.Request.Context())
	response.OK(c, "Sync cycle finished", results)
}

// RunDown handles POST /sync/down
func (h *SyncHandler) RunDown(c *gin.Context) {
	results := h.down.RunAll(c.Request.Context())
	response.OK(c, "Down-sync finished", results)
}

// Push handles POST /sync/push
func (h *SyncHandler) Push(c *gin.Context) {
	result, err := h.up.PushPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Busy {
		response.Error(c, apperror.ErrSyncInProgress)
		return
	}
	response.OK(c, "Push finished", result)
}
