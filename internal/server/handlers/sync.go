package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
)

// SyncHandler triggers a manual pull from the remote store.
type SyncHandler struct {
	sync   *syncsvc.Service
	logger *zap.Logger
}

// NewSyncHandler constructs the HTTP handler adapter.
func NewSyncHandler(sync *syncsvc.Service, logger *zap.Logger) *SyncHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncHandler{sync: sync, logger: logger}
}

// Pull refreshes local collections from the remote store.
func (h *SyncHandler) Pull(c *gin.Context) {
	if !h.sync.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "remote store not configured"})
		return
	}

	if err := h.sync.Pull(c.Request.Context()); err != nil {
		h.logger.Warn("manual pull finished with errors", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "pull finished with errors"})
		return
	}

	c.Status(http.StatusNoContent)
}
