package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	subscriptionsvc "github.com/mamadbah2/agroboard/internal/service/subscription"
)

// SubscriptionHandler exposes the account plan.
type SubscriptionHandler struct {
	subs   *subscriptionsvc.Service
	logger *zap.Logger
}

// NewSubscriptionHandler constructs the HTTP handler adapter.
func NewSubscriptionHandler(subs *subscriptionsvc.Service, logger *zap.Logger) *SubscriptionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionHandler{subs: subs, logger: logger}
}

// Get returns the active subscription.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscription": h.subs.Current()})
}

// Update replaces the subscription.
func (h *SubscriptionHandler) Update(c *gin.Context) {
	var sub models.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.logger.Warn("invalid subscription payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.subs.Update(sub)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": updated})
}
