package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	ledgersvc "github.com/mamadbah2/agroboard/internal/service/ledger"
	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
	"github.com/mamadbah2/agroboard/internal/store"
)

// HerdHandler serves the livestock screen. Lots are read-mostly: no ledger
// event touches them.
type HerdHandler struct {
	store  *store.Store
	sync   *syncsvc.Service
	logger *zap.Logger
}

// NewHerdHandler constructs the HTTP handler adapter.
func NewHerdHandler(st *store.Store, sync *syncsvc.Service, logger *zap.Logger) *HerdHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HerdHandler{store: st, sync: sync, logger: logger}
}

// List returns all herd lots.
func (h *HerdHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"herd_lots": h.store.ListHerdLots()})
}

type herdLotForm struct {
	ID                string              `json:"id"`
	Name              string              `json:"name" binding:"required"`
	Category          models.HerdCategory `json:"category" binding:"required"`
	Breed             string              `json:"breed"`
	HeadCount         string              `json:"head_count"`
	AverageWeight     string              `json:"average_weight"`
	ExpectedDailyGain string              `json:"expected_daily_gain"`
	FarmID            string              `json:"farm_id"`
	LastWeighing      string              `json:"last_weighing"`
}

var herdCategories = map[models.HerdCategory]bool{
	models.HerdBreedingRearing: true,
	models.HerdGrowing:         true,
	models.HerdFattening:       true,
	models.HerdBulls:           true,
	models.HerdDams:            true,
}

// Upsert creates or edits a herd lot.
func (h *HerdHandler) Upsert(c *gin.Context) {
	var form herdLotForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid herd lot payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !herdCategories[form.Category] {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "category", Reason: "unknown category"})
		return
	}

	headCount, err := parseIntField("head_count", form.HeadCount, 0)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if headCount < 0 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "head_count", Reason: "must not be negative"})
		return
	}

	weight := 0.0
	if form.AverageWeight != "" {
		if weight, err = parseFloatField("average_weight", form.AverageWeight); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}

	gain := 0.0
	if form.ExpectedDailyGain != "" {
		if gain, err = parseFloatField("expected_daily_gain", form.ExpectedDailyGain); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}

	lot := h.store.UpsertHerdLot(models.HerdLot{
		ID:                form.ID,
		Name:              form.Name,
		Category:          form.Category,
		Breed:             form.Breed,
		HeadCount:         headCount,
		AverageWeight:     weight,
		ExpectedDailyGain: gain,
		FarmID:            form.FarmID,
		LastWeighing:      form.LastWeighing,
	})
	h.sync.PushHerdLot(lot)

	c.JSON(http.StatusOK, gin.H{"herd_lot": lot})
}

// Delete removes a herd lot.
func (h *HerdHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteHerdLot(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "herd lot not found"})
		return
	}
	h.sync.PushHerdLotDelete(id)
	c.Status(http.StatusNoContent)
}
