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

// InventoryHandler serves the warehouse screen: item CRUD and the stock
// usage event.
type InventoryHandler struct {
	store  *store.Store
	ledger *ledgersvc.Service
	sync   *syncsvc.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(st *store.Store, ledger *ledgersvc.Service, sync *syncsvc.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{store: st, ledger: ledger, sync: sync, logger: logger}
}

// itemView decorates an item with its derived stock status.
type itemView struct {
	models.InventoryItem
	Status models.ItemStatus `json:"status"`
}

// List returns all items with their derived status.
func (h *InventoryHandler) List(c *gin.Context) {
	items := h.store.ListInventory()
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{InventoryItem: item, Status: item.Status()})
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

type itemForm struct {
	ID       string              `json:"id"`
	Name     string              `json:"name" binding:"required"`
	Category models.ItemCategory `json:"category" binding:"required"`
	Quantity string              `json:"quantity" binding:"required"`
	Unit     string              `json:"unit"`
	MinLevel string              `json:"min_level"`
}

var itemCategories = map[models.ItemCategory]bool{
	models.CategorySupply:   true,
	models.CategoryMedicine: true,
	models.CategoryVaccine:  true,
	models.CategoryFuel:     true,
	models.CategoryInput:    true,
	models.CategoryGrain:    true,
	models.CategorySeed:     true,
}

// Upsert creates or edits an item.
func (h *InventoryHandler) Upsert(c *gin.Context) {
	var form itemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid item payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !itemCategories[form.Category] {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "category", Reason: "unknown category"})
		return
	}

	quantity, err := parseFloatField("quantity", form.Quantity)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if quantity < 0 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "quantity", Reason: "must not be negative"})
		return
	}

	minLevel := 0.0
	if form.MinLevel != "" {
		if minLevel, err = parseFloatField("min_level", form.MinLevel); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}

	item := h.store.UpsertItem(models.InventoryItem{
		ID:       form.ID,
		Name:     form.Name,
		Category: form.Category,
		Quantity: quantity,
		Unit:     form.Unit,
		MinLevel: minLevel,
	})
	h.sync.PushItem(item)

	c.JSON(http.StatusOK, gin.H{"item": itemView{InventoryItem: item, Status: item.Status()}})
}

// Delete removes an item.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteItem(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	h.sync.PushItemDelete(id)
	c.Status(http.StatusNoContent)
}

type usageForm struct {
	FarmID   string `json:"farm_id"`
	Quantity string `json:"quantity"`
}

// RecordUsage decrements the item in the path, floored at zero.
func (h *InventoryHandler) RecordUsage(c *gin.Context) {
	var form usageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid usage payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.ledger.RecordUsage(c.Request.Context(), models.UsageRequest{
		ItemID:   c.Param("id"),
		FarmID:   form.FarmID,
		Quantity: form.Quantity,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.sync.PushItem(item)
	c.JSON(http.StatusOK, gin.H{"item": itemView{InventoryItem: item, Status: item.Status()}})
}
