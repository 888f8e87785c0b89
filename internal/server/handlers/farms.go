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

// FarmHandler serves the farms screen: registration CRUD plus the sale and
// expense ledger events.
type FarmHandler struct {
	store  *store.Store
	ledger *ledgersvc.Service
	sync   *syncsvc.Service
	logger *zap.Logger
}

// NewFarmHandler constructs the HTTP handler adapter.
func NewFarmHandler(st *store.Store, ledger *ledgersvc.Service, sync *syncsvc.Service, logger *zap.Logger) *FarmHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmHandler{store: st, ledger: ledger, sync: sync, logger: logger}
}

// List returns all farms.
func (h *FarmHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"farms": h.store.ListFarms()})
}

// farmForm is the registration form payload. It carries identity and
// descriptive fields only; revenue, expenses and head count are never
// editable here and survive an edit unchanged.
type farmForm struct {
	ID              string          `json:"id"`
	Name            string          `json:"name" binding:"required"`
	Type            models.FarmType `json:"type"`
	Location        string          `json:"location"`
	ProductiveArea  string          `json:"productive_area" binding:"required"`
	TotalArea       string          `json:"total_area"`
	PaddockCount    string          `json:"paddock_count"`
	MainCrops       string          `json:"main_crops"`
	LivestockActive bool            `json:"livestock_active"`
}

// Upsert registers a new farm or edits an existing one.
func (h *FarmHandler) Upsert(c *gin.Context) {
	var form farmForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid farm payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if form.Type == "" {
		form.Type = models.FarmOwned
	}
	if form.Type != models.FarmOwned && form.Type != models.FarmLeased {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "type", Reason: "must be owned or leased"})
		return
	}

	productive, err := parseFloatField("productive_area", form.ProductiveArea)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if productive <= 0 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "productive_area", Reason: "must be greater than zero"})
		return
	}

	// Total area defaults to productive area plus a 20% reserve when the
	// form leaves it out.
	total := productive * 1.2
	if form.TotalArea != "" {
		if total, err = parseFloatField("total_area", form.TotalArea); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}
	if productive > total {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "productive_area", Reason: "must not exceed total area"})
		return
	}

	paddocks, err := parseIntField("paddock_count", form.PaddockCount, 0)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if paddocks < 0 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "paddock_count", Reason: "must not be negative"})
		return
	}

	farm := h.store.UpsertFarm(models.Farm{
		ID:              form.ID,
		Name:            form.Name,
		Type:            form.Type,
		Location:        form.Location,
		ProductiveArea:  productive,
		TotalArea:       total,
		PaddockCount:    paddocks,
		MainCrops:       splitCrops(form.MainCrops),
		LivestockActive: form.LivestockActive,
	})
	h.sync.PushFarm(farm)

	c.JSON(http.StatusOK, gin.H{"farm": farm})
}

// Delete removes a farm. Dependent records are left in place.
func (h *FarmHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteFarm(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "farm not found"})
		return
	}
	h.sync.PushFarmDelete(id)
	c.Status(http.StatusNoContent)
}

type saleForm struct {
	Product         string `json:"product"`
	InventoryItemID string `json:"inventory_item_id"`
	UnitPrice       string `json:"unit_price"`
	Quantity        string `json:"quantity"`
}

// RecordSale posts a sale against the farm in the path.
func (h *FarmHandler) RecordSale(c *gin.Context) {
	var form saleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.ledger.RecordSale(c.Request.Context(), models.SaleRequest{
		FarmID:          c.Param("id"),
		Product:         form.Product,
		InventoryItemID: form.InventoryItemID,
		UnitPrice:       form.UnitPrice,
		Quantity:        form.Quantity,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.sync.PushFarm(result.Farm)
	if result.Item != nil {
		h.sync.PushItem(*result.Item)
	}
	c.JSON(http.StatusOK, result)
}

type expenseForm struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// RecordExpense posts an expense against the farm in the path.
func (h *FarmHandler) RecordExpense(c *gin.Context) {
	var form expenseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	farm, err := h.ledger.RecordExpense(c.Request.Context(), models.ExpenseRequest{
		FarmID:   c.Param("id"),
		Category: form.Category,
		Amount:   form.Amount,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.sync.PushFarm(farm)
	c.JSON(http.StatusOK, gin.H{"farm": farm})
}
