package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	ledgersvc "github.com/mamadbah2/agroboard/internal/service/ledger"
	"github.com/mamadbah2/agroboard/internal/service/reporting"
	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
	"github.com/mamadbah2/agroboard/internal/store"
)

// FleetHandler serves the fleet screen: machine CRUD, the usage report with
// its inspection checklist, and machine expense postings.
type FleetHandler struct {
	store     *store.Store
	ledger    *ledgersvc.Service
	sync      *syncsvc.Service
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewFleetHandler constructs the HTTP handler adapter. reporting may be nil.
func NewFleetHandler(st *store.Store, ledger *ledgersvc.Service, sync *syncsvc.Service, reportingSvc *reporting.Service, logger *zap.Logger) *FleetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FleetHandler{store: st, ledger: ledger, sync: sync, reporting: reportingSvc, logger: logger}
}

// List returns the fleet.
func (h *FleetHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"machines": h.store.ListMachines()})
}

type machineForm struct {
	ID          string               `json:"id"`
	Name        string               `json:"name" binding:"required"`
	Type        string               `json:"type"`
	Status      models.MachineStatus `json:"status"`
	HoursWorked string               `json:"hours_worked"`
	FuelLevel   string               `json:"fuel_level"`
}

// Upsert creates or edits a machine.
func (h *FleetHandler) Upsert(c *gin.Context) {
	var form machineForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid machine payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if form.Status == "" {
		form.Status = models.MachineOperational
	}
	switch form.Status {
	case models.MachineOperational, models.MachineMaintenance, models.MachineStopped:
	default:
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "status", Reason: "unknown status"})
		return
	}

	hours := 0.0
	var err error
	if form.HoursWorked != "" {
		if hours, err = parseFloatField("hours_worked", form.HoursWorked); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}
	if hours < 0 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "hours_worked", Reason: "must not be negative"})
		return
	}

	fuel := 100.0
	if form.FuelLevel != "" {
		if fuel, err = parseFloatField("fuel_level", form.FuelLevel); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}
	if fuel < 0 || fuel > 100 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "fuel_level", Reason: "must be between 0 and 100"})
		return
	}

	machine := h.store.UpsertMachine(models.Machine{
		ID:          form.ID,
		Name:        form.Name,
		Type:        form.Type,
		Status:      form.Status,
		HoursWorked: hours,
		FuelLevel:   fuel,
	})
	h.sync.PushMachine(machine)

	c.JSON(http.StatusOK, gin.H{"machine": machine})
}

// Delete removes a machine from the fleet.
func (h *FleetHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteMachine(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
		return
	}
	h.sync.PushMachineDelete(id)
	c.Status(http.StatusNoContent)
}

type usageReportForm struct {
	HoursEnd  string                `json:"hours_end"`
	FuelEnd   string                `json:"fuel_end"`
	Checklist models.UsageChecklist `json:"checklist"`
}

// RecordUsageReport closes a usage report: updates hours and fuel and
// journals the inspection checklist.
func (h *FleetHandler) RecordUsageReport(c *gin.Context) {
	var form usageReportForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid usage report payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	machine, ok := h.store.GetMachine(c.Param("id"))
	if !ok {
		renderError(c, h.logger, &ledgersvc.UnresolvedReferenceError{Kind: "machine", Ref: c.Param("id")})
		return
	}

	hours, err := parseFloatField("hours_end", form.HoursEnd)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if hours < machine.HoursWorked {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "hours_end", Reason: "must not be below current hours"})
		return
	}

	fuel, err := parseFloatField("fuel_end", form.FuelEnd)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	if fuel < 0 || fuel > 100 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "fuel_end", Reason: "must be between 0 and 100"})
		return
	}

	machine, _ = h.store.SetMachineUsage(machine.ID, hours, fuel)
	h.sync.PushMachine(machine)

	if h.reporting != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.reporting.AppendUsageReport(ctx, machine, form.Checklist); err != nil {
			h.logger.Warn("usage report journal failed", zap.Error(err), zap.String("machine_id", machine.ID))
		}
	}

	c.JSON(http.StatusOK, gin.H{"machine": machine})
}

type machineExpenseForm struct {
	FarmID   string `json:"farm_id"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// RecordExpense posts a machine expense to the selected farm.
func (h *FleetHandler) RecordExpense(c *gin.Context) {
	var form machineExpenseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid machine expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	farm, err := h.ledger.RecordMachineExpense(c.Request.Context(), models.MachineExpenseRequest{
		MachineID: c.Param("id"),
		FarmID:    form.FarmID,
		Category:  form.Category,
		Amount:    form.Amount,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.sync.PushFarm(farm)
	c.JSON(http.StatusOK, gin.H{"farm": farm})
}
