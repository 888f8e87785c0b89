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

// StaffHandler serves the field team screen: collaborator CRUD and payment
// postings.
type StaffHandler struct {
	store  *store.Store
	ledger *ledgersvc.Service
	sync   *syncsvc.Service
	logger *zap.Logger
}

// NewStaffHandler constructs the HTTP handler adapter.
func NewStaffHandler(st *store.Store, ledger *ledgersvc.Service, sync *syncsvc.Service, logger *zap.Logger) *StaffHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffHandler{store: st, ledger: ledger, sync: sync, logger: logger}
}

// List returns all collaborators.
func (h *StaffHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collaborators": h.store.ListCollaborators()})
}

type collaboratorForm struct {
	ID     string                    `json:"id"`
	Name   string                    `json:"name" binding:"required"`
	Role   string                    `json:"role"`
	FarmID string                    `json:"farm_id"`
	Salary string                    `json:"salary"`
	Status models.CollaboratorStatus `json:"status"`
	Avatar string                    `json:"avatar"`
}

// Upsert creates or edits a collaborator. The form selects the assignment
// by farm id; the stored record keeps the farm's name, matching the
// observed data shape.
func (h *StaffHandler) Upsert(c *gin.Context) {
	var form collaboratorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid collaborator payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if form.Status == "" {
		form.Status = models.CollaboratorActive
	}
	switch form.Status {
	case models.CollaboratorActive, models.CollaboratorOnLeave, models.CollaboratorVacation:
	default:
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "status", Reason: "unknown status"})
		return
	}

	salary := 0.0
	var err error
	if form.Salary != "" {
		if salary, err = parseFloatField("salary", form.Salary); err != nil {
			renderError(c, h.logger, err)
			return
		}
	}
	if salary < 0 {
		renderError(c, h.logger, &ledgersvc.ValidationError{Field: "salary", Reason: "must not be negative"})
		return
	}

	farmName := "Unassigned"
	if farm, ok := h.store.GetFarm(form.FarmID); ok {
		farmName = farm.Name
	}

	collab := h.store.UpsertCollaborator(models.Collaborator{
		ID:       form.ID,
		Name:     form.Name,
		Role:     form.Role,
		FarmName: farmName,
		Salary:   salary,
		Status:   form.Status,
		Avatar:   form.Avatar,
	})
	h.sync.PushCollaborator(collab)

	c.JSON(http.StatusOK, gin.H{"collaborator": collab})
}

// Delete removes a collaborator.
func (h *StaffHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteCollaborator(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "collaborator not found"})
		return
	}
	h.sync.PushCollaboratorDelete(id)
	c.Status(http.StatusNoContent)
}

type paymentForm struct {
	Kind   models.PaymentKind `json:"kind"`
	Amount string             `json:"amount"`
}

// RecordPayment posts a salary, day-rate or PPE payment to the
// collaborator's assigned farm.
func (h *StaffHandler) RecordPayment(c *gin.Context) {
	var form paymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid payment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	farm, err := h.ledger.RecordCollaboratorPayment(c.Request.Context(), models.PaymentRequest{
		CollaboratorID: c.Param("id"),
		Kind:           form.Kind,
		Amount:         form.Amount,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.sync.PushFarm(farm)
	c.JSON(http.StatusOK, gin.H{"farm": farm})
}
