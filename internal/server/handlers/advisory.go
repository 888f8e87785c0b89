package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	advisorysvc "github.com/mamadbah2/agroboard/internal/service/advisory"
)

// fallbackReply is shown when the advisory provider is unreachable so the
// chat screen always has something to render.
const fallbackReply = "I could not process your request right now. Please try again in a moment."

// AdvisoryHandler serves the specialist chat, market quotes and weather
// forecast screens. Provider failures degrade to neutral responses instead
// of surfacing errors.
type AdvisoryHandler struct {
	advisory *advisorysvc.Service
	logger   *zap.Logger
}

// NewAdvisoryHandler constructs the HTTP handler adapter.
func NewAdvisoryHandler(advisory *advisorysvc.Service, logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{advisory: advisory, logger: logger}
}

type chatForm struct {
	Message string `json:"message" binding:"required"`
}

// Chat sends a message to the agent named in the path and returns the reply.
func (h *AdvisoryHandler) Chat(c *gin.Context) {
	var form chatForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	role := models.AgentRole(c.Param("agent"))
	reply, err := h.advisory.Ask(c.Request.Context(), role, form.Message)
	if err != nil {
		h.logger.Warn("advisory chat degraded", zap.String("agent", string(role)), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"reply": fallbackReply, "degraded": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// History returns the stored conversation for an agent.
func (h *AdvisoryHandler) History(c *gin.Context) {
	role := models.AgentRole(c.Param("agent"))
	c.JSON(http.StatusOK, gin.H{"messages": h.advisory.History(role)})
}

// Quotes returns the market quotation board. On failure the board is empty.
func (h *AdvisoryHandler) Quotes(c *gin.Context) {
	quotes, err := h.advisory.Quotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"quotes": []models.Quote{}, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// Forecast returns the structured weather forecast for the location query
// parameter. On failure the forecast is null.
func (h *AdvisoryHandler) Forecast(c *gin.Context) {
	location := c.DefaultQuery("location", "Campo Grande, MS")
	forecast, err := h.advisory.Forecast(c.Request.Context(), location)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"forecast": nil, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": forecast})
}
