package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// fiscalDocument is one downloadable template on the documents screen.
type fiscalDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

var fiscalDocuments = []fiscalDocument{
	{ID: "d1", Title: "Rural Producer Invoice", Description: "Template for issuing a rural producer invoice on animal or grain sales.", Category: "fiscal"},
	{ID: "d2", Title: "Animal Transport Guide", Description: "Movement permit template required for transporting livestock between farms.", Category: "sanitary"},
	{ID: "d3", Title: "Pasture Lease Agreement", Description: "Standard lease contract for grazing land with per-head pricing clauses.", Category: "legal"},
	{ID: "d4", Title: "Rural Employment Contract", Description: "Employment contract template for field collaborators.", Category: "legal"},
	{ID: "d5", Title: "Annual Rural Activity Statement", Description: "Yearly declaration of rural income and expenses for tax filing.", Category: "fiscal"},
}

// DocumentsHandler serves the premium document template library.
type DocumentsHandler struct{}

// NewDocumentsHandler constructs the HTTP handler adapter.
func NewDocumentsHandler() *DocumentsHandler {
	return &DocumentsHandler{}
}

// List returns the template catalog.
func (h *DocumentsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"documents": fiscalDocuments})
}
