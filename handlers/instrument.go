package handlers

import (
	"net/http"

	"instrufix/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InstrumentHandler serves the instrument reference catalog.
type InstrumentHandler struct {
	Catalog catalog.CatalogService
}

// NewInstrumentHandler creates a new InstrumentHandler instance.
func NewInstrumentHandler(svc catalog.CatalogService) *InstrumentHandler {
	return &InstrumentHandler{Catalog: svc}
}

// GetInstrumentFamiliesHandler handles GET /instrument-family. An optional
// ?name= filters to the families containing a matching instrument type.
func (h *InstrumentHandler) GetInstrumentFamiliesHandler(c *gin.Context) {
	logger := getLogger(c)

	if name := c.Query("name"); name != "" {
		families, err := h.Catalog.GetFamiliesByType(c, name)
		if err != nil {
			logger.Error("Failed to filter instrument families", zap.String("name", name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get instrument families"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": families})
		return
	}

	families, err := h.Catalog.GetFamilies(c)
	if err != nil {
		logger.Error("Failed to retrieve instrument families", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get instrument families"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": families})
}
