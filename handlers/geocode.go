package handlers

import (
	"net/http"

	"instrufix/services/geocode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeocodeHandler proxies address suggestions so browser clients never hit the
// upstream geocoder directly.
type GeocodeHandler struct {
	Suggester *geocode.Suggester
}

// NewGeocodeHandler creates a new GeocodeHandler instance.
func NewGeocodeHandler(suggester *geocode.Suggester) *GeocodeHandler {
	return &GeocodeHandler{Suggester: suggester}
}

// SearchHandler handles GET /geocode/search?q=<address fragment>.
func (h *GeocodeHandler) SearchHandler(c *gin.Context) {
	logger := getLogger(c)

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: q"})
		return
	}

	places, err := h.Suggester.Search(c, query)
	if err != nil {
		logger.Warn("Geocode lookup failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": places})
}
