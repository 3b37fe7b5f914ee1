package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Business listing endpoints.
	CreateBusinessHandler gin.HandlerFunc
	UpdateBusinessHandler gin.HandlerFunc
	GetBusinessHandler    gin.HandlerFunc
	TrackBusinessHandler  gin.HandlerFunc
	ListBusinessesHandler gin.HandlerFunc

	// Reference catalog endpoints.
	GetInstrumentFamiliesHandler gin.HandlerFunc

	// Geocoding endpoints.
	GeocodeSearchHandler gin.HandlerFunc
}
