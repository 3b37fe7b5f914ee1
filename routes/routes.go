package routes

import (
	"net/http"
	"time"

	"instrufix/handlers"
	"instrufix/middleware"
	"instrufix/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers the listing submission and lookup endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		// Public reads and public (logged-out) submissions. Create carries
		// optional auth: a valid token binds the listing to its owner, a
		// missing one leaves it trackable only by tracking id.
		api.GET("", hb.ListBusinessesHandler)
		api.GET("/:id", hb.GetBusinessHandler)
		api.GET("/track/:trackingId", hb.TrackBusinessHandler)
		api.POST("/create", middleware.JWTAuthMiddleware(true), hb.CreateBusinessHandler)

		// Updates require a strictly authenticated business account.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(false), middleware.RequireBusinessUser())
		protected.PATCH("/update/:id", hb.UpdateBusinessHandler)
	}
}

// RegisterCatalogRoutes registers the instrument reference catalog endpoint.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/instrument-family", hb.GetInstrumentFamiliesHandler)
}

// RegisterGeocodeRoutes registers the address suggestion proxy.
func RegisterGeocodeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/geocode/search", hb.GeocodeSearchHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBusinessRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterGeocodeRoutes(r, hb)
	RegisterHealthRoute(r)
}
