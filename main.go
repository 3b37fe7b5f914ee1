// File: instrufix/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"instrufix/config"
	"instrufix/database"
	businessRepo "instrufix/database/repository/business"
	instrumentRepo "instrufix/database/repository/instrument"
	"instrufix/handlers"
	"instrufix/middleware"
	"instrufix/routes"
	"instrufix/services/catalog"
	"instrufix/services/geocode"
	"instrufix/services/listing"
	"instrufix/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bizRepo := businessRepo.NewMongoBusinessRepo()
	instRepo := instrumentRepo.NewMongoInstrumentRepo()

	if mongoRepo, ok := bizRepo.(*businessRepo.MongoBusinessRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure business indexes: %v", err)
		}
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  instRepo,
		Cache: utils.GetCacheClient(),
	}

	listingService := &listing.DefaultListingService{
		Repo:    bizRepo,
		Catalog: catalogService,
		Storage: cloudinaryStorageService,
	}

	suggester := geocode.NewSuggesterWithBase(config.AppConfig.NominatimURL)

	businessHandler := handlers.NewBusinessHandler(listingService)
	instrumentHandler := handlers.NewInstrumentHandler(catalogService)
	geocodeHandler := handlers.NewGeocodeHandler(suggester)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBusinessHandler: businessHandler.CreateBusinessHandler,
		UpdateBusinessHandler: businessHandler.UpdateBusinessHandler,
		GetBusinessHandler:    businessHandler.GetBusinessHandler,
		TrackBusinessHandler:  businessHandler.TrackBusinessHandler,
		ListBusinessesHandler: businessHandler.ListBusinessesHandler,

		GetInstrumentFamiliesHandler: instrumentHandler.GetInstrumentFamiliesHandler,

		GeocodeSearchHandler: geocodeHandler.SearchHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health monitoring over mongo and redis.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
