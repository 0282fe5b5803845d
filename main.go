package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cabinkeep/config"
	"cabinkeep/cron"
	"cabinkeep/database"
	cartRepoPkg "cabinkeep/database/repository/cart"
	checklistRepoPkg "cabinkeep/database/repository/checklist"
	tokenRepoPkg "cabinkeep/database/repository/token"
	"cabinkeep/handlers"
	"cabinkeep/middleware"
	"cabinkeep/routes"
	authService "cabinkeep/services/auth"
	cartService "cabinkeep/services/cart"
	checklistService "cabinkeep/services/checklist"
	"cabinkeep/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	checklistRepo := checklistRepoPkg.NewMongoChecklistRepo()
	cartRepo := cartRepoPkg.NewMongoCartRepo()
	tokenRepo := tokenRepoPkg.NewMongoRefreshTokenRepo()

	// services.
	checklistSvc := &checklistService.DefaultChecklistService{
		Repo:       checklistRepo,
		CabinCount: config.AppConfig.CabinCount,
	}
	cartSvc := &cartService.DefaultCartService{
		Repo: cartRepo,
	}
	authSvc := &authService.DefaultAuthService{
		Tokens: tokenRepo,
	}

	checklistHandler := handlers.NewChecklistHandler(checklistSvc)
	cartHandler := handlers.NewCartHandler(cartSvc)
	authHandler := handlers.NewAuthHandler(authSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Checklist endpoints.
		ListChecklistsHandler:     checklistHandler.ListChecklistsHandler,
		GetChecklistHandler:       checklistHandler.GetChecklistHandler,
		CreateOrUpdateOpenHandler: checklistHandler.CreateOrUpdateOpenHandler,
		UpdateChecklistHandler:    checklistHandler.UpdateChecklistHandler,
		DeleteChecklistHandler:    checklistHandler.DeleteChecklistHandler,
		PendingSummariesHandler:   checklistHandler.PendingSummariesHandler,
		SchemaHandler:             checklistHandler.SchemaHandler,

		// Cart endpoints.
		GetCartHandler:        cartHandler.GetCartHandler,
		AddCartItemHandler:    cartHandler.AddCartItemHandler,
		RemoveCartItemHandler: cartHandler.RemoveCartItemHandler,

		// Auth endpoints.
		GoogleSignInHandler: authHandler.GoogleSignInHandler,
		RefreshHandler:      authHandler.RefreshHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background maintenance (expired refresh-token purge).
	cron.InitMaintenanceWorker(tokenRepo)

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
