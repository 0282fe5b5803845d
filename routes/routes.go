package routes

import (
	"net/http"
	"time"

	"cabinkeep/config"
	"cabinkeep/handlers"
	"cabinkeep/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChecklistRoutes registers the checklist CRUD and aggregation endpoints.
func RegisterChecklistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/checklists", hb.ListChecklistsHandler)
		api.GET("/checklists/:id", hb.GetChecklistHandler)
		api.POST("/checklists", hb.CreateOrUpdateOpenHandler)
		api.PUT("/checklists/:id", hb.UpdateChecklistHandler)
		api.DELETE("/checklists/:id", hb.DeleteChecklistHandler)
		api.GET("/pending-summaries", hb.PendingSummariesHandler)
		api.GET("/schema", hb.SchemaHandler)
	}
}

// RegisterCartRoutes registers the supply-cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.GetCartHandler)
		api.POST("", hb.AddCartItemHandler)
		api.DELETE("/:index", hb.RemoveCartItemHandler)
	}
}

// RegisterAuthRoutes registers the public sign-in and refresh endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/auth/google", hb.GoogleSignInHandler)
	r.POST("/refresh", hb.RefreshHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Cabinkeep"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterChecklistRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterHealthRoute(r)
}
