package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Checklist endpoints.
	ListChecklistsHandler     gin.HandlerFunc
	GetChecklistHandler       gin.HandlerFunc
	CreateOrUpdateOpenHandler gin.HandlerFunc
	UpdateChecklistHandler    gin.HandlerFunc
	DeleteChecklistHandler    gin.HandlerFunc
	PendingSummariesHandler   gin.HandlerFunc
	SchemaHandler             gin.HandlerFunc

	// Cart endpoints.
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc

	// Auth endpoints.
	GoogleSignInHandler gin.HandlerFunc
	RefreshHandler      gin.HandlerFunc
}
