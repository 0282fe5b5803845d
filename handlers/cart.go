package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cabinkeep/services/cart"
	"cabinkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the shared supply-request list endpoints.
type CartHandler struct {
	Service cart.CartService
}

// NewCartHandler returns a handler bound to the given service.
func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// callerID returns the authenticated user ID set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}

// GetCartHandler handles GET /api/cart.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := callerID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token")
		return
	}

	items, err := h.Service.GetCart(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch cart", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddCartItemHandler handles POST /api/cart.
func (h *CartHandler) AddCartItemHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := callerID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token")
		return
	}

	var req struct {
		Item     string `json:"item" binding:"required"`
		Quantity int    `json:"quantity"`
		Cabin    *int   `json:"cabin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid cart payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.Service.AddItem(c.Request.Context(), userID, req.Item, req.Quantity, req.Cabin)
	if err != nil {
		logger.Error("Failed to add cart item", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, items)
}

// RemoveCartItemHandler handles DELETE /api/cart/:index. Removal is by
// position in the current list; a stale or out-of-range index is rejected and
// the stored list is left untouched.
func (h *CartHandler) RemoveCartItemHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := callerID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No token")
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid cart index")
		return
	}

	items, err := h.Service.RemoveItem(c.Request.Context(), userID, index)
	if err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			utils.JSONError(c, http.StatusBadRequest, "Cart index out of range")
			return
		}
		logger.Error("Failed to remove cart item", zap.String("userID", userID), zap.Int("index", index), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, items)
}
