package handlers

import (
	"errors"
	"net/http"

	"cabinkeep/models"
	"cabinkeep/services/checklist"
	"cabinkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChecklistHandler exposes the checklist CRUD and aggregation endpoints.
type ChecklistHandler struct {
	Service checklist.ChecklistService
}

// NewChecklistHandler returns a handler bound to the given service.
func NewChecklistHandler(svc checklist.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{Service: svc}
}

// ListChecklistsHandler handles GET /api/checklists.
func (h *ChecklistHandler) ListChecklistsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	records, err := h.Service.ListChecklists(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list checklists", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetChecklistHandler handles GET /api/checklists/:id. An unknown ID yields a
// null body, not an error.
func (h *ChecklistHandler) GetChecklistHandler(c *gin.Context) {
	logger := utils.GetLogger()
	rec, err := h.Service.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to fetch checklist", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateOrUpdateOpenHandler handles POST /api/checklists. The body is the full
// form state; fields absent from the body keep their schema defaults.
func (h *ChecklistHandler) CreateOrUpdateOpenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	rec := models.NewChecklistRecord(0)
	if err := c.ShouldBindJSON(&rec); err != nil {
		logger.Error("Invalid checklist payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.Service.CreateOrUpdateOpen(c.Request.Context(), rec)
	if err != nil {
		if errors.Is(err, checklist.ErrInvalidCabin) || errors.Is(err, checklist.ErrInvalidField) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to save checklist", zap.Int("cabin", rec.CabinNumber), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpdateChecklistHandler handles PUT /api/checklists/:id, a full replace.
// Replacing an unknown ID yields a null body.
func (h *ChecklistHandler) UpdateChecklistHandler(c *gin.Context) {
	logger := utils.GetLogger()

	rec := models.NewChecklistRecord(0)
	if err := c.ShouldBindJSON(&rec); err != nil {
		logger.Error("Invalid checklist payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.Service.UpdateChecklist(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		if errors.Is(err, checklist.ErrInvalidCabin) || errors.Is(err, checklist.ErrInvalidField) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to update checklist", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteChecklistHandler handles DELETE /api/checklists/:id ("reset cabin").
func (h *ChecklistHandler) DeleteChecklistHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if err := h.Service.DeleteChecklist(c.Request.Context(), c.Param("id")); err != nil {
		logger.Error("Failed to delete checklist", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// PendingSummariesHandler handles GET /api/pending-summaries. The summary is
// computed on demand, never cached.
func (h *ChecklistHandler) PendingSummariesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	summary, err := h.Service.ComputeRestockSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute restock summary", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SchemaHandler handles GET /api/schema, serving the declarative field schema
// so forms and validation share one table.
func (h *ChecklistHandler) SchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaSpec())
}
