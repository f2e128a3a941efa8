package handlers

import (
	"net/http"

	suggestionRepo "clinicflow/database/repository/suggestion"
	"clinicflow/models"
	"clinicflow/services/suggestion"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuggestionHandler exposes the suggestion engine over HTTP.
type SuggestionHandler struct {
	Engine suggestion.Engine
	Repo   suggestionRepo.SuggestionRepository
	Logger *zap.Logger
}

func NewSuggestionHandler(engine suggestion.Engine, repo suggestionRepo.SuggestionRepository, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{Engine: engine, Repo: repo, Logger: logger}
}

// GenerateHandler runs single-client generation.
func (h *SuggestionHandler) GenerateHandler(c *gin.Context) {
	clientID := c.Param("clientID")
	var input struct {
		RequesterID string `json:"requesterId" binding:"required"`
		models.SuggestionConfig
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Engine.GenerateForClient(c.Request.Context(), clientID, input.RequesterID, input.SuggestionConfig)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid generation request", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// BulkGenerateHandler runs the batch orchestrator over the given roster.
func (h *SuggestionHandler) BulkGenerateHandler(c *gin.Context) {
	var input struct {
		ClientIDs   []string `json:"clientIds" binding:"required,min=1"`
		RequesterID string   `json:"requesterId" binding:"required"`
		models.BulkConfig
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	results, summary, err := h.Engine.RunBulk(c.Request.Context(), input.ClientIDs, input.RequesterID, input.BulkConfig,
		func(done, total int) {
			h.Logger.Debug("bulk generation progress",
				zap.Int("done", done), zap.Int("total", total))
		})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid bulk request", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "summary": summary})
}

// ListByClientHandler returns a client's full suggestion history.
func (h *SuggestionHandler) ListByClientHandler(c *gin.Context) {
	clientID := c.Param("clientID")
	suggestions, err := h.Repo.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list suggestions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// ResolveHandler accepts or rejects a pending suggestion.
func (h *SuggestionHandler) ResolveHandler(c *gin.Context) {
	clientID := c.Param("clientID")
	suggestionID := c.Param("suggestionID")
	var input struct {
		Status string `json:"status" binding:"required,oneof=accepted rejected"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Engine.Resolve(c.Request.Context(), clientID, suggestionID, input.Status); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to resolve suggestion", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// RosterSummaryHandler returns the cached roster availability/suggestion view.
func (h *SuggestionHandler) RosterSummaryHandler(c *gin.Context) {
	summaries, err := h.Engine.ListRosterSummary(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load roster summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": summaries})
}
