package handlers

import (
	"net/http"
	"time"

	availabilityRepo "clinicflow/database/repository/availability"
	"clinicflow/models"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler manages client availability windows.
type AvailabilityHandler struct {
	Repo availabilityRepo.AvailabilityRepository
}

func NewAvailabilityHandler(repo availabilityRepo.AvailabilityRepository) *AvailabilityHandler {
	return &AvailabilityHandler{Repo: repo}
}

// CreateHandler registers a new availability window for a client.
func (h *AvailabilityHandler) CreateHandler(c *gin.Context) {
	clientID := c.Param("clientID")
	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// Exactly one of weekday or date identifies the window.
	if (req.Weekday == nil) == (req.Date == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "exactly one of weekday or date must be set")
		return
	}
	if req.Start >= req.End {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start must be before end")
		return
	}

	window := models.AvailabilityWindow{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Weight:    req.Weight,
		Active:    true,
		CreatedBy: c.GetHeader("X-Requester-ID"),
		CreatedAt: time.Now(),
	}
	if req.Weekday != nil {
		wd := time.Weekday(*req.Weekday)
		window.Weekday = &wd
	}

	id, err := h.Repo.Create(c.Request.Context(), window)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create availability window", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListHandler returns a client's active availability windows.
func (h *AvailabilityHandler) ListHandler(c *gin.Context) {
	clientID := c.Param("clientID")
	windows, err := h.Repo.ListActiveByClient(c.Request.Context(), clientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// DeactivateHandler soft-deletes an availability window.
func (h *AvailabilityHandler) DeactivateHandler(c *gin.Context) {
	clientID := c.Param("clientID")
	windowID := c.Param("windowID")
	if err := h.Repo.Deactivate(c.Request.Context(), clientID, windowID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to deactivate availability window", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
