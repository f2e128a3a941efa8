package handlers

import (
	"net/http"

	"clinicflow/services/analytics"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves read-only availability and suggestion insights.
type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

func NewAnalyticsHandler(service analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service}
}

func (h *AnalyticsHandler) MostAvailableWeekdayHandler(c *gin.Context) {
	insight, err := h.Service.MostAvailableWeekday(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute weekday insight", err.Error())
		return
	}
	c.JSON(http.StatusOK, insight)
}

func (h *AnalyticsHandler) TimeOfDayHandler(c *gin.Context) {
	buckets, err := h.Service.TimeOfDayDistribution(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute time-of-day distribution", err.Error())
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *AnalyticsHandler) AcceptanceRateHandler(c *gin.Context) {
	rates, err := h.Service.AcceptanceRateByClient(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute acceptance rates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acceptanceRateByClient": rates})
}

func (h *AnalyticsHandler) ConfigurationRateHandler(c *gin.Context) {
	rate, err := h.Service.ConfigurationRate(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute configuration rate", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"configurationRate": rate})
}
