package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"clinicflow/models"
	"clinicflow/services/calendar"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves holiday calendar queries.
type CalendarHandler struct {
	Oracle *calendar.Oracle
}

func NewCalendarHandler(oracle *calendar.Oracle) *CalendarHandler {
	return &CalendarHandler{Oracle: oracle}
}

// YearHandler returns the full holiday set for a year.
func (h *CalendarHandler) YearHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	entries, err := h.Oracle.HolidaysForYear(year)
	if err != nil {
		var rangeErr *calendar.YearOutOfRangeError
		if errors.As(err, &rangeErr) {
			utils.JSONError(c, http.StatusBadRequest, "year out of range", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute holidays", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "holidays": entries})
}

// RangeHandler returns holidays between two dates, optionally filtered by
// category.
func (h *CalendarHandler) RangeHandler(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start date", err.Error())
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end date", err.Error())
		return
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "end date precedes start date")
		return
	}

	var categories []models.HolidayCategory
	for _, cat := range c.QueryArray("category") {
		categories = append(categories, models.HolidayCategory(cat))
	}

	entries, err := h.Oracle.HolidaysInRange(start, end, categories...)
	if err != nil {
		var rangeErr *calendar.YearOutOfRangeError
		if errors.As(err, &rangeErr) {
			utils.JSONError(c, http.StatusBadRequest, "year out of range", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute holidays", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": entries})
}

// UpcomingHandler returns the next holidays from today.
func (h *CalendarHandler) UpcomingHandler(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit", "limit must be between 1 and 50")
			return
		}
		limit = parsed
	}

	entries, err := h.Oracle.UpcomingHolidays(time.Now(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute holidays", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": entries})
}
