package routes

import (
	"net/http"
	"time"

	"clinicflow/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers availability window management.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients/:clientID/availability")
	{
		api.POST("", hb.CreateAvailabilityHandler)
		api.GET("", hb.ListAvailabilityHandler)
		api.DELETE("/:windowID", hb.DeactivateAvailabilityHandler)
	}
}

// RegisterSuggestionRoutes registers the suggestion engine endpoints.
func RegisterSuggestionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/suggestions")
	{
		api.POST("/generate/:clientID", hb.GenerateHandler)
		api.POST("/bulk", hb.BulkGenerateHandler)
		api.GET("/client/:clientID", hb.ListSuggestionsHandler)
		api.PATCH("/client/:clientID/:suggestionID", hb.ResolveSuggestionHandler)
		api.GET("/roster", hb.RosterSummaryHandler)
	}
}

// RegisterCalendarRoutes registers holiday calendar queries.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/year/:year", hb.CalendarYearHandler)
		api.GET("/range", hb.CalendarRangeHandler)
		api.GET("/upcoming", hb.CalendarUpcomingHandler)
	}
}

// RegisterAnalyticsRoutes registers read-only insight endpoints.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analytics")
	{
		api.GET("/most-available-weekday", hb.AnalyticsHandler.MostAvailableWeekdayHandler)
		api.GET("/time-of-day", hb.AnalyticsHandler.TimeOfDayHandler)
		api.GET("/acceptance-rate", hb.AnalyticsHandler.AcceptanceRateHandler)
		api.GET("/configuration-rate", hb.AnalyticsHandler.ConfigurationRateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "clinicflow is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterSuggestionRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterHealthRoute(r)
}
