package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Availability endpoints.
	CreateAvailabilityHandler     gin.HandlerFunc
	ListAvailabilityHandler       gin.HandlerFunc
	DeactivateAvailabilityHandler gin.HandlerFunc

	// Suggestion endpoints.
	GenerateHandler          gin.HandlerFunc
	BulkGenerateHandler      gin.HandlerFunc
	ListSuggestionsHandler   gin.HandlerFunc
	ResolveSuggestionHandler gin.HandlerFunc
	RosterSummaryHandler     gin.HandlerFunc

	// Calendar endpoints.
	CalendarYearHandler     gin.HandlerFunc
	CalendarRangeHandler    gin.HandlerFunc
	CalendarUpcomingHandler gin.HandlerFunc

	// Analytics endpoints.
	AnalyticsHandler *AnalyticsHandler
}
