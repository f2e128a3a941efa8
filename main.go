// File: clinicflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicflow/config"
	"clinicflow/cron"
	"clinicflow/database"
	appointmentRepo "clinicflow/database/repository/appointment"
	availabilityRepo "clinicflow/database/repository/availability"
	clientRepoPkg "clinicflow/database/repository/client"
	suggestionRepo "clinicflow/database/repository/suggestion"
	"clinicflow/handlers"
	"clinicflow/middleware"
	"clinicflow/routes"
	"clinicflow/services/analytics"
	"clinicflow/services/calendar"
	"clinicflow/services/suggestion"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	suggRepo := suggestionRepo.NewMongoSuggestionRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()

	// services.
	oracle := calendar.NewOracle()
	summaryCache := suggestion.NewRosterSummaryCache(utils.GetCacheClient(), 10*time.Minute)

	engine := &suggestion.DefaultSuggestionEngine{
		Availability: availRepo,
		Appointments: apptRepo,
		Suggestions:  suggRepo,
		Clients:      clientRepo,
		Calendar:     oracle,
		Summary:      summaryCache,
	}

	analyticsService := &analytics.DefaultAnalyticsService{
		Availability: availRepo,
		Suggestions:  suggRepo,
		Clients:      clientRepo,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availRepo)
	suggestionHandler := handlers.NewSuggestionHandler(engine, suggRepo, logger)
	calendarHandler := handlers.NewCalendarHandler(oracle)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		CreateAvailabilityHandler:     availabilityHandler.CreateHandler,
		ListAvailabilityHandler:       availabilityHandler.ListHandler,
		DeactivateAvailabilityHandler: availabilityHandler.DeactivateHandler,

		// Suggestion endpoints.
		GenerateHandler:          suggestionHandler.GenerateHandler,
		BulkGenerateHandler:      suggestionHandler.BulkGenerateHandler,
		ListSuggestionsHandler:   suggestionHandler.ListByClientHandler,
		ResolveSuggestionHandler: suggestionHandler.ResolveHandler,
		RosterSummaryHandler:     suggestionHandler.RosterSummaryHandler,

		// Calendar endpoints.
		CalendarYearHandler:     calendarHandler.YearHandler,
		CalendarRangeHandler:    calendarHandler.RangeHandler,
		CalendarUpcomingHandler: calendarHandler.UpcomingHandler,

		// Analytics endpoints.
		AnalyticsHandler: analyticsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for scheduled bulk runs and expiry sweeps.
	cron.InitSuggestionWorker(engine, clientRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
