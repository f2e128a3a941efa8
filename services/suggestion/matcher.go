package suggestion

import (
	"context"
	"fmt"
	"time"

	"clinicflow/models"
	"clinicflow/services/calendar"
	"clinicflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidateConfig enforces the operational bounds on a generation request.
// Violations abort the whole operation before anything is persisted.
func ValidateConfig(cfg models.SuggestionConfig, requesterID string) error {
	if requesterID == "" {
		return NewConfigError("requester identity is required")
	}
	if cfg.DaysAhead < MinDaysAhead || cfg.DaysAhead > MaxDaysAhead {
		return NewConfigError(fmt.Sprintf("daysAhead must be between %d and %d", MinDaysAhead, MaxDaysAhead))
	}
	if cfg.MaxSuggestions < MinMaxSuggestions || cfg.MaxSuggestions > MaxMaxSuggestions {
		return NewConfigError(fmt.Sprintf("maxSuggestions must be between %d and %d", MinMaxSuggestions, MaxMaxSuggestions))
	}
	return nil
}

// buildCandidates is the pure gap-finding pass: materialize windows over the
// horizon, drop must-avoid holiday dates, drop anything intersecting an
// existing appointment, then rank and cap. All inputs are explicit so the
// same inputs always yield the same output.
func buildCandidates(
	windows []models.AvailabilityWindow,
	appointments []models.ExistingAppointment,
	oracle *calendar.Oracle,
	today time.Time,
	cfg models.SuggestionConfig,
) ([]occurrence, error) {
	occs := materialize(dedupeWindows(windows), today, cfg.DaysAhead)

	filtered := occs[:0]
	for _, occ := range occs {
		day, err := time.Parse(dateLayout, occ.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid occurrence date %q: %w", occ.Date, err)
		}
		entry, err := oracle.IsHoliday(day)
		if err != nil {
			return nil, fmt.Errorf("holiday lookup failed: %w", err)
		}
		if entry != nil && entry.MustAvoid() {
			continue
		}
		if overlapsAny(appointments, occ) {
			continue
		}
		filtered = append(filtered, occ)
	}

	sortOccurrences(filtered)
	if len(filtered) > cfg.MaxSuggestions {
		filtered = filtered[:cfg.MaxSuggestions]
	}
	return filtered, nil
}

// overlapsAny runs the time-range intersection test against every
// appointment; same-day alone is not enough to exclude.
func overlapsAny(appointments []models.ExistingAppointment, occ occurrence) bool {
	for _, a := range appointments {
		if a.Overlaps(occ.Date, occ.Start, occ.End) {
			return true
		}
	}
	return false
}

// matchClient loads one client's availability and bookings and runs the
// matcher. A non-empty skip reason distinguishes "no availability
// configured" from "everything conflicted".
func (e *DefaultSuggestionEngine) matchClient(ctx context.Context, clientID string, cfg models.SuggestionConfig, today time.Time) ([]occurrence, string, error) {
	windows, err := e.Availability.ListActiveByClient(ctx, clientID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load availability: %w", err)
	}
	if len(windows) == 0 {
		return nil, ReasonNoAvailability, nil
	}

	startDate := today.Format(dateLayout)
	endDate := today.AddDate(0, 0, cfg.DaysAhead).Format(dateLayout)
	appointments, err := e.Appointments.ListByClientInRange(ctx, clientID, startDate, endDate)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load existing appointments: %w", err)
	}

	occs, err := buildCandidates(windows, appointments, e.Calendar, today, cfg)
	if err != nil {
		return nil, "", err
	}
	if len(occs) == 0 {
		return nil, ReasonNoOpenSlots, nil
	}
	return occs, "", nil
}

// persistCandidates inserts each candidate as a pending suggestion,
// returning whatever was persisted before any failure.
func (e *DefaultSuggestionEngine) persistCandidates(ctx context.Context, clientID, requesterID string, occs []occurrence) ([]models.SuggestedAppointment, error) {
	persisted := make([]models.SuggestedAppointment, 0, len(occs))
	for _, occ := range occs {
		record := models.SuggestedAppointment{
			ID:          uuid.New().String(),
			ClientID:    clientID,
			Date:        occ.Date,
			Start:       occ.Start,
			End:         occ.End,
			Weight:      occ.Weight,
			Rationale:   occ.Rationale,
			RequestedBy: requesterID,
			Status:      models.SuggestionPending,
			CreatedAt:   e.now(),
		}
		if err := e.Suggestions.Insert(ctx, record); err != nil {
			return persisted, fmt.Errorf("failed to persist suggestion for %s %s: %w", record.Date, minutesToClock(record.Start), err)
		}
		persisted = append(persisted, record)
	}
	return persisted, nil
}

// GenerateForClient runs the matcher for a single client and persists the
// resulting candidates. The outcome carries the same success/skipped/error
// classification a bulk run reports.
func (e *DefaultSuggestionEngine) GenerateForClient(ctx context.Context, clientID, requesterID string, cfg models.SuggestionConfig) (*GenerationResult, error) {
	if err := ValidateConfig(cfg, requesterID); err != nil {
		return nil, err
	}
	logger := utils.GetLogger()
	today := e.now()

	occs, reason, err := e.matchClient(ctx, clientID, cfg, today)
	if err != nil {
		logger.Error("suggestion generation failed",
			zap.String("clientID", clientID), zap.Error(err))
		return &GenerationResult{Status: models.BulkStatusError, Reason: err.Error()}, nil
	}
	if reason != "" {
		return &GenerationResult{Status: models.BulkStatusSkipped, Reason: reason}, nil
	}

	persisted, err := e.persistCandidates(ctx, clientID, requesterID, occs)
	if err != nil {
		logger.Error("suggestion persistence failed",
			zap.String("clientID", clientID), zap.Error(err))
		return &GenerationResult{Status: models.BulkStatusError, Reason: err.Error(), Suggestions: persisted}, nil
	}

	logger.Info("generated suggestions",
		zap.String("clientID", clientID), zap.Int("count", len(persisted)))
	return &GenerationResult{Status: models.BulkStatusSuccess, Suggestions: persisted}, nil
}
