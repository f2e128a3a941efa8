package suggestion

import (
	"context"
	"time"

	appointmentRepo "clinicflow/database/repository/appointment"
	availabilityRepo "clinicflow/database/repository/availability"
	clientRepo "clinicflow/database/repository/client"
	suggestionRepo "clinicflow/database/repository/suggestion"
	"clinicflow/models"
	"clinicflow/services/calendar"
)

// ProgressFunc receives live progress during a bulk run: processed clients
// so far and the total. Calls are strictly monotonic in processed.
type ProgressFunc func(processed, total int)

// GenerationResult is the outcome of a single-client generation: the same
// three-way classification a bulk run reports, never a bare boolean.
type GenerationResult struct {
	Status      string                        `json:"status"`
	Reason      string                        `json:"reason,omitempty"`
	Suggestions []models.SuggestedAppointment `json:"suggestions"`
}

// Engine is the availability-to-appointment suggestion engine.
type Engine interface {
	GenerateForClient(ctx context.Context, clientID, requesterID string, cfg models.SuggestionConfig) (*GenerationResult, error)
	RunBulk(ctx context.Context, clientIDs []string, requesterID string, cfg models.BulkConfig, onProgress ProgressFunc) ([]models.BulkGenerationResult, models.BulkSummary, error)
	ListRosterSummary(ctx context.Context) ([]models.ClientSummary, error)
	Resolve(ctx context.Context, clientID, suggestionID, status string) error
	ExpireStalePending(ctx context.Context, graceDays int) (int64, error)
}

// DefaultSuggestionEngine implements Engine.
type DefaultSuggestionEngine struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Suggestions  suggestionRepo.SuggestionRepository
	Clients      clientRepo.ClientRepository
	Calendar     *calendar.Oracle
	Summary      *RosterSummaryCache

	// Now is the clock used to anchor the look-ahead horizon. Defaults to
	// time.Now; tests pin it to a reference date.
	Now func() time.Time
}

func (e *DefaultSuggestionEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
