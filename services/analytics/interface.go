package analytics

import (
	"context"

	availabilityRepo "clinicflow/database/repository/availability"
	clientRepo "clinicflow/database/repository/client"
	suggestionRepo "clinicflow/database/repository/suggestion"
)

// WeekdayInsight is the weekday with the most active availability windows.
type WeekdayInsight struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// TimeOfDayBuckets counts availability windows by the part of day they
// start in.
type TimeOfDayBuckets struct {
	Morning   int `json:"morning"`   // before 12:00
	Afternoon int `json:"afternoon"` // 12:00 to 17:59
	Evening   int `json:"evening"`   // 18:00 onward
}

// AnalyticsService computes read-only insights over persisted availability
// and suggestion history. All methods are side-effect free.
type AnalyticsService interface {
	MostAvailableWeekday(ctx context.Context) (WeekdayInsight, error)
	TimeOfDayDistribution(ctx context.Context) (TimeOfDayBuckets, error)
	AcceptanceRateByClient(ctx context.Context) (map[string]float64, error)
	ConfigurationRate(ctx context.Context) (float64, error)
}

// DefaultAnalyticsService implements AnalyticsService.
type DefaultAnalyticsService struct {
	Availability availabilityRepo.AvailabilityRepository
	Suggestions  suggestionRepo.SuggestionRepository
	Clients      clientRepo.ClientRepository
}
