package analytics

import (
	"context"
	"fmt"
	"time"

	"clinicflow/models"
)

const dateLayout = "2006-01-02"

// MostAvailableWeekday returns the weekday covered by the most active
// availability windows. One-off windows count toward their date's weekday.
// Ties break toward the earlier weekday so the answer is stable.
func (s *DefaultAnalyticsService) MostAvailableWeekday(ctx context.Context) (WeekdayInsight, error) {
	windows, err := s.Availability.ListActive(ctx)
	if err != nil {
		return WeekdayInsight{}, fmt.Errorf("failed to load availability: %w", err)
	}
	return mostAvailableWeekday(windows), nil
}

func mostAvailableWeekday(windows []models.AvailabilityWindow) WeekdayInsight {
	var counts [7]int
	for _, w := range windows {
		switch {
		case w.Weekday != nil:
			counts[int(*w.Weekday)]++
		case w.Date != "":
			if d, err := time.Parse(dateLayout, w.Date); err == nil {
				counts[int(d.Weekday())]++
			}
		}
	}

	best := -1
	for day, count := range counts {
		if count > 0 && (best < 0 || count > counts[best]) {
			best = day
		}
	}
	if best < 0 {
		return WeekdayInsight{}
	}
	return WeekdayInsight{Weekday: time.Weekday(best).String(), Count: counts[best]}
}

// TimeOfDayDistribution buckets active windows by starting time of day.
func (s *DefaultAnalyticsService) TimeOfDayDistribution(ctx context.Context) (TimeOfDayBuckets, error) {
	windows, err := s.Availability.ListActive(ctx)
	if err != nil {
		return TimeOfDayBuckets{}, fmt.Errorf("failed to load availability: %w", err)
	}
	return timeOfDayDistribution(windows), nil
}

func timeOfDayDistribution(windows []models.AvailabilityWindow) TimeOfDayBuckets {
	var buckets TimeOfDayBuckets
	for _, w := range windows {
		switch {
		case w.Start < 12*60:
			buckets.Morning++
		case w.Start < 18*60:
			buckets.Afternoon++
		default:
			buckets.Evening++
		}
	}
	return buckets
}

// AcceptanceRateByClient returns accepted/total per client, only for
// clients with at least one suggestion. A client with suggestions but no
// acceptances gets 0, never a division error.
func (s *DefaultAnalyticsService) AcceptanceRateByClient(ctx context.Context) (map[string]float64, error) {
	suggestions, err := s.Suggestions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestion history: %w", err)
	}
	return acceptanceRateByClient(suggestions), nil
}

func acceptanceRateByClient(suggestions []models.SuggestedAppointment) map[string]float64 {
	totals := make(map[string]int)
	accepted := make(map[string]int)
	for _, sug := range suggestions {
		totals[sug.ClientID]++
		if sug.Status == models.SuggestionAccepted {
			accepted[sug.ClientID]++
		}
	}

	rates := make(map[string]float64, len(totals))
	for clientID, total := range totals {
		if total == 0 {
			rates[clientID] = 0
			continue
		}
		rates[clientID] = float64(accepted[clientID]) / float64(total)
	}
	return rates
}

// ConfigurationRate is the share of clients with at least one active
// availability window. An empty roster yields 0.
func (s *DefaultAnalyticsService) ConfigurationRate(ctx context.Context) (float64, error) {
	totalClients, err := s.Clients.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	windows, err := s.Availability.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load availability: %w", err)
	}
	return configurationRate(windows, totalClients), nil
}

func configurationRate(windows []models.AvailabilityWindow, totalClients int64) float64 {
	if totalClients <= 0 {
		return 0
	}
	configured := make(map[string]struct{})
	for _, w := range windows {
		configured[w.ClientID] = struct{}{}
	}
	return float64(len(configured)) / float64(totalClients)
}
