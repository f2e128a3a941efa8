package suggestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicflow/models"
	"clinicflow/services/calendar"
)

func weekdayPtr(d time.Weekday) *time.Weekday { return &d }

func newTestEngine(av *fakeAvailabilityRepo, ap *fakeAppointmentRepo, su *fakeSuggestionRepo, cl *fakeClientRepo, today time.Time) *DefaultSuggestionEngine {
	if av == nil {
		av = &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{}}
	}
	if ap == nil {
		ap = &fakeAppointmentRepo{appointments: map[string][]models.ExistingAppointment{}}
	}
	if su == nil {
		su = &fakeSuggestionRepo{pending: map[string][]models.SuggestedAppointment{}}
	}
	if cl == nil {
		cl = &fakeClientRepo{clients: map[string]models.Client{}}
	}
	return &DefaultSuggestionEngine{
		Availability: av,
		Appointments: ap,
		Suggestions:  su,
		Clients:      cl,
		Calendar:     calendar.NewOracle(),
		Now:          func() time.Time { return today },
	}
}

func mondayMorning(clientID string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		ID:       "w1",
		ClientID: clientID,
		Weekday:  weekdayPtr(time.Monday),
		Start:    9 * 60,
		End:      11 * 60,
		Weight:   models.WeightHigh,
		Active:   true,
	}
}

// Wednesday 2024-07-03: no holidays fall inside the following two weeks.
var julToday = time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC)

func TestGenerateForClientWeeklyMondayScenario(t *testing.T) {
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {mondayMorning("c1")},
	}}
	su := &fakeSuggestionRepo{pending: map[string][]models.SuggestedAppointment{}}
	engine := newTestEngine(av, nil, su, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if res.Status != models.BulkStatusSuccess {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Reason)
	}

	// Mondays within [Jul 3, Jul 17]: Jul 8 and Jul 15, earliest first.
	wantDates := []string{"2024-07-08", "2024-07-15"}
	if len(res.Suggestions) != len(wantDates) {
		t.Fatalf("got %d suggestions, want %d", len(res.Suggestions), len(wantDates))
	}
	for i, s := range res.Suggestions {
		if s.Date != wantDates[i] {
			t.Errorf("suggestion %d date = %s, want %s", i, s.Date, wantDates[i])
		}
		if s.Start != 9*60 || s.End != 11*60 {
			t.Errorf("suggestion %d span = %d-%d, want 540-660", i, s.Start, s.End)
		}
		if s.Status != models.SuggestionPending {
			t.Errorf("suggestion %d status = %s, want pending", i, s.Status)
		}
		if s.RequestedBy != "admin1" {
			t.Errorf("suggestion %d requestedBy = %s", i, s.RequestedBy)
		}
	}
	if len(su.inserted) != 2 {
		t.Errorf("persisted %d suggestions, want 2", len(su.inserted))
	}
}

func TestGenerateForClientExcludesConflictingOccurrence(t *testing.T) {
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {mondayMorning("c1")},
	}}
	ap := &fakeAppointmentRepo{appointments: map[string][]models.ExistingAppointment{
		"c1": {
			// Intersects the first Monday candidate.
			{ID: "a1", ClientID: "c1", Date: "2024-07-08", Start: 9*60 + 30, End: 10 * 60},
			// Same day as the second candidate but adjacent, not overlapping.
			{ID: "a2", ClientID: "c1", Date: "2024-07-15", Start: 11 * 60, End: 11*60 + 30},
		},
	}}
	engine := newTestEngine(av, ap, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if res.Status != models.BulkStatusSuccess {
		t.Fatalf("status = %s (%s), want success", res.Status, res.Reason)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0].Date != "2024-07-15" {
		t.Fatalf("expected only the 2024-07-15 slot, got %+v", res.Suggestions)
	}
}

func TestGenerateForClientSkipsHolidayDates(t *testing.T) {
	// 2024-06-10 (Dia de Portugal) is a Monday.
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {mondayMorning("c1")},
	}}
	engine := newTestEngine(av, nil, nil, nil, today)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0].Date != "2024-06-17" {
		t.Fatalf("expected only 2024-06-17 (holiday Monday excluded), got %+v", res.Suggestions)
	}
}

func TestObservanceDoesNotExclude(t *testing.T) {
	// Mother's Day 2024 is Sunday May 5: informational, must not block.
	today := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {{
			ID: "w1", ClientID: "c1", Weekday: weekdayPtr(time.Sunday),
			Start: 10 * 60, End: 12 * 60, Weight: models.WeightMedium, Active: true,
		}},
	}}
	engine := newTestEngine(av, nil, nil, nil, today)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 7, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0].Date != "2024-05-05" {
		t.Fatalf("expected the observance Sunday to remain, got %+v", res.Suggestions)
	}
}

func TestSuggestionsOrderedByDateWeightTime(t *testing.T) {
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {
			{ID: "w1", ClientID: "c1", Weekday: weekdayPtr(time.Tuesday), Start: 9 * 60, End: 10 * 60, Weight: models.WeightLow, Active: true},
			{ID: "w2", ClientID: "c1", Weekday: weekdayPtr(time.Tuesday), Start: 14 * 60, End: 15 * 60, Weight: models.WeightHigh, Active: true},
		},
	}}
	engine := newTestEngine(av, nil, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 7, MaxSuggestions: 10})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	// Only Tuesday Jul 9 falls in the horizon; the high-weight afternoon
	// window outranks the low-weight morning one on the same date.
	if len(res.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(res.Suggestions))
	}
	if res.Suggestions[0].Start != 14*60 || res.Suggestions[0].Weight != models.WeightHigh {
		t.Errorf("first suggestion should be the high-weight window, got %+v", res.Suggestions[0])
	}
	if res.Suggestions[1].Start != 9*60 || res.Suggestions[1].Weight != models.WeightLow {
		t.Errorf("second suggestion should be the low-weight window, got %+v", res.Suggestions[1])
	}
}

func TestOverlappingWindowsDeduped(t *testing.T) {
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {
			{ID: "w1", ClientID: "c1", Weekday: weekdayPtr(time.Monday), Start: 9 * 60, End: 11 * 60, Weight: models.WeightLow, Active: true},
			{ID: "w2", ClientID: "c1", Weekday: weekdayPtr(time.Monday), Start: 10 * 60, End: 12 * 60, Weight: models.WeightHigh, Active: true},
		},
	}}
	engine := newTestEngine(av, nil, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 7, MaxSuggestions: 10})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	// One merged occurrence for Monday Jul 8: 09:00-12:00 at the stronger
	// weight, not two overlapping candidates.
	if len(res.Suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1 merged: %+v", len(res.Suggestions), res.Suggestions)
	}
	s := res.Suggestions[0]
	if s.Start != 9*60 || s.End != 12*60 || s.Weight != models.WeightHigh {
		t.Errorf("merged window = %d-%d %s, want 540-720 high", s.Start, s.End, s.Weight)
	}
}

func TestMixedWeeklyAndOneOffWindowsDeduped(t *testing.T) {
	// 2024-07-08 is a Monday, so the one-off duplicates the weekly window.
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {
			mondayMorning("c1"),
			{ID: "w2", ClientID: "c1", Date: "2024-07-08", Start: 9 * 60, End: 11 * 60, Weight: models.WeightLow, Active: true},
		},
	}}
	engine := newTestEngine(av, nil, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 7, MaxSuggestions: 10})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if len(res.Suggestions) != 1 {
		t.Fatalf("2024-07-08 produced %d suggestions, want 1 deduplicated: %+v", len(res.Suggestions), res.Suggestions)
	}
	s := res.Suggestions[0]
	if s.Date != "2024-07-08" || s.Start != 9*60 || s.End != 11*60 || s.Weight != models.WeightHigh {
		t.Errorf("merged slot = %s %d-%d %s, want 2024-07-08 540-660 high", s.Date, s.Start, s.End, s.Weight)
	}
}

func TestAlreadyStartedTodayWindowNotProposed(t *testing.T) {
	// Monday 2024-07-08 at 09:30: the 09:00 window is underway, the
	// afternoon window has not started yet.
	today := time.Date(2024, time.July, 8, 9, 30, 0, 0, time.UTC)
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {
			mondayMorning("c1"),
			{ID: "w2", ClientID: "c1", Weekday: weekdayPtr(time.Monday), Start: 14 * 60, End: 15 * 60, Weight: models.WeightMedium, Active: true},
		},
	}}
	engine := newTestEngine(av, nil, nil, nil, today)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 7, MaxSuggestions: 10})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	wantSlots := []struct {
		date  string
		start int
	}{
		{"2024-07-08", 14 * 60},
		{"2024-07-15", 9 * 60},
		{"2024-07-15", 14 * 60},
	}
	if len(res.Suggestions) != len(wantSlots) {
		t.Fatalf("got %d suggestions, want %d: %+v", len(res.Suggestions), len(wantSlots), res.Suggestions)
	}
	for i, want := range wantSlots {
		if res.Suggestions[i].Date != want.date || res.Suggestions[i].Start != want.start {
			t.Errorf("suggestion %d = %s %d, want %s %d", i, res.Suggestions[i].Date, res.Suggestions[i].Start, want.date, want.start)
		}
	}
}

func TestMaxSuggestionsCap(t *testing.T) {
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {mondayMorning("c1"), {
			ID: "w2", ClientID: "c1", Weekday: weekdayPtr(time.Thursday),
			Start: 14 * 60, End: 16 * 60, Weight: models.WeightMedium, Active: true,
		}},
	}}
	engine := newTestEngine(av, nil, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 60, MaxSuggestions: 3})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if len(res.Suggestions) != 3 {
		t.Fatalf("got %d suggestions, want the cap of 3", len(res.Suggestions))
	}
	for i := 1; i < len(res.Suggestions); i++ {
		if res.Suggestions[i].Date < res.Suggestions[i-1].Date {
			t.Errorf("suggestions out of order: %s after %s", res.Suggestions[i].Date, res.Suggestions[i-1].Date)
		}
	}
}

func TestSkipWhenNoActiveAvailability(t *testing.T) {
	engine := newTestEngine(nil, nil, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if res.Status != models.BulkStatusSkipped || res.Reason != ReasonNoAvailability {
		t.Fatalf("got %s (%s), want skipped with %q", res.Status, res.Reason, ReasonNoAvailability)
	}
}

func TestSkipWhenAllCandidatesConflict(t *testing.T) {
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {mondayMorning("c1")},
	}}
	ap := &fakeAppointmentRepo{appointments: map[string][]models.ExistingAppointment{
		"c1": {
			{ID: "a1", ClientID: "c1", Date: "2024-07-08", Start: 8 * 60, End: 12 * 60},
			{ID: "a2", ClientID: "c1", Date: "2024-07-15", Start: 8 * 60, End: 12 * 60},
		},
	}}
	engine := newTestEngine(av, ap, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("GenerateForClient failed: %v", err)
	}
	if res.Status != models.BulkStatusSkipped || res.Reason != ReasonNoOpenSlots {
		t.Fatalf("got %s (%s), want skipped with %q", res.Status, res.Reason, ReasonNoOpenSlots)
	}
}

func TestConfigValidationFailsFast(t *testing.T) {
	su := &fakeSuggestionRepo{pending: map[string][]models.SuggestedAppointment{}}
	av := &fakeAvailabilityRepo{windows: map[string][]models.AvailabilityWindow{
		"c1": {mondayMorning("c1")},
	}}
	engine := newTestEngine(av, nil, su, nil, julToday)

	cases := []struct {
		name      string
		requester string
		cfg       models.SuggestionConfig
	}{
		{"days ahead too small", "admin1", models.SuggestionConfig{DaysAhead: 3, MaxSuggestions: 5}},
		{"days ahead too large", "admin1", models.SuggestionConfig{DaysAhead: 90, MaxSuggestions: 5}},
		{"max suggestions zero", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 0}},
		{"max suggestions too large", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 11}},
		{"missing requester", "", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.GenerateForClient(context.Background(), "c1", tc.requester, tc.cfg)
			if err == nil {
				t.Fatal("expected a config error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %T, want ConfigError", err)
			}
		})
	}
	if len(su.inserted) != 0 {
		t.Errorf("config errors must not persist anything, found %d inserts", len(su.inserted))
	}
}

func TestTransientFailureSurfacesAsErrorResult(t *testing.T) {
	av := &fakeAvailabilityRepo{
		windows: map[string][]models.AvailabilityWindow{},
		failFor: "c1",
	}
	engine := newTestEngine(av, nil, nil, nil, julToday)

	res, err := engine.GenerateForClient(context.Background(), "c1", "admin1", models.SuggestionConfig{DaysAhead: 14, MaxSuggestions: 5})
	if err != nil {
		t.Fatalf("transient failures should classify, not propagate: %v", err)
	}
	if res.Status != models.BulkStatusError || res.Reason == "" {
		t.Fatalf("got %s (%s), want error with a captured message", res.Status, res.Reason)
	}
}
