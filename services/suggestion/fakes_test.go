package suggestion

import (
	"context"
	"errors"

	"clinicflow/models"
)

type fakeAvailabilityRepo struct {
	windows map[string][]models.AvailabilityWindow
	failFor string
}

func (f *fakeAvailabilityRepo) Create(ctx context.Context, w models.AvailabilityWindow) (string, error) {
	return w.ID, nil
}

func (f *fakeAvailabilityRepo) ListActiveByClient(ctx context.Context, clientID string) ([]models.AvailabilityWindow, error) {
	if clientID == f.failFor {
		return nil, errors.New("availability store unreachable")
	}
	return f.windows[clientID], nil
}

func (f *fakeAvailabilityRepo) ListActive(ctx context.Context) ([]models.AvailabilityWindow, error) {
	var all []models.AvailabilityWindow
	for _, ws := range f.windows {
		all = append(all, ws...)
	}
	return all, nil
}

func (f *fakeAvailabilityRepo) Deactivate(ctx context.Context, clientID, windowID string) error {
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[string][]models.ExistingAppointment
}

func (f *fakeAppointmentRepo) ListByClientInRange(ctx context.Context, clientID, startDate, endDate string) ([]models.ExistingAppointment, error) {
	var out []models.ExistingAppointment
	for _, a := range f.appointments[clientID] {
		if a.Date >= startDate && a.Date <= endDate {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSuggestionRepo struct {
	inserted      []models.SuggestedAppointment
	pending       map[string][]models.SuggestedAppointment
	insertFailFor string
	expired       int64
}

func (f *fakeSuggestionRepo) Insert(ctx context.Context, s models.SuggestedAppointment) error {
	if s.ClientID == f.insertFailFor {
		return errors.New("suggestion store rejected the write")
	}
	f.inserted = append(f.inserted, s)
	return nil
}

func (f *fakeSuggestionRepo) ListByClient(ctx context.Context, clientID string) ([]models.SuggestedAppointment, error) {
	var out []models.SuggestedAppointment
	for _, s := range f.inserted {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSuggestionRepo) ListAll(ctx context.Context) ([]models.SuggestedAppointment, error) {
	return f.inserted, nil
}

func (f *fakeSuggestionRepo) ListPendingByClient(ctx context.Context, clientID string) ([]models.SuggestedAppointment, error) {
	return f.pending[clientID], nil
}

func (f *fakeSuggestionRepo) UpdateStatus(ctx context.Context, clientID, suggestionID, status string) error {
	for i := range f.inserted {
		if f.inserted[i].ID == suggestionID && f.inserted[i].ClientID == clientID {
			f.inserted[i].Status = status
			return nil
		}
	}
	return errors.New("suggestion not found")
}

func (f *fakeSuggestionRepo) ExpirePendingBefore(ctx context.Context, cutoffDate string) (int64, error) {
	var n int64
	for i := range f.inserted {
		if f.inserted[i].Status == models.SuggestionPending && f.inserted[i].Date < cutoffDate {
			f.inserted[i].Status = models.SuggestionExpired
			n++
		}
	}
	f.expired += n
	return n, nil
}

func (f *fakeSuggestionRepo) CountsByClient(ctx context.Context) (map[string]models.SuggestionCounts, error) {
	counts := make(map[string]models.SuggestionCounts)
	for _, s := range f.inserted {
		c := counts[s.ClientID]
		c.Total++
		switch s.Status {
		case models.SuggestionPending:
			c.Pending++
		case models.SuggestionAccepted:
			c.Accepted++
		}
		counts[s.ClientID] = c
	}
	return counts, nil
}

type fakeClientRepo struct {
	clients      map[string]models.Client
	summaryCalls int
}

func (f *fakeClientRepo) GetByID(ctx context.Context, clientID string) (*models.Client, error) {
	c, ok := f.clients[clientID]
	if !ok {
		return nil, errors.New("client not found")
	}
	return &c, nil
}

func (f *fakeClientRepo) ListActive(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.clients)), nil
}

func (f *fakeClientRepo) ListWithSummary(ctx context.Context) ([]models.ClientSummary, error) {
	f.summaryCalls++
	var out []models.ClientSummary
	for _, c := range f.clients {
		out = append(out, models.ClientSummary{ClientID: c.ID, Name: c.Name, Email: c.Email})
	}
	return out, nil
}
