package models

import "time"

// ExistingAppointment is a scheduled occupation of a client's (and
// optionally a practitioner's) time. Read-only to the suggestion engine,
// which uses it purely as an exclusion set.
type ExistingAppointment struct {
	ID             string    `bson:"id" json:"id"`
	ClientID       string    `bson:"clientId" json:"clientId"`
	PractitionerID string    `bson:"practitionerId,omitempty" json:"practitionerId,omitempty"`
	Date           string    `bson:"date" json:"date"`   // "2006-01-02"
	Start          int       `bson:"start" json:"start"` // minutes from midnight
	End            int       `bson:"end" json:"end"`     // minutes from midnight
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// Overlaps reports whether the appointment intersects the [start, end)
// minute range on the given date.
func (a ExistingAppointment) Overlaps(date string, start, end int) bool {
	if a.Date != date {
		return false
	}
	return a.Start < end && start < a.End
}
