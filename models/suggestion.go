package models

import "time"

// Suggestion lifecycle states.
const (
	SuggestionPending  = "pending"
	SuggestionAccepted = "accepted"
	SuggestionRejected = "rejected"
	SuggestionExpired  = "expired"
)

// SuggestedAppointment is a candidate slot proposed by the suggestion
// engine. It is created in state "pending" and moved to accepted, rejected
// or expired by the client-facing flow or the expiry worker.
type SuggestedAppointment struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	Date        string    `bson:"date" json:"date"`   // "2006-01-02"
	Start       int       `bson:"start" json:"start"` // minutes from midnight
	End         int       `bson:"end" json:"end"`     // minutes from midnight
	Weight      string    `bson:"weight" json:"weight"`
	Rationale   string    `bson:"rationale,omitempty" json:"rationale,omitempty"`
	RequestedBy string    `bson:"requestedBy" json:"requestedBy"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	ResolvedAt  time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

// SuggestionCounts summarizes one client's suggestion history.
type SuggestionCounts struct {
	Total    int `bson:"total" json:"total"`
	Pending  int `bson:"pending" json:"pending"`
	Accepted int `bson:"accepted" json:"accepted"`
}

// SuggestionConfig bounds a single generation run.
type SuggestionConfig struct {
	DaysAhead      int `json:"daysAhead" binding:"required,min=7,max=60"`
	MaxSuggestions int `json:"maxSuggestions" binding:"required,min=1,max=10"`
}
