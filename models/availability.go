package models

import "time"

// Availability weight levels, highest first.
const (
	WeightHigh   = "high"
	WeightMedium = "medium"
	WeightLow    = "low"
)

// AvailabilityWindow represents a client's recurring (or one-off) block of
// free time that the suggestion engine may propose appointments into.
type AvailabilityWindow struct {
	ID       string `bson:"id" json:"id"`
	ClientID string `bson:"clientId" json:"clientId"`

	// Weekday is set for weekly recurring windows. Date is set instead for
	// an explicit one-off date ("2006-01-02"). Exactly one of the two applies.
	Weekday *time.Weekday `bson:"weekday,omitempty" json:"weekday,omitempty"`
	Date    string        `bson:"date,omitempty" json:"date,omitempty"`

	Start  int    `bson:"start" json:"start"` // minutes from midnight
	End    int    `bson:"end" json:"end"`     // minutes from midnight
	Weight string `bson:"weight" json:"weight"`

	Active    bool      `bson:"active" json:"active"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// WeightRank maps a preference weight to a sortable rank; higher is better.
// Unknown weights rank lowest so malformed data never outranks real input.
func WeightRank(weight string) int {
	switch weight {
	case WeightHigh:
		return 3
	case WeightMedium:
		return 2
	case WeightLow:
		return 1
	}
	return 0
}

// CreateAvailabilityRequest defines the payload for creating a window.
type CreateAvailabilityRequest struct {
	Weekday *int   `json:"weekday" binding:"omitempty,min=0,max=6"`
	Date    string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Start   int    `json:"start" binding:"min=0,max=1439"`
	End     int    `json:"end" binding:"required,min=1,max=1440"`
	Weight  string `json:"weight" binding:"required,oneof=high medium low"`
}
