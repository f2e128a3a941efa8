package models

import "time"

// Client is the minimal client record the engine needs.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ClientSummary is the roster view with availability and suggestion counts,
// refreshed after each bulk run and cached.
type ClientSummary struct {
	ClientID                string `bson:"id" json:"clientId"`
	Name                    string `bson:"name" json:"name"`
	Email                   string `bson:"email" json:"email"`
	ActiveAvailabilityCount int    `bson:"activeAvailabilityCount" json:"activeAvailabilityCount"`
	TotalSuggestionsCount   int    `bson:"totalSuggestionsCount" json:"totalSuggestionsCount"`
}
