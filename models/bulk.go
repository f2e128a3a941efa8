package models

// Per-client outcome classifications for a bulk run.
const (
	BulkStatusSuccess = "success"
	BulkStatusSkipped = "skipped"
	BulkStatusError   = "error"
)

// Dedup policies for repeated bulk runs over the same horizon.
const (
	// DedupeNone preserves the historical behavior: re-runs may create
	// duplicate pending suggestions.
	DedupeNone = "none"
	// DedupeSkipClient skips any client that already has pending suggestions.
	DedupeSkipClient = "skipClient"
	// DedupeSlot drops individual candidates that match a pending
	// suggestion's (client, date, start).
	DedupeSlot = "dedupeSlot"
)

// BulkConfig drives one bulk generation run.
type BulkConfig struct {
	SuggestionConfig
	DedupePolicy string `json:"dedupePolicy" binding:"omitempty,oneof=none skipClient dedupeSlot"`
}

// BulkGenerationResult records the outcome for one processed client.
// It exists only for the duration of a run and is never persisted.
type BulkGenerationResult struct {
	ClientID         string `json:"clientId"`
	ClientName       string `json:"clientName"`
	Status           string `json:"status"`
	SuggestionsCount int    `json:"suggestionsCount"`
	Reason           string `json:"reason,omitempty"`
}

// BulkSummary aggregates a finished run.
type BulkSummary struct {
	Success          int `json:"success"`
	Skipped          int `json:"skipped"`
	Errors           int `json:"errors"`
	TotalSuggestions int `json:"totalSuggestions"`
}
