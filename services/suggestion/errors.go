package suggestion

import "fmt"

// Skip reasons. The two "zero candidates" cases are deliberately distinct:
// a client with no availability needs onboarding, a client whose candidates
// were all excluded needs a wider horizon.
const (
	ReasonNoAvailability = "no active availability"
	ReasonNoOpenSlots    = "no open slots in horizon"
	ReasonPendingExist   = "pending suggestions already exist"
)

// ConfigError signals an invalid generation request. It aborts the whole
// operation before anything is persisted.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigError(msg string) error {
	return &ConfigError{
		Code:    "configError",
		Message: msg,
	}
}

// Operational bounds for a generation run.
const (
	MinDaysAhead      = 7
	MaxDaysAhead      = 60
	MinMaxSuggestions = 1
	MaxMaxSuggestions = 10
)
