package models

// HolidayCategory classifies an entry produced by the calendar service.
type HolidayCategory string

const (
	// HolidayCivil is a fixed-date civil holiday (e.g. New Year's Day).
	HolidayCivil HolidayCategory = "civil"
	// HolidayReligious is a movable feast derived from the Easter anchor.
	HolidayReligious HolidayCategory = "religious"
	// HolidayOptional is a municipal or optional observance that still
	// blocks scheduling.
	HolidayOptional HolidayCategory = "optional"
	// HolidayObservance is informational only and never blocks scheduling.
	HolidayObservance HolidayCategory = "observance"
	// HolidayTimeChange marks a daylight-saving transition date.
	HolidayTimeChange HolidayCategory = "timeChange"
)

// HolidayEntry is a single calendar date with its display name and category.
// Entries are derived deterministically from the year and never persisted
// as authoritative state.
type HolidayEntry struct {
	Date     string          `json:"date"` // "2006-01-02"
	Name     string          `json:"name"`
	Category HolidayCategory `json:"category"`
}

// MustAvoid reports whether the entry excludes its date from candidate
// generation. Informational observances and time changes do not.
func (h HolidayEntry) MustAvoid() bool {
	switch h.Category {
	case HolidayCivil, HolidayReligious, HolidayOptional:
		return true
	}
	return false
}
