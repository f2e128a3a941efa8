// Package calendar is the deterministic holiday oracle for the suggestion
// engine. All computation derives from the integer year alone; the only
// state is a cache keyed by year, which cannot go stale because a year's
// holiday set never changes.
package calendar

import (
	"sync"
	"time"

	"clinicflow/models"
)

// Oracle answers holiday queries, memoizing per-year results.
type Oracle struct {
	mu    sync.RWMutex
	years map[int][]models.HolidayEntry
}

func NewOracle() *Oracle {
	return &Oracle{years: make(map[int][]models.HolidayEntry)}
}

// HolidaysForYear returns the full ordered holiday set for a year.
func (o *Oracle) HolidaysForYear(year int) ([]models.HolidayEntry, error) {
	o.mu.RLock()
	cached, ok := o.years[year]
	o.mu.RUnlock()
	if ok {
		return cached, nil
	}

	entries, err := buildYear(year)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.years[year] = entries
	o.mu.Unlock()
	return entries, nil
}

// IsHoliday returns the entry for the given date, or nil when the date is
// not a holiday. When several entries share a date, must-avoid entries win
// so callers checking exclusion see the blocking one.
func (o *Oracle) IsHoliday(date time.Time) (*models.HolidayEntry, error) {
	entries, err := o.HolidaysForYear(date.Year())
	if err != nil {
		return nil, err
	}

	key := date.Format(dateLayout)
	var found *models.HolidayEntry
	for i := range entries {
		if entries[i].Date != key {
			continue
		}
		if entries[i].MustAvoid() {
			return &entries[i], nil
		}
		if found == nil {
			found = &entries[i]
		}
	}
	return found, nil
}

// HolidaysInRange returns entries with start <= date <= end, in date order.
// When categories are given, only entries of those categories are returned.
func (o *Oracle) HolidaysInRange(start, end time.Time, categories ...models.HolidayCategory) ([]models.HolidayEntry, error) {
	startKey := start.Format(dateLayout)
	endKey := end.Format(dateLayout)

	var out []models.HolidayEntry
	for year := start.Year(); year <= end.Year(); year++ {
		entries, err := o.HolidaysForYear(year)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.Date < startKey || e.Date > endKey {
				continue
			}
			if len(categories) > 0 && !containsCategory(categories, e.Category) {
				continue
			}
			out = append(out, e)
		}
	}
	return out, nil
}

// UpcomingHolidays returns up to limit entries on or after the given date.
func (o *Oracle) UpcomingHolidays(from time.Time, limit int) ([]models.HolidayEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	fromKey := from.Format(dateLayout)
	var out []models.HolidayEntry
	for year := from.Year(); year <= MaxYear && len(out) < limit; year++ {
		entries, err := o.HolidaysForYear(year)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.Date < fromKey {
				continue
			}
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func containsCategory(categories []models.HolidayCategory, c models.HolidayCategory) bool {
	for _, want := range categories {
		if want == c {
			return true
		}
	}
	return false
}
