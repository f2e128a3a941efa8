package suggestion

import (
	"fmt"
	"sort"
	"time"

	"clinicflow/models"
)

const dateLayout = "2006-01-02"

// occurrence is one concrete date+time candidate materialized from an
// availability window, before exclusion filtering.
type occurrence struct {
	Date      string // "2006-01-02"
	Start     int    // minutes from midnight
	End       int
	Weight    string
	Rationale string
}

// dedupeWindows merges overlapping windows that recur on the same day so a
// client with redundant availability does not generate duplicate
// candidates. The merged range keeps the strongest preference weight.
func dedupeWindows(windows []models.AvailabilityWindow) []models.AvailabilityWindow {
	byDay := make(map[string][]models.AvailabilityWindow)
	var keys []string
	for _, w := range windows {
		key := w.Date
		if w.Weekday != nil {
			key = fmt.Sprintf("weekday:%d", int(*w.Weekday))
		}
		if _, seen := byDay[key]; !seen {
			keys = append(keys, key)
		}
		byDay[key] = append(byDay[key], w)
	}
	sort.Strings(keys)

	var out []models.AvailabilityWindow
	for _, key := range keys {
		group := byDay[key]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Start == group[j].Start {
				return group[i].End < group[j].End
			}
			return group[i].Start < group[j].Start
		})
		for _, w := range group {
			if len(out) > 0 {
				last := &out[len(out)-1]
				sameDay := (last.Date != "" && last.Date == w.Date) ||
					(last.Weekday != nil && w.Weekday != nil && *last.Weekday == *w.Weekday)
				if sameDay && w.Start < last.End {
					if w.End > last.End {
						last.End = w.End
					}
					if models.WeightRank(w.Weight) > models.WeightRank(last.Weight) {
						last.Weight = w.Weight
					}
					continue
				}
			}
			out = append(out, w)
		}
	}
	return out
}

// materialize expands windows into concrete occurrences over the horizon
// [today, today+daysAhead]. Occurrences already started today are dropped.
// Overlaps on the same date are merged, so a weekly window and a one-off
// window covering the same time never yield duplicate candidates.
func materialize(windows []models.AvailabilityWindow, today time.Time, daysAhead int) []occurrence {
	todayKey := today.Format(dateLayout)
	minutesNow := today.Hour()*60 + today.Minute()

	var out []occurrence
	for delta := 0; delta <= daysAhead; delta++ {
		day := today.AddDate(0, 0, delta)
		key := day.Format(dateLayout)
		var dayOccs []occurrence
		for _, w := range windows {
			recurring := w.Weekday != nil && *w.Weekday == day.Weekday()
			oneOff := w.Date != "" && w.Date == key
			if !recurring && !oneOff {
				continue
			}
			if key == todayKey && w.Start <= minutesNow {
				continue
			}
			dayOccs = append(dayOccs, occurrence{
				Date:      key,
				Start:     w.Start,
				End:       w.End,
				Weight:    w.Weight,
				Rationale: describeWindow(w),
			})
		}
		out = append(out, mergeDayOccurrences(dayOccs)...)
	}
	return out
}

// mergeDayOccurrences collapses overlapping candidates on one date, keeping
// the strongest weight and its rationale. The caller guarantees all entries
// share the same date.
func mergeDayOccurrences(occs []occurrence) []occurrence {
	if len(occs) < 2 {
		return occs
	}
	sort.Slice(occs, func(i, j int) bool {
		if occs[i].Start == occs[j].Start {
			return occs[i].End < occs[j].End
		}
		return occs[i].Start < occs[j].Start
	})

	merged := occs[:1]
	for _, occ := range occs[1:] {
		last := &merged[len(merged)-1]
		if occ.Start < last.End {
			if occ.End > last.End {
				last.End = occ.End
			}
			if models.WeightRank(occ.Weight) > models.WeightRank(last.Weight) {
				last.Weight = occ.Weight
				last.Rationale = occ.Rationale
			}
			continue
		}
		merged = append(merged, occ)
	}
	return merged
}

// sortOccurrences orders candidates by soonest date, then stronger
// preference, then earlier time of day. The full key makes repeated runs
// over identical input reproducible regardless of insertion order.
func sortOccurrences(occs []occurrence) {
	sort.Slice(occs, func(i, j int) bool {
		if occs[i].Date != occs[j].Date {
			return occs[i].Date < occs[j].Date
		}
		ri, rj := models.WeightRank(occs[i].Weight), models.WeightRank(occs[j].Weight)
		if ri != rj {
			return ri > rj
		}
		if occs[i].Start != occs[j].Start {
			return occs[i].Start < occs[j].Start
		}
		return occs[i].End < occs[j].End
	})
}

func describeWindow(w models.AvailabilityWindow) string {
	span := fmt.Sprintf("%s-%s", minutesToClock(w.Start), minutesToClock(w.End))
	if w.Weekday != nil {
		return fmt.Sprintf("weekly availability %s %s (%s preference)", w.Weekday.String(), span, w.Weight)
	}
	return fmt.Sprintf("one-off availability %s %s (%s preference)", w.Date, span, w.Weight)
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
