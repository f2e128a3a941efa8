package calendar

import (
	"fmt"
	"time"
)

// Gregorian years for which the computus below is defined.
const (
	MinYear = 1583
	MaxYear = 4099
)

// YearOutOfRangeError is returned for years outside [MinYear, MaxYear].
type YearOutOfRangeError struct {
	Year int
}

func (e *YearOutOfRangeError) Error() string {
	return fmt.Sprintf("year %d outside supported range %d-%d", e.Year, MinYear, MaxYear)
}

// EasterSunday computes the date of Easter for the given year using the
// Meeus/Jones/Butcher congruence method. Integer arithmetic only.
func EasterSunday(year int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, &YearOutOfRangeError{Year: year}
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// lastSundayOf walks backward from the month's last day until it hits a
// Sunday.
func lastSundayOf(year int, month time.Month) time.Time {
	// Day zero of the next month is the last day of this one.
	d := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// firstSundayOf walks forward from the 1st until it hits a Sunday.
func firstSundayOf(year int, month time.Month) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
