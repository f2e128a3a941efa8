package calendar

import (
	"sort"
	"time"

	"clinicflow/models"
)

const dateLayout = "2006-01-02"

// fixedHoliday is a (month, day) pair observed every year.
type fixedHoliday struct {
	Month    time.Month
	Day      int
	Name     string
	Category models.HolidayCategory
}

// Fixed-date national and church holidays, plus the municipal and
// informational dates the clinic observes.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Ano Novo", models.HolidayCivil},
	{time.March, 19, "Dia do Pai", models.HolidayObservance},
	{time.April, 25, "Dia da Liberdade", models.HolidayCivil},
	{time.May, 1, "Dia do Trabalhador", models.HolidayCivil},
	{time.June, 1, "Dia da Criança", models.HolidayObservance},
	{time.June, 10, "Dia de Portugal", models.HolidayCivil},
	{time.June, 13, "Santo António", models.HolidayOptional},
	{time.August, 15, "Assunção de Nossa Senhora", models.HolidayReligious},
	{time.October, 5, "Implantação da República", models.HolidayCivil},
	{time.November, 1, "Dia de Todos os Santos", models.HolidayReligious},
	{time.December, 1, "Restauração da Independência", models.HolidayCivil},
	{time.December, 8, "Imaculada Conceição", models.HolidayReligious},
	{time.December, 25, "Natal", models.HolidayReligious},
}

// movableFeast is a holiday offset in days from the Easter anchor.
type movableFeast struct {
	Offset   int
	Name     string
	Category models.HolidayCategory
}

var movableFeasts = []movableFeast{
	{-47, "Carnaval", models.HolidayOptional},
	{-2, "Sexta-feira Santa", models.HolidayReligious},
	{0, "Domingo de Páscoa", models.HolidayReligious},
	{60, "Corpo de Deus", models.HolidayReligious},
}

// buildYear computes the full holiday set for one year. Pure function of
// the integer year; the same input always yields the same ordered slice.
func buildYear(year int) ([]models.HolidayEntry, error) {
	easter, err := EasterSunday(year)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HolidayEntry, 0, len(fixedHolidays)+len(movableFeasts)+3)

	for _, fh := range fixedHolidays {
		d := time.Date(year, fh.Month, fh.Day, 0, 0, 0, 0, time.UTC)
		entries = append(entries, models.HolidayEntry{
			Date:     d.Format(dateLayout),
			Name:     fh.Name,
			Category: fh.Category,
		})
	}

	for _, mf := range movableFeasts {
		d := easter.AddDate(0, 0, mf.Offset)
		entries = append(entries, models.HolidayEntry{
			Date:     d.Format(dateLayout),
			Name:     mf.Name,
			Category: mf.Category,
		})
	}

	// Seasonal dates: DST transitions and Mother's Day.
	entries = append(entries,
		models.HolidayEntry{
			Date:     lastSundayOf(year, time.March).Format(dateLayout),
			Name:     "Mudança para a hora de verão",
			Category: models.HolidayTimeChange,
		},
		models.HolidayEntry{
			Date:     lastSundayOf(year, time.October).Format(dateLayout),
			Name:     "Mudança para a hora de inverno",
			Category: models.HolidayTimeChange,
		},
		models.HolidayEntry{
			Date:     firstSundayOf(year, time.May).Format(dateLayout),
			Name:     "Dia da Mãe",
			Category: models.HolidayObservance,
		},
	)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date == entries[j].Date {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}
