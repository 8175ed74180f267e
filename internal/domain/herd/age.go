// Package herd classifies cattle into life-stage groups and reconciles group
// populations between two reference dates.
package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// UndefinedAge is returned when the reference date precedes the birth date.
const UndefinedAge = -1

// MonthsBetween returns the number of whole calendar months from birth to ref.
// When the birth day does not exist in the target month it is clamped to the
// month's last day, so 31 Jan to 28 Feb counts as one month.
func MonthsBetween(birth, ref time.Time) int {
	b := models.DateOf(birth)
	r := models.DateOf(ref)
	if r.Before(b) {
		return UndefinedAge
	}

	months := (r.Year()-b.Year())*12 + int(r.Month()) - int(b.Month())
	if addMonthsClamped(b, months).After(r) {
		months--
	}
	return months
}

func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
