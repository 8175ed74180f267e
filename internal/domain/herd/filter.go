package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// Filter derives date-based views of one group's records.
type Filter struct {
	group   models.GroupName
	records []models.Animal
}

// NewFilter wraps the records classified into group.
func NewFilter(group models.GroupName, records []models.Animal) Filter {
	return Filter{group: group, records: records}
}

// Group returns the wrapped group name.
func (f Filter) Group() models.GroupName {
	return f.group
}

// Records returns the wrapped records.
func (f Filter) Records() []models.Animal {
	return f.records
}

// ActiveAt returns the records still in the herd on day.
func (f Filter) ActiveAt(day time.Time) []models.Animal {
	return activeAt(f.records, day)
}

// ActiveIn returns the records of this group inside snapshot that are still in the herd on day.
func (f Filter) ActiveIn(snapshot models.Snapshot, day time.Time) []models.Animal {
	return activeAt(snapshot[f.group], day)
}

// ByEntryRange returns the records whose entry date falls in [start, end).
func (f Filter) ByEntryRange(start, end time.Time) []models.Animal {
	out := []models.Animal{}
	for _, a := range f.records {
		if a.EntryDate.IsZero() {
			continue
		}
		if inRange(a.EntryDate, start, end) {
			out = append(out, a)
		}
	}
	return out
}

// ByExitRange returns the records whose end date falls in [start, end).
func (f Filter) ByExitRange(start, end time.Time) []models.Animal {
	out := []models.Animal{}
	for _, a := range f.records {
		if a.EndDate == nil {
			continue
		}
		if inRange(*a.EndDate, start, end) {
			out = append(out, a)
		}
	}
	return out
}

func activeAt(records []models.Animal, day time.Time) []models.Animal {
	out := []models.Animal{}
	for _, a := range records {
		if a.Active(day) {
			out = append(out, a)
		}
	}
	return out
}

func inRange(t, start, end time.Time) bool {
	d := models.DateOf(t)
	return !d.Before(models.DateOf(start)) && d.Before(models.DateOf(end))
}
