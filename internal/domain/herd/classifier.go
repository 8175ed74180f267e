package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

const (
	youngAgeMonths = 12
	adultAgeMonths = 24
)

// Classify partitions the population into life-stage groups as of ref.
// Animals that entered on or after ref, are not born yet, or carry an unknown
// gender are left out of every group. Every group key is present in the result.
func Classify(population []models.Animal, ref time.Time) models.Snapshot {
	ref = models.DateOf(ref)

	snapshot := make(models.Snapshot, len(models.GroupNames()))
	for _, name := range models.GroupNames() {
		snapshot[name] = []models.Animal{}
	}

	for _, animal := range population {
		name, ok := groupOf(animal, ref)
		if !ok {
			continue
		}
		snapshot[name] = append(snapshot[name], animal)
	}

	return snapshot
}

func groupOf(animal models.Animal, ref time.Time) (models.GroupName, bool) {
	if animal.EntryDate.IsZero() || !models.DateOf(animal.EntryDate).Before(ref) {
		return "", false
	}

	age := MonthsBetween(animal.BirthDate, ref)
	if age < 0 {
		return "", false
	}

	switch animal.Gender {
	case models.GenderCow:
		return models.GroupCows, true
	case models.GenderHeifer:
		switch {
		case age < youngAgeMonths:
			return models.GroupCalves, true
		case age < adultAgeMonths:
			return models.GroupYoungHeifer, true
		default:
			return models.GroupAdultHeifer, true
		}
	case models.GenderBull:
		switch {
		case age < youngAgeMonths:
			return models.GroupCalves, true
		case age < adultAgeMonths:
			return models.GroupYoungBull, true
		default:
			return models.GroupAdultBull, true
		}
	default:
		return "", false
	}
}
