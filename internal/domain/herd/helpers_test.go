package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return models.Day(y, m, d)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func animal(id string, gender models.Gender, birth, entry time.Time) models.Animal {
	return models.Animal{
		ID:                id,
		Type:              "Cattle",
		Number:            id,
		Gender:            gender,
		Breed:             "Ndama",
		BirthDate:         birth,
		AcquisitionMethod: models.AcquisitionBirth,
		EntryDate:         entry,
	}
}

func ids(records []models.Animal) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
