package herd

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// ErrInvalidGender is returned by the weight estimate for genders other than Cow, Heifer and Bull.
var ErrInvalidGender = errors.New("invalid gender: must be Heifer, Cow or Bull")

// Growth model parameters, in kilograms.
const (
	FemaleBirthWeight = 35.0
	MaleBirthWeight   = 40.0
	FemaleMaxWeight   = 550.0
	MaleMaxWeight     = 900.0
	DailyWeightGain   = 0.8
)

// EstimateWeight returns the linear-growth weight estimate of the animal on day.
func EstimateWeight(animal models.Animal, day time.Time) (float64, error) {
	birth := models.DateOf(animal.BirthDate)
	day = models.DateOf(day)

	days := 0.0
	if day.After(birth) {
		days = math.Floor(day.Sub(birth).Hours() / 24)
	}

	switch animal.Gender {
	case models.GenderHeifer, models.GenderCow:
		return math.Min(FemaleBirthWeight+days*DailyWeightGain, FemaleMaxWeight), nil
	case models.GenderBull:
		return math.Min(MaleBirthWeight+days*DailyWeightGain, MaleMaxWeight), nil
	default:
		return 0, fmt.Errorf("animal %s gender %q: %w", animal.ID, animal.Gender, ErrInvalidGender)
	}
}

// WeighSnapshot annotates every classified record with its estimated weight
// on day, rounded to two decimals.
func WeighSnapshot(snapshot models.Snapshot, day time.Time) ([]models.GroupListing, error) {
	listings := make([]models.GroupListing, 0, len(snapshot))

	for _, name := range models.GroupNames() {
		listing := models.GroupListing{Group: name, Animals: []models.WeightedAnimal{}}
		for _, animal := range snapshot[name] {
			weight, err := EstimateWeight(animal, day)
			if err != nil {
				return nil, err
			}
			listing.Animals = append(listing.Animals, models.WeightedAnimal{
				Animal:   animal,
				WeightKg: math.Round(weight*100) / 100,
			})
			if animal.EndDate == nil {
				listing.ActiveCount++
			}
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
