package models

import "time"

// DateLayout is the calendar date format used on every boundary (HTTP, Sheets, CLI).
const DateLayout = "2006-01-02"

// Gender enumerates the recorded sex/stage of an animal.
type Gender string

const (
	GenderCow    Gender = "Cow"
	GenderHeifer Gender = "Heifer"
	GenderBull   Gender = "Bull"
)

// AcquisitionMethod describes how an animal entered the herd.
type AcquisitionMethod string

const (
	AcquisitionBirth    AcquisitionMethod = "Birth"
	AcquisitionPurchase AcquisitionMethod = "Purchase"
	AcquisitionGift     AcquisitionMethod = "Gift"
)

// LossMethod describes how an animal left the herd.
type LossMethod string

const (
	LossDeath    LossMethod = "Death"
	LossSold     LossMethod = "Sold"
	LossConsumed LossMethod = "Consumed"
	LossGifted   LossMethod = "Gifted"
)

// Animal is a single cattle record as stored by the farm registry.
type Animal struct {
	ID                string            `bson:"id" json:"id"`
	Type              string            `bson:"type" json:"type"`
	Number            string            `bson:"number" json:"number"`
	Name              string            `bson:"name" json:"name"`
	Gender            Gender            `bson:"gender" json:"gender"`
	Breed             string            `bson:"breed" json:"breed"`
	BirthDate         time.Time         `bson:"birth_date" json:"birth_date"`
	AcquisitionMethod AcquisitionMethod `bson:"acquisition_method" json:"acquisition_method"`
	LossMethod        LossMethod        `bson:"loss_method" json:"loss_method"`
	EntryDate         time.Time         `bson:"entry_date" json:"entry_date"`
	EndDate           *time.Time        `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Comments          string            `bson:"comments" json:"comments"`
	Deleted           bool              `bson:"deleted" json:"-"`
}

// Active reports whether the animal is still part of the herd on the given day.
func (a Animal) Active(day time.Time) bool {
	return a.EndDate == nil || DateOf(day).Before(DateOf(*a.EndDate))
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Day builds a calendar date at midnight UTC.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp. Timestamps
// keep the calendar date written in them.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return Day(t.Date()), nil
	}
	return time.Parse(DateLayout, value)
}
