package models

import "time"

// GroupStats holds head counts at both ends of the reporting window.
type GroupStats struct {
	StartCount int `bson:"start_count" json:"start_count"`
	EndCount   int `bson:"end_count" json:"end_count"`
	Difference int `bson:"difference" json:"difference"`
}

// AcquisitionLossStats tallies herd entries and exits by recorded reason.
type AcquisitionLossStats struct {
	Birth    int `bson:"birth" json:"birth"`
	Purchase int `bson:"purchase" json:"purchase"`
	Gift     int `bson:"gift" json:"gift"`
	Death    int `bson:"death" json:"death"`
	Sold     int `bson:"sold" json:"sold"`
	Consumed int `bson:"consumed" json:"consumed"`
	Gifted   int `bson:"gifted" json:"gifted"`
}

// Acquisitions returns the total of tracked entry reasons.
func (s AcquisitionLossStats) Acquisitions() int {
	return s.Birth + s.Purchase + s.Gift
}

// Losses returns the total of tracked exit reasons.
func (s AcquisitionLossStats) Losses() int {
	return s.Death + s.Sold + s.Consumed + s.Gifted
}

// MovementStats counts animals inferred to have changed group.
type MovementStats struct {
	MovedIn  int `bson:"moved_in" json:"moved_in"`
	MovedOut int `bson:"moved_out" json:"moved_out"`
}

// GroupReport aggregates every figure computed for one group.
type GroupReport struct {
	Group           GroupName            `bson:"group" json:"group"`
	Stats           GroupStats           `bson:"stats" json:"stats"`
	AcquisitionLoss AcquisitionLossStats `bson:"acquisition_loss" json:"acquisition_loss"`
	Movement        MovementStats        `bson:"movement" json:"movement"`
}

// MovementReport is the livestock movement report for a date window.
type MovementReport struct {
	StartDate   time.Time     `bson:"start_date" json:"start_date"`
	EndDate     time.Time     `bson:"end_date" json:"end_date"`
	Groups      []GroupReport `bson:"groups" json:"groups"`
	GeneratedAt time.Time     `bson:"generated_at" json:"generated_at"`
}

// Lookup returns the report of the named group.
func (r MovementReport) Lookup(name GroupName) (GroupReport, bool) {
	for _, g := range r.Groups {
		if g.Group == name {
			return g, true
		}
	}
	return GroupReport{}, false
}
