package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// Accounting tallies a group's herd entries and exits by recorded reason.
type Accounting struct {
	filter Filter
	stats  models.AcquisitionLossStats
}

// NewAccounting builds an accounting calculator over the group's records.
func NewAccounting(group models.GroupName, records []models.Animal) *Accounting {
	return &Accounting{filter: NewFilter(group, records)}
}

// ComputeAcquisition counts entries in [start, end) by acquisition method.
// Methods other than Birth, Purchase and Gift are not counted.
func (a *Accounting) ComputeAcquisition(start, end time.Time) {
	a.stats.Birth, a.stats.Purchase, a.stats.Gift = 0, 0, 0

	for _, animal := range a.filter.ByEntryRange(start, end) {
		switch animal.AcquisitionMethod {
		case models.AcquisitionBirth:
			a.stats.Birth++
		case models.AcquisitionPurchase:
			a.stats.Purchase++
		case models.AcquisitionGift:
			a.stats.Gift++
		}
	}
}

// ComputeLoss counts exits in [start, end) by loss method.
// Methods other than Death, Sold, Consumed and Gifted are not counted.
func (a *Accounting) ComputeLoss(start, end time.Time) {
	a.stats.Death, a.stats.Sold, a.stats.Consumed, a.stats.Gifted = 0, 0, 0, 0

	for _, animal := range a.filter.ByExitRange(start, end) {
		switch animal.LossMethod {
		case models.LossDeath:
			a.stats.Death++
		case models.LossSold:
			a.stats.Sold++
		case models.LossConsumed:
			a.stats.Consumed++
		case models.LossGifted:
			a.stats.Gifted++
		}
	}
}

// Stats returns the tallies computed so far.
func (a *Accounting) Stats() models.AcquisitionLossStats {
	return a.stats
}
