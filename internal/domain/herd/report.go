package herd

import (
	"time"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// Generate builds the movement report for [startDate, endDate) from the
// populations read for each reference date. Each group's own records come
// from the end snapshot.
func Generate(startPopulation []models.Animal, startDate time.Time, endPopulation []models.Animal, endDate time.Time) models.MovementReport {
	startDate = models.DateOf(startDate)
	endDate = models.DateOf(endDate)

	startSnapshot := Classify(startPopulation, startDate)
	endSnapshot := Classify(endPopulation, endDate)

	report := models.MovementReport{
		StartDate: startDate,
		EndDate:   endDate,
		Groups:    make([]models.GroupReport, 0, len(endSnapshot)),
	}

	for _, name := range models.GroupNames() {
		records := endSnapshot[name]

		stats := NewStatistics(name, records)
		stats.ComputeStart(startSnapshot, startDate)
		stats.ComputeEnd(endSnapshot, endDate)
		stats.ComputeDifference()

		accounting := NewAccounting(name, records)
		accounting.ComputeAcquisition(startDate, endDate)
		accounting.ComputeLoss(startDate, endDate)

		reconciler := NewReconciler(name, records)
		reconciler.Compute(startSnapshot, startDate, endSnapshot, endDate)

		report.Groups = append(report.Groups, models.GroupReport{
			Group:           name,
			Stats:           stats.Stats(),
			AcquisitionLoss: accounting.Stats(),
			Movement:        reconciler.Stats(),
		})
	}

	return report
}
