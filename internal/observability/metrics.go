package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mamadbah2/herd/internal/domain/models"
)

const namespace = "herd_reports"

var (
	reportsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generated_total",
		Help:      "Movement reports generated, by outcome.",
	}, []string{"outcome"})
	reportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Time spent fetching populations and computing a movement report.",
		Buckets:   prometheus.DefBuckets,
	})
	populationSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "population_size",
		Help:      "Number of non-deleted animals in the most recent population read.",
	})
	movedAnimals = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moved_animals_total",
		Help:      "Animals inferred to have changed group, by group and direction.",
	}, []string{"group", "direction"})
)

func init() {
	prometheus.MustRegister(reportsGenerated, reportDuration, populationSize, movedAnimals)
}

// RecordReportGenerated records a successful report and its per-group movement.
func RecordReportGenerated(report models.MovementReport, elapsed time.Duration) {
	reportsGenerated.WithLabelValues("success").Inc()
	reportDuration.Observe(elapsed.Seconds())
	for _, g := range report.Groups {
		movedAnimals.WithLabelValues(string(g.Group), "in").Add(float64(g.Movement.MovedIn))
		movedAnimals.WithLabelValues(string(g.Group), "out").Add(float64(g.Movement.MovedOut))
	}
}

// RecordReportFailed increments the failure counter.
func RecordReportFailed() {
	reportsGenerated.WithLabelValues("failure").Inc()
}

// RecordPopulationSize updates the population gauge.
func RecordPopulationSize(n int) {
	populationSize.Set(float64(n))
}
