package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/herd/internal/domain/herd"
	"github.com/mamadbah2/herd/internal/domain/models"
	"github.com/mamadbah2/herd/internal/observability"
)

// ErrInvalidWindow indicates a report window whose start is after its end.
var ErrInvalidWindow = errors.New("start date must not be after end date")

// PopulationSource returns every non-deleted animal of the register.
type PopulationSource interface {
	FetchPopulation(ctx context.Context) ([]models.Animal, error)
}

// ReportStore archives generated reports.
type ReportStore interface {
	SaveMovementReport(ctx context.Context, report models.MovementReport) error
}

// Service produces herd movement reports from a population source.
type Service struct {
	source PopulationSource
	store  ReportStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance. store may be nil, in
// which case Archive only generates.
func NewService(source PopulationSource, store ReportStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, store: store, logger: logger, now: time.Now}
}

// MovementReport computes the livestock movement report for [start, end).
func (s *Service) MovementReport(ctx context.Context, start, end time.Time) (models.MovementReport, error) {
	start, end = models.DateOf(start), models.DateOf(end)
	if start.After(end) {
		return models.MovementReport{}, ErrInvalidWindow
	}

	began := s.now()

	// One population read per reference date.
	var startPopulation, endPopulation []models.Animal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		startPopulation, err = s.source.FetchPopulation(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		endPopulation, err = s.source.FetchPopulation(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		observability.RecordReportFailed()
		return models.MovementReport{}, fmt.Errorf("load cattle population: %w", err)
	}
	observability.RecordPopulationSize(len(endPopulation))

	report := herd.Generate(startPopulation, start, endPopulation, end)
	report.GeneratedAt = s.now().UTC()

	observability.RecordReportGenerated(report, s.now().Sub(began))
	s.logger.Info("movement report generated",
		zap.String("start", start.Format(models.DateLayout)),
		zap.String("end", end.Format(models.DateLayout)),
		zap.Int("population", len(endPopulation)))

	return report, nil
}

// Archive generates the report for [start, end) and stores it.
func (s *Service) Archive(ctx context.Context, start, end time.Time) (models.MovementReport, error) {
	report, err := s.MovementReport(ctx, start, end)
	if err != nil {
		return models.MovementReport{}, err
	}

	if s.store == nil {
		s.logger.Debug("no report store configured, skipping archive")
		return report, nil
	}

	if err := s.store.SaveMovementReport(ctx, report); err != nil {
		return models.MovementReport{}, fmt.Errorf("archive movement report: %w", err)
	}
	return report, nil
}

// GroupListings classifies the herd as of day and annotates each animal with its estimated weight.
func (s *Service) GroupListings(ctx context.Context, day time.Time) ([]models.GroupListing, error) {
	day = models.DateOf(day)

	population, err := s.source.FetchPopulation(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cattle population: %w", err)
	}

	// Classify drops unknown genders, so ErrInvalidGender only surfaces if the
	// two stages disagree on the gender set.
	listings, err := herd.WeighSnapshot(herd.Classify(population, day), day)
	if err != nil {
		return nil, fmt.Errorf("estimate weights: %w", err)
	}
	return listings, nil
}

// FormatMovementSummary renders a report as a short plain-text message.
func FormatMovementSummary(report models.MovementReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Herd movement (%s-%s)", report.StartDate.Format(models.DateLayout), report.EndDate.Format(models.DateLayout))

	for _, g := range report.Groups {
		fmt.Fprintf(&b, "\n%s: %d -> %d (%+d)", g.Group, g.Stats.StartCount, g.Stats.EndCount, g.Stats.Difference)

		var parts []string
		if n := g.AcquisitionLoss.Acquisitions(); n > 0 {
			parts = append(parts, fmt.Sprintf("in %d (birth %d, purchase %d, gift %d)", n, g.AcquisitionLoss.Birth, g.AcquisitionLoss.Purchase, g.AcquisitionLoss.Gift))
		}
		if n := g.AcquisitionLoss.Losses(); n > 0 {
			parts = append(parts, fmt.Sprintf("out %d (death %d, sold %d, consumed %d, gifted %d)", n, g.AcquisitionLoss.Death, g.AcquisitionLoss.Sold, g.AcquisitionLoss.Consumed, g.AcquisitionLoss.Gifted))
		}
		if g.Movement.MovedIn > 0 || g.Movement.MovedOut > 0 {
			parts = append(parts, fmt.Sprintf("moved +%d/-%d", g.Movement.MovedIn, g.Movement.MovedOut))
		}
		if len(parts) > 0 {
			b.WriteString(", ")
			b.WriteString(strings.Join(parts, ", "))
		}
	}

	return b.String()
}

// FormatGroupCounts renders per-group active head counts.
func FormatGroupCounts(day time.Time, listings []models.GroupListing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Herd groups on %s", day.Format(models.DateLayout))
	total := 0
	for _, l := range listings {
		fmt.Fprintf(&b, "\n%s: %d", l.Group, l.ActiveCount)
		total += l.ActiveCount
	}
	fmt.Fprintf(&b, "\nTotal: %d", total)
	return b.String()
}
