package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/config"
	"github.com/mamadbah2/herd/internal/domain/models"
	"github.com/mamadbah2/herd/internal/service/reporting"
	"github.com/mamadbah2/herd/internal/service/whatsapp"
)

// ReportArchiver generates and stores a movement report.
type ReportArchiver interface {
	Archive(ctx context.Context, start, end time.Time) (models.MovementReport, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc ReportArchiver
	messagingSvc whatsapp.MessagingService
	cfg          config.Config
	loc          *time.Location
	logger       *zap.Logger
	now          func() time.Time
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
func NewScheduler(cfg config.Config, reportingSvc ReportArchiver, messagingSvc whatsapp.MessagingService, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Reporting.Location()
	if err != nil {
		return nil, fmt.Errorf("load scheduler timezone: %w", err)
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		messagingSvc: messagingSvc,
		cfg:          cfg,
		loc:          loc,
		logger:       logger,
		now:          time.Now,
	}, nil
}

// Start registers the monthly report job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.runMonthlyReport); err != nil {
		return fmt.Errorf("schedule monthly report: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runMonthlyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.sendMonthlyReport(ctx); err != nil {
		s.logger.Error("monthly report failed", zap.Error(err))
	}
}

func (s *Scheduler) sendMonthlyReport(ctx context.Context) error {
	start, end := previousMonthWindow(s.now().In(s.loc))
	s.logger.Info("generating monthly report",
		zap.String("start", start.Format(models.DateLayout)),
		zap.String("end", end.Format(models.DateLayout)))

	report, err := s.reportingSvc.Archive(ctx, start, end)
	if err != nil {
		return fmt.Errorf("archive monthly report: %w", err)
	}

	if !s.cfg.WhatsApp.Enabled() || s.cfg.WhatsApp.ManagerID == "" || s.messagingSvc == nil {
		s.logger.Debug("monthly report archived, whatsapp delivery not configured")
		return nil
	}

	req := models.OutboundMessageRequest{
		To:      s.cfg.WhatsApp.ManagerID,
		Message: reporting.FormatMovementSummary(report),
	}
	if err := s.messagingSvc.SendOutbound(ctx, req); err != nil {
		return fmt.Errorf("send monthly report: %w", err)
	}

	s.logger.Info("monthly report sent successfully")
	return nil
}

// previousMonthWindow returns [first day of last month, first day of this month).
func previousMonthWindow(now time.Time) (time.Time, time.Time) {
	end := models.Day(now.Year(), now.Month(), 1)
	return end.AddDate(0, -1, 0), end
}
