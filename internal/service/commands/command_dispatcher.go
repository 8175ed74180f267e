package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/domain/models"
	"github.com/mamadbah2/herd/internal/service/reporting"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not yet support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// HelpText lists the supported commands.
const HelpText = "Commands:\n" +
	"/report [start] [end] - herd movement between two dates (YYYY-MM-DD), defaults to this month\n" +
	"/groups [date] - head count per group, defaults to today"

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	MovementReport(ctx context.Context, start, end time.Time) (models.MovementReport, error)
	GroupListings(ctx context.Context, day time.Time) ([]models.GroupListing, error)
}

// Dispatcher executes parsed commands and renders the reply text.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	reporting ReportingAdapter
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a command dispatcher.
func NewService(reporting ReportingAdapter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		reporting: reporting,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleCommand runs the command and returns the reply to send back.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	today := models.DateOf(s.now())

	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Any("args", cmd.Args))

	switch cmd.Type {
	case models.CommandReport:
		start, end, err := reportWindow(cmd.Args, today)
		if err != nil {
			return "", err
		}
		report, err := s.reporting.MovementReport(ctx, start, end)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidWindow) {
				return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
			}
			return "", err
		}
		return reporting.FormatMovementSummary(report), nil
	case models.CommandGroups:
		day := today
		if len(cmd.Args) > 0 {
			parsed, err := models.ParseDate(cmd.Args[0])
			if err != nil {
				return "", ErrInvalidArguments
			}
			day = parsed
		}
		listings, err := s.reporting.GroupListings(ctx, day)
		if err != nil {
			return "", err
		}
		return reporting.FormatGroupCounts(day, listings), nil
	case models.CommandHelp:
		return HelpText, nil
	default:
		return "", ErrUnsupportedCommand
	}
}

// reportWindow resolves the optional start/end arguments. Without arguments
// the window runs from the first of the current month to today.
func reportWindow(args []string, today time.Time) (time.Time, time.Time, error) {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := today

	if len(args) > 2 {
		return time.Time{}, time.Time{}, ErrInvalidArguments
	}
	if len(args) > 0 {
		parsed, err := models.ParseDate(args[0])
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidArguments
		}
		start = parsed
	}
	if len(args) > 1 {
		parsed, err := models.ParseDate(args[1])
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidArguments
		}
		end = parsed
	}

	return start, end, nil
}
