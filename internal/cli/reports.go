package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/herd/internal/domain/models"
	"github.com/mamadbah2/herd/internal/service/reporting"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Reporter is the subset of the reporting service used by the CLI.
type Reporter interface {
	MovementReport(ctx context.Context, start, end time.Time) (models.MovementReport, error)
	Archive(ctx context.Context, start, end time.Time) (models.MovementReport, error)
	GroupListings(ctx context.Context, day time.Time) ([]models.GroupListing, error)
}

func movementCmd(open Opener, opts *Options) *cobra.Command {
	var start, end, format string
	var archive bool

	c := &cobra.Command{
		Use:   "movement",
		Short: "Report group movement, acquisitions and losses between two dates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			startDate, err := models.ParseDate(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endDate, err := models.ParseDate(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			rep, cleanup, err := open(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer cleanup()

			generate := rep.MovementReport
			if archive {
				generate = rep.Archive
			}
			report, err := generate(cmd.Context(), startDate, endDate)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reporting.FormatMovementSummary(report))
			return err
		},
	}

	c.Flags().StringVar(&start, "start", "", "window start date (YYYY-MM-DD)")
	c.Flags().StringVar(&end, "end", "", "window end date (YYYY-MM-DD)")
	c.Flags().StringVarP(&format, "format", "f", formatText, "output format: text|json")
	c.Flags().BoolVar(&archive, "archive", false, "store the report in the configured archive")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}

func groupsCmd(open Opener, opts *Options) *cobra.Command {
	var date, format string
	var animals bool

	c := &cobra.Command{
		Use:   "groups",
		Short: "List the herd groups and estimated weights on a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			day := models.DateOf(time.Now())
			if date != "" {
				parsed, err := models.ParseDate(date)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				day = parsed
			}

			rep, cleanup, err := open(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer cleanup()

			listings, err := rep.GroupListings(cmd.Context(), day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, listings)
			}
			if _, err := fmt.Fprintln(out, reporting.FormatGroupCounts(day, listings)); err != nil {
				return err
			}
			if animals {
				return printAnimals(out, listings)
			}
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "classification date (YYYY-MM-DD, defaults to today)")
	c.Flags().StringVarP(&format, "format", "f", formatText, "output format: text|json")
	c.Flags().BoolVar(&animals, "animals", false, "list each animal with its estimated weight")
	return c
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("--format must be %q or %q, got %q", formatText, formatJSON, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAnimals(w io.Writer, listings []models.GroupListing) error {
	for _, l := range listings {
		if len(l.Animals) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", l.Group); err != nil {
			return err
		}
		for _, a := range l.Animals {
			status := "active"
			if a.Animal.EndDate != nil {
				status = "exited " + a.Animal.EndDate.Format(models.DateLayout)
			}
			if _, err := fmt.Fprintf(w, "- %s  %s  %.2f kg  (%s)\n", a.Animal.ID, a.Animal.Gender, a.WeightKg, status); err != nil {
				return err
			}
		}
	}
	return nil
}
