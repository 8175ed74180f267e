package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herd/internal/domain/models"
)

type stubReporter struct {
	start, end time.Time
	day        time.Time
	archived   bool
	err        error
}

func (s *stubReporter) MovementReport(_ context.Context, start, end time.Time) (models.MovementReport, error) {
	s.start, s.end = start, end
	if s.err != nil {
		return models.MovementReport{}, s.err
	}
	return models.MovementReport{
		StartDate: start,
		EndDate:   end,
		Groups: []models.GroupReport{{
			Group: models.GroupCows,
			Stats: models.GroupStats{StartCount: 5, EndCount: 6, Difference: 1},
		}},
	}, nil
}

func (s *stubReporter) Archive(ctx context.Context, start, end time.Time) (models.MovementReport, error) {
	s.archived = true
	return s.MovementReport(ctx, start, end)
}

func (s *stubReporter) GroupListings(_ context.Context, day time.Time) ([]models.GroupListing, error) {
	s.day = day
	if s.err != nil {
		return nil, s.err
	}
	exit := models.Day(2024, time.April, 2)
	return []models.GroupListing{
		{
			Group: models.GroupCows,
			Animals: []models.WeightedAnimal{
				{Animal: models.Animal{ID: "c-1", Gender: models.GenderCow}, WeightKg: 410.5},
				{Animal: models.Animal{ID: "c-2", Gender: models.GenderCow, EndDate: &exit}, WeightKg: 380},
			},
			ActiveCount: 1,
		},
		{Group: models.GroupCalves},
	}, nil
}

func run(t *testing.T, rep *stubReporter, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(func(context.Context, Options) (Reporter, func(), error) {
		return rep, func() {}, nil
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMovementText(t *testing.T) {
	rep := &stubReporter{}
	out, err := run(t, rep, "movement", "--start", "2024-01-01", "--end", "2024-02-01")
	require.NoError(t, err)
	require.Equal(t, models.Day(2024, time.January, 1), rep.start)
	require.Equal(t, models.Day(2024, time.February, 1), rep.end)
	require.False(t, rep.archived)
	require.Equal(t, "Herd movement (2024-01-01-2024-02-01)\nCows: 5 -> 6 (+1)\n", out)
}

func TestMovementJSONAndArchive(t *testing.T) {
	rep := &stubReporter{}
	out, err := run(t, rep, "movement", "--start", "2024-01-01", "--end", "2024-02-01", "--format", "json", "--archive")
	require.NoError(t, err)
	require.True(t, rep.archived)

	var decoded models.MovementReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Groups, 1)
	require.Equal(t, 6, decoded.Groups[0].Stats.EndCount)
}

func TestMovementFlagErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing end", args: []string{"movement", "--start", "2024-01-01"}, wantErr: "end"},
		{name: "bad start", args: []string{"movement", "--start", "first", "--end", "2024-01-01"}, wantErr: "--start"},
		{name: "bad format", args: []string{"movement", "--start", "2024-01-01", "--end", "2024-02-01", "-f", "xml"}, wantErr: "--format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &stubReporter{}
			_, err := run(t, rep, tt.args...)
			require.ErrorContains(t, err, tt.wantErr)
			require.True(t, rep.start.IsZero())
		})
	}
}

func TestMovementServiceError(t *testing.T) {
	boom := errors.New("register unavailable")
	_, err := run(t, &stubReporter{err: boom}, "movement", "--start", "2024-01-01", "--end", "2024-02-01")
	require.ErrorIs(t, err, boom)
}

func TestGroupsWithAnimals(t *testing.T) {
	rep := &stubReporter{}
	out, err := run(t, rep, "groups", "--date", "2024-05-01", "--animals")
	require.NoError(t, err)
	require.Equal(t, models.Day(2024, time.May, 1), rep.day)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"Herd groups on 2024-05-01",
		"Cows: 1",
		"Calves: 0",
		"Total: 1",
		"",
		"Cows",
		"- c-1  Cow  410.50 kg  (active)",
		"- c-2  Cow  380.00 kg  (exited 2024-04-02)",
	}, lines)
}

func TestGroupsJSON(t *testing.T) {
	out, err := run(t, &stubReporter{}, "groups", "--date", "2024-05-01", "-f", "json")
	require.NoError(t, err)

	var decoded []models.GroupListing
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "c-2", decoded[0].Animals[1].Animal.ID)
}

func TestGroupsOpenerFailure(t *testing.T) {
	boom := errors.New("config invalid")
	cmd := newRootCmd(func(context.Context, Options) (Reporter, func(), error) {
		return nil, nil, boom
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"groups"})

	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestPersistentFlagsReachOpener(t *testing.T) {
	var got Options
	cmd := newRootCmd(func(_ context.Context, opts Options) (Reporter, func(), error) {
		got = opts
		return &stubReporter{}, func() {}, nil
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--env-file", "prod.env", "--debug", "groups"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, Options{EnvFile: "prod.env", Debug: true}, got)
}
