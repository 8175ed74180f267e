package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herd/internal/domain/models"
)

type stubRepo struct {
	rows      [][]interface{}
	err       error
	lastRange string
}

func (s *stubRepo) ReadRange(_ context.Context, sheetRange string) ([][]interface{}, error) {
	s.lastRange = sheetRange
	return s.rows, s.err
}

func TestParseAnimalRow(t *testing.T) {
	row := []interface{}{"17", "Cattle", "N-17", "Bella", "Heifer", "Ndama", "2023-01-01", "Birth", "Sold", "2023-01-01", "2024-05-02", "nice temper", "FALSE"}

	a, err := parseAnimalRow(row)
	require.NoError(t, err)
	require.Equal(t, "17", a.ID)
	require.Equal(t, models.GenderHeifer, a.Gender)
	require.Equal(t, models.AcquisitionBirth, a.AcquisitionMethod)
	require.Equal(t, models.LossSold, a.LossMethod)
	require.Equal(t, models.Day(2023, time.January, 1), a.BirthDate)
	require.NotNil(t, a.EndDate)
	require.Equal(t, models.Day(2024, time.May, 2), *a.EndDate)
	require.False(t, a.Deleted)
}

func TestParseAnimalRowOpenEnded(t *testing.T) {
	row := []interface{}{"3", "Cattle", "N-3", "", "Bull", "Zebu", "2022-03-04T00:00:00Z", "Purchase", "", "2022-06-01"}

	a, err := parseAnimalRow(row)
	require.NoError(t, err)
	require.Nil(t, a.EndDate)
	require.Equal(t, models.Day(2022, time.March, 4), a.BirthDate)
}

func TestParseAnimalRowErrors(t *testing.T) {
	tests := []struct {
		name string
		row  []interface{}
	}{
		{name: "short", row: []interface{}{"1", "Cattle"}},
		{name: "no id", row: []interface{}{"", "Cattle", "", "", "Cow", "", "2020-01-01", "", "", "2020-01-01"}},
		{name: "bad birth", row: []interface{}{"1", "Cattle", "", "", "Cow", "", "01/01/2020", "", "", "2020-01-01"}},
		{name: "no entry", row: []interface{}{"1", "Cattle", "", "", "Cow", "", "2020-01-01", "", "", ""}},
		{name: "bad end", row: []interface{}{"1", "Cattle", "", "", "Cow", "", "2020-01-01", "", "", "2020-01-01", "soon"}},
		{name: "bad deleted", row: []interface{}{"1", "Cattle", "", "", "Cow", "", "2020-01-01", "", "", "2020-01-01", "", "", "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnimalRow(tt.row)
			require.Error(t, err)
		})
	}
}

func TestCattleSourceFetchPopulation(t *testing.T) {
	repo := &stubRepo{rows: [][]interface{}{
		{"id", "type", "number", "name", "gender", "breed", "birth_date", "acquisition_method", "loss_method", "entry_date", "end_date", "comments", "deleted"},
		{"1", "Cattle", "N-1", "", "Cow", "", "2018-01-01", "Birth", "", "2018-01-01"},
		{"2", "Cattle", "N-2", "", "Cow", "", "garbage", "Birth", "", "2018-01-01"},
		{"3", "Cattle", "N-3", "", "Bull", "", "2021-01-01", "Gift", "", "2021-02-01", "", "", "TRUE"},
	}}

	source := NewCattleSource(repo, "Cattle!A:M", nil)
	animals, err := source.FetchPopulation(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Cattle!A:M", repo.lastRange)
	require.Len(t, animals, 1)
	require.Equal(t, "1", animals[0].ID)
}

func TestCattleSourcePropagatesReadError(t *testing.T) {
	boom := errors.New("quota exceeded")
	source := NewCattleSource(&stubRepo{err: boom}, "Cattle!A:M", nil)

	_, err := source.FetchPopulation(context.Background())
	require.ErrorIs(t, err, boom)
}
