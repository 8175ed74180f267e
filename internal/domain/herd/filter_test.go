package herd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herd/internal/domain/models"
)

func filterFixture() Filter {
	alive := animal("alive", models.GenderCow, day(2018, time.January, 1), day(2018, time.January, 1))

	sold := animal("sold", models.GenderCow, day(2018, time.January, 1), day(2024, time.March, 1))
	sold.EndDate = ptr(day(2024, time.June, 1))
	sold.LossMethod = models.LossSold

	died := animal("died", models.GenderCow, day(2017, time.January, 1), day(2017, time.January, 1))
	died.EndDate = ptr(day(2024, time.January, 1))
	died.LossMethod = models.LossDeath

	return NewFilter(models.GroupCows, []models.Animal{alive, sold, died})
}

func TestFilterActiveAt(t *testing.T) {
	f := filterFixture()

	require.Equal(t, []string{"alive", "sold", "died"}, ids(f.ActiveAt(day(2023, time.December, 31))))
	require.Equal(t, []string{"alive", "sold"}, ids(f.ActiveAt(day(2024, time.January, 1))))
	require.Equal(t, []string{"alive", "sold"}, ids(f.ActiveAt(day(2024, time.May, 31))))
	require.Equal(t, []string{"alive"}, ids(f.ActiveAt(day(2024, time.June, 1))))
}

func TestFilterActiveInUsesSnapshotGroup(t *testing.T) {
	f := filterFixture()
	other := animal("other", models.GenderCow, day(2019, time.January, 1), day(2019, time.January, 1))
	snapshot := models.Snapshot{models.GroupCows: {other}}

	require.Equal(t, []string{"other"}, ids(f.ActiveIn(snapshot, day(2024, time.January, 1))))
	require.Empty(t, f.ActiveIn(models.Snapshot{}, day(2024, time.January, 1)))
}

func TestFilterByEntryRangeIsHalfOpen(t *testing.T) {
	f := filterFixture()

	require.Equal(t, []string{"sold"}, ids(f.ByEntryRange(day(2024, time.March, 1), day(2024, time.April, 1))))
	require.Empty(t, f.ByEntryRange(day(2024, time.February, 1), day(2024, time.March, 1)))
	require.Empty(t, f.ByEntryRange(day(2024, time.March, 1), day(2024, time.March, 1)))
}

func TestFilterByExitRangeSkipsActive(t *testing.T) {
	f := filterFixture()

	require.Equal(t, []string{"sold", "died"}, ids(f.ByExitRange(day(2024, time.January, 1), day(2024, time.June, 2))))
	require.Equal(t, []string{"died"}, ids(f.ByExitRange(day(2024, time.January, 1), day(2024, time.June, 1))))
	require.Empty(t, f.ByExitRange(day(2025, time.January, 1), day(2026, time.January, 1)))
}

func TestFilterIsRepeatable(t *testing.T) {
	f := filterFixture()
	start, end := day(2023, time.January, 1), day(2025, time.January, 1)

	require.Equal(t, f.ByExitRange(start, end), f.ByExitRange(start, end))
	require.Equal(t, f.ActiveAt(start), f.ActiveAt(start))
	require.Len(t, f.Records(), 3)
}
