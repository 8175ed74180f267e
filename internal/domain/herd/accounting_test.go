package herd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herd/internal/domain/models"
)

func accountingFixture() []models.Animal {
	entries := []struct {
		id     string
		method models.AcquisitionMethod
		entry  time.Time
	}{
		{"born", models.AcquisitionBirth, day(2024, time.February, 1)},
		{"bought", models.AcquisitionPurchase, day(2024, time.March, 1)},
		{"given", models.AcquisitionGift, day(2024, time.April, 1)},
		{"swapped", models.AcquisitionMethod("Exchange"), day(2024, time.April, 2)},
		{"blank", "", day(2024, time.April, 3)},
		{"before-window", models.AcquisitionBirth, day(2023, time.December, 31)},
		{"on-window-end", models.AcquisitionPurchase, day(2024, time.December, 1)},
	}

	var records []models.Animal
	for _, e := range entries {
		a := animal(e.id, models.GenderHeifer, day(2023, time.January, 1), e.entry)
		a.AcquisitionMethod = e.method
		records = append(records, a)
	}

	exits := []struct {
		id     string
		method models.LossMethod
		end    time.Time
	}{
		{"dead", models.LossDeath, day(2024, time.January, 1)},
		{"sold", models.LossSold, day(2024, time.May, 1)},
		{"eaten", models.LossConsumed, day(2024, time.June, 1)},
		{"gifted", models.LossGifted, day(2024, time.July, 1)},
		{"stolen", models.LossMethod("Stolen"), day(2024, time.July, 2)},
		{"after-window", models.LossDeath, day(2024, time.December, 1)},
	}
	for _, e := range exits {
		a := animal(e.id, models.GenderHeifer, day(2022, time.January, 1), day(2022, time.January, 1))
		a.LossMethod = e.method
		a.EndDate = ptr(e.end)
		records = append(records, a)
	}

	return records
}

func TestAccountingAcquisitionAndLoss(t *testing.T) {
	acc := NewAccounting(models.GroupYoungHeifer, accountingFixture())
	acc.ComputeAcquisition(day(2024, time.January, 1), day(2024, time.December, 1))
	acc.ComputeLoss(day(2024, time.January, 1), day(2024, time.December, 1))

	require.Equal(t, models.AcquisitionLossStats{
		Birth:    1,
		Purchase: 1,
		Gift:     1,
		Death:    1,
		Sold:     1,
		Consumed: 1,
		Gifted:   1,
	}, acc.Stats())
}

// Unrecognised acquisition and loss methods are dropped rather than bucketed.
func TestAccountingDropsUnknownMethods(t *testing.T) {
	records := accountingFixture()
	start, end := day(2024, time.January, 1), day(2024, time.December, 1)
	f := NewFilter(models.GroupYoungHeifer, records)

	acc := NewAccounting(models.GroupYoungHeifer, records)
	acc.ComputeAcquisition(start, end)
	acc.ComputeLoss(start, end)

	entered := len(f.ByEntryRange(start, end))
	exited := len(f.ByExitRange(start, end))
	require.Equal(t, 5, entered)
	require.Equal(t, 5, exited)
	require.Less(t, acc.Stats().Acquisitions(), entered)
	require.Less(t, acc.Stats().Losses(), exited)
}

func TestAccountingOrderIndependentAndRepeatable(t *testing.T) {
	start, end := day(2024, time.January, 1), day(2024, time.December, 1)

	first := NewAccounting(models.GroupYoungHeifer, accountingFixture())
	first.ComputeAcquisition(start, end)
	first.ComputeLoss(start, end)

	second := NewAccounting(models.GroupYoungHeifer, accountingFixture())
	second.ComputeLoss(start, end)
	second.ComputeAcquisition(start, end)
	second.ComputeAcquisition(start, end)

	require.Equal(t, first.Stats(), second.Stats())
}
