package rates

import (
	"testing"
	"time"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(category string, price float64, createdAt time.Time) model.CategoryPrice {
	return model.CategoryPrice{
		Category:  category,
		Price:     price,
		Unit:      consts.UnitKg,
		CreatedAt: createdAt,
	}
}

func TestComputeDifferenceIncrement(t *testing.T) {
	now := time.Now()
	entries := []model.CategoryPrice{
		entry("Onion", 30, now),
		entry("Onion", 25, now.Add(-time.Hour)),
	}

	diff, err := ComputeDifference(entries)
	require.NoError(t, err)
	assert.Equal(t, float64(30), diff.CurrentPrice)
	assert.Equal(t, float64(25), diff.PreviousPrice)
	assert.Equal(t, float64(5), diff.Difference)
	assert.Equal(t, "20.00", diff.PercentChange)
	assert.Equal(t, consts.TagIncrement, diff.Tag)
}

func TestComputeDifferenceDecrement(t *testing.T) {
	now := time.Now()
	entries := []model.CategoryPrice{
		entry("Onion", 20, now),
		entry("Onion", 25, now.Add(-time.Hour)),
	}

	diff, err := ComputeDifference(entries)
	require.NoError(t, err)
	assert.Equal(t, float64(-5), diff.Difference)
	assert.Equal(t, "-20.00", diff.PercentChange)
	assert.Equal(t, consts.TagDecrement, diff.Tag)
}

func TestComputeDifferenceZeroPrevious(t *testing.T) {
	now := time.Now()
	entries := []model.CategoryPrice{
		entry("Onion", 15, now),
		entry("Onion", 0, now.Add(-time.Hour)),
	}

	diff, err := ComputeDifference(entries)
	require.NoError(t, err)
	assert.Equal(t, "N/A", diff.PercentChange)
	assert.Equal(t, consts.TagIncrement, diff.Tag)
}

func TestComputeDifferenceNotEnoughData(t *testing.T) {
	_, err := ComputeDifference([]model.CategoryPrice{entry("Onion", 15, time.Now())})
	assert.ErrorIs(t, err, ErrNotEnoughData)

	_, err = ComputeDifference(nil)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestFlattenMatchingSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	docs := []model.MandiCategoryPrice{
		{
			CreatedAt: base,
			CategoryPrices: []model.CategoryPrice{
				entry("Onion", 20, base),
				entry("Potato", 12, base),
			},
		},
		{
			CreatedAt: base.Add(24 * time.Hour),
			CategoryPrices: []model.CategoryPrice{
				entry("Onion", 25, base.Add(24*time.Hour)),
			},
		},
	}

	entries := FlattenMatching(docs, "Onion", "")
	require.Len(t, entries, 2)
	assert.Equal(t, float64(25), entries[0].Price)
	assert.Equal(t, float64(20), entries[1].Price)
}

func TestFlattenMatchingInheritsDocCreatedAt(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	docs := []model.MandiCategoryPrice{
		{
			CreatedAt: base,
			CategoryPrices: []model.CategoryPrice{
				{Category: "Onion", Price: 20, Unit: consts.UnitKg},
			},
		},
	}

	entries := FlattenMatching(docs, "Onion", "")
	require.Len(t, entries, 1)
	assert.Equal(t, base, entries[0].CreatedAt)
}

func TestFlattenMatchingSubCategoryFilter(t *testing.T) {
	now := time.Now()
	docs := []model.MandiCategoryPrice{
		{
			CreatedAt: now,
			CategoryPrices: []model.CategoryPrice{
				{Category: "Onion", SubCategory: "Red", Price: 20, CreatedAt: now},
				{Category: "Onion", SubCategory: "White", Price: 22, CreatedAt: now},
			},
		},
	}

	entries := FlattenMatching(docs, "Onion", "Red")
	require.Len(t, entries, 1)
	assert.Equal(t, "Red", entries[0].SubCategory)

	// empty subCategory matches any
	assert.Len(t, FlattenMatching(docs, "Onion", ""), 2)
}

func TestValidateUnits(t *testing.T) {
	prices := []model.CategoryPrice{
		{Unit: consts.UnitKg},
		{Unit: consts.UnitTon},
	}
	invalid, ok := ValidateUnits(prices)
	assert.True(t, ok)
	assert.Empty(t, invalid)

	prices = append(prices, model.CategoryPrice{Unit: "Quintal"})
	invalid, ok = ValidateUnits(prices)
	assert.False(t, ok)
	assert.Equal(t, "Quintal", invalid)
}

func TestTimeframeWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	today, err := TimeframeWindow(consts.TimeframeToday, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), today)

	week, err := TimeframeWindow(consts.TimeframeWeek, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), week)

	month, err := TimeframeWindow(consts.TimeframeMonth, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -1, 0), month)

	year, err := TimeframeWindow(consts.TimeframeYear, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(-1, 0, 0), year)

	all, err := TimeframeWindow(consts.TimeframeAll, now)
	require.NoError(t, err)
	assert.True(t, all.IsZero())

	_, err = TimeframeWindow("fortnight", now)
	assert.ErrorIs(t, err, ErrInvalidTimeframe)
}

func TestValidateBulkEntry(t *testing.T) {
	ok := model.BulkRateEntry{Unit: consts.UnitKg, Time: "09:30 AM"}
	assert.NoError(t, ValidateBulkEntry(ok, util.IsValidClockTime))

	badUnit := model.BulkRateEntry{Unit: "Quintal"}
	err := ValidateBulkEntry(badUnit, util.IsValidClockTime)
	require.Error(t, err)
	verr, isVErr := err.(*ValidationError)
	require.True(t, isVErr)
	assert.Equal(t, "unit", verr.Field)

	badTime := model.BulkRateEntry{Unit: consts.UnitTon, Time: "25:00"}
	err = ValidateBulkEntry(badTime, util.IsValidClockTime)
	require.Error(t, err)
	verr, isVErr = err.(*ValidationError)
	require.True(t, isVErr)
	assert.Equal(t, "time", verr.Field)

	// time is optional
	noTime := model.BulkRateEntry{Unit: consts.UnitTon}
	assert.NoError(t, ValidateBulkEntry(noTime, util.IsValidClockTime))
}
