package rates

import (
	"fmt"
	"sort"
	"time"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"

	"github.com/pkg/errors"
)

// ErrNotEnoughData - fewer than two historical points for the pair
var ErrNotEnoughData = errors.New("Not enough data")

// ErrInvalidTimeframe - timeframe outside the allowed enum
var ErrInvalidTimeframe = errors.New("invalid timeframe")

// ValidationError - one bulk entry failed field validation
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}

// ValidateUnits returns the first unit outside {Kg, Ton}, if any.
func ValidateUnits(prices []model.CategoryPrice) (string, bool) {
	for _, p := range prices {
		if p.Unit != consts.UnitKg && p.Unit != consts.UnitTon {
			return p.Unit, false
		}
	}
	return "", true
}

// FlattenMatching collects every categoryPrices entry matching the pair
// across all documents, newest first. An empty subCategory matches any.
func FlattenMatching(docs []model.MandiCategoryPrice, category, subCategory string) []model.CategoryPrice {
	var entries []model.CategoryPrice
	for _, doc := range docs {
		for _, cp := range doc.CategoryPrices {
			if cp.Category != category {
				continue
			}
			if subCategory != "" && cp.SubCategory != subCategory {
				continue
			}
			if cp.CreatedAt.IsZero() {
				cp.CreatedAt = doc.CreatedAt
			}
			entries = append(entries, cp)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

// ComputeDifference compares the two most recent entries. Requires entries
// sorted newest first.
func ComputeDifference(entries []model.CategoryPrice) (*model.PriceDifference, error) {
	if len(entries) < 2 {
		return nil, ErrNotEnoughData
	}
	current, previous := entries[0], entries[1]
	diff := current.Price - previous.Price

	// a previous price of zero has no meaningful percent change
	percent := "N/A"
	if previous.Price != 0 {
		percent = fmt.Sprintf("%.2f", diff/previous.Price*100)
	}

	tag := consts.TagDecrement
	if diff > 0 {
		tag = consts.TagIncrement
	}

	return &model.PriceDifference{
		Category:      current.Category,
		SubCategory:   current.SubCategory,
		CurrentPrice:  current.Price,
		PreviousPrice: previous.Price,
		Difference:    diff,
		PercentChange: percent,
		Tag:           tag,
		Unit:          current.Unit,
	}, nil
}

// TimeframeWindow computes the createdAt lower bound for a history query.
// The zero time means no bound.
func TimeframeWindow(timeframe string, now time.Time) (time.Time, error) {
	switch timeframe {
	case consts.TimeframeToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case consts.TimeframeWeek:
		return now.AddDate(0, 0, -7), nil
	case consts.TimeframeMonth:
		return now.AddDate(0, -1, 0), nil
	case consts.TimeframeYear:
		return now.AddDate(-1, 0, 0), nil
	case consts.TimeframeAll, "":
		return time.Time{}, nil
	}
	return time.Time{}, ErrInvalidTimeframe
}

// ValidateBulkEntry checks the fields the batch is strict about: any failure
// here aborts the whole batch.
func ValidateBulkEntry(entry model.BulkRateEntry, isValidTime func(string) bool) error {
	if entry.Unit != consts.UnitKg && entry.Unit != consts.UnitTon {
		return &ValidationError{Field: "unit", Value: entry.Unit}
	}
	if entry.Time != "" && !isValidTime(entry.Time) {
		return &ValidationError{Field: "time", Value: entry.Time}
	}
	return nil
}
