package user

import (
	"testing"
	"time"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCatalogPriceAppendsHistory(t *testing.T) {
	now := time.Now()
	categories := []model.CatalogCategory{
		{
			Name: "Onion",
			SubCategories: []model.CatalogSubCategory{
				{Name: "Red", Price: 25, Unit: consts.UnitKg, Status: "Active"},
			},
		},
	}

	upd := model.CatalogPriceUpdate{
		Category:    "Onion",
		SubCategory: "Red",
		Price:       30,
		Unit:        consts.UnitKg,
		Status:      "Active",
	}
	out := ApplyCatalogPrice(categories, upd, now)

	require.Len(t, out, 1)
	sub := out[0].SubCategories[0]
	assert.Equal(t, float64(30), sub.Price)

	require.Len(t, sub.History, 1)
	assert.Equal(t, float64(25), sub.History[0].Price)
	assert.Equal(t, consts.UnitKg, sub.History[0].Unit)
	assert.Equal(t, now, sub.History[0].UpdatedAt)
}

func TestApplyCatalogPriceHistoryGrows(t *testing.T) {
	now := time.Now()
	categories := []model.CatalogCategory{
		{
			Name: "Onion",
			SubCategories: []model.CatalogSubCategory{
				{Name: "Red", Price: 20, Unit: consts.UnitKg},
			},
		},
	}

	for i, price := range []float64{25, 30, 35} {
		upd := model.CatalogPriceUpdate{Category: "Onion", SubCategory: "Red", Price: price, Unit: consts.UnitKg}
		categories = ApplyCatalogPrice(categories, upd, now.Add(time.Duration(i)*time.Minute))
	}

	sub := categories[0].SubCategories[0]
	assert.Equal(t, float64(35), sub.Price)
	require.Len(t, sub.History, 3)
	assert.Equal(t, float64(20), sub.History[0].Price)
	assert.Equal(t, float64(30), sub.History[2].Price)
}

func TestApplyCatalogPriceCreatesMissingSubCategory(t *testing.T) {
	categories := []model.CatalogCategory{
		{Name: "Onion", SubCategories: []model.CatalogSubCategory{{Name: "Red", Price: 25}}},
	}
	upd := model.CatalogPriceUpdate{Category: "Onion", SubCategory: "White", Price: 22, Unit: consts.UnitKg}

	out := ApplyCatalogPrice(categories, upd, time.Now())
	require.Len(t, out[0].SubCategories, 2)
	created := out[0].SubCategories[1]
	assert.Equal(t, "White", created.Name)
	assert.Equal(t, float64(22), created.Price)
	assert.Empty(t, created.History)
}

func TestApplyCatalogPriceCreatesMissingCategory(t *testing.T) {
	upd := model.CatalogPriceUpdate{Category: "Potato", SubCategory: "Jyoti", Price: 14, Unit: consts.UnitKg}

	out := ApplyCatalogPrice(nil, upd, time.Now())
	require.Len(t, out, 1)
	assert.Equal(t, "Potato", out[0].Name)
	require.Len(t, out[0].SubCategories, 1)
	assert.Equal(t, "Jyoti", out[0].SubCategories[0].Name)
}

func TestAllowedSellerRoles(t *testing.T) {
	assert.Equal(t, []string{consts.RoleRetailer}, AllowedSellerRoles(consts.RoleConsumer))
	assert.Equal(t, []string{consts.RoleWholesaler}, AllowedSellerRoles(consts.RoleRetailer))
	assert.Equal(t, []string{consts.RoleManufacturer}, AllowedSellerRoles(consts.RoleWholesaler))
	assert.Empty(t, AllowedSellerRoles(consts.RoleManufacturer))
}
