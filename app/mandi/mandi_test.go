package mandi

import (
	"testing"

	"github.com/agrimandi/agrimandi-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMandis(t *testing.T) {
	mandis := []model.Mandi{
		{Name: "Azadpur Mandi", City: "Delhi"},
		{Name: "Vashi APMC", City: "Navi Mumbai"},
		{Name: "Yeshwanthpur", City: "Bengaluru"},
	}

	res := SearchMandis(mandis, "azadpur")
	require.Len(t, res, 1)
	assert.Equal(t, "Azadpur Mandi", res[0].Name)

	// city matches too
	res = SearchMandis(mandis, "mumbai")
	require.Len(t, res, 1)
	assert.Equal(t, "Vashi APMC", res[0].Name)

	assert.Empty(t, SearchMandis(mandis, "kolkata"))

	// empty query returns everything
	assert.Len(t, SearchMandis(mandis, ""), 3)
}
