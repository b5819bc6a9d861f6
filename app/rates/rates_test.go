package rates

import (
	"testing"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPartitionBulkEntries(t *testing.T) {
	goodID := primitive.NewObjectID()
	entries := []model.BulkRateEntry{
		{MandiID: goodID.Hex(), Category: "Onion", Price: 20, Unit: consts.UnitKg},
		{MandiID: "", Category: "Potato", Price: 12, Unit: consts.UnitKg},
		{MandiID: "not-an-id", Category: "Tomato", Price: 18, Unit: consts.UnitKg},
	}

	valid, ids, skipped := PartitionBulkEntries(entries)

	require.Len(t, valid, 1)
	require.Len(t, ids, 1)
	assert.Equal(t, goodID, ids[0])
	assert.Equal(t, "Onion", valid[0].Category)

	require.Len(t, skipped, 2)
	assert.Equal(t, "Invalid mandiId: ", skipped[0].Reason)
	assert.Equal(t, "Invalid mandiId: not-an-id", skipped[1].Reason)
	assert.Equal(t, "Potato", skipped[0].Entry.Category)
}

func TestPartitionBulkEntriesAllValid(t *testing.T) {
	id := primitive.NewObjectID()
	valid, ids, skipped := PartitionBulkEntries([]model.BulkRateEntry{
		{MandiID: id.Hex(), Category: "Onion"},
	})
	assert.Len(t, valid, 1)
	assert.Len(t, ids, 1)
	assert.Empty(t, skipped)
}
