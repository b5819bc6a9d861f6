package order

import (
	"strings"
	"testing"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"

	"github.com/stretchr/testify/assert"
)

func TestValidateFlow(t *testing.T) {
	assert.True(t, ValidateFlow(consts.RoleConsumer, consts.RoleRetailer))
	assert.True(t, ValidateFlow(consts.RoleRetailer, consts.RoleWholesaler))
	assert.True(t, ValidateFlow(consts.RoleWholesaler, consts.RoleManufacturer))

	assert.False(t, ValidateFlow(consts.RoleConsumer, consts.RoleManufacturer))
	assert.False(t, ValidateFlow(consts.RoleRetailer, consts.RoleRetailer))
	assert.False(t, ValidateFlow(consts.RoleManufacturer, consts.RoleWholesaler))
	assert.False(t, ValidateFlow("", consts.RoleRetailer))
}

func TestTotalAmount(t *testing.T) {
	items := []model.OrderItem{
		{Category: "Onion", Quantity: 10, Unit: consts.UnitKg, Price: 25},
		{Category: "Potato", Quantity: 5, Unit: consts.UnitKg, Price: 12},
	}
	assert.Equal(t, float64(310), TotalAmount(items))
	assert.Zero(t, TotalAmount(nil))
}

func TestNewOrderNo(t *testing.T) {
	no := newOrderNo()
	assert.True(t, strings.HasPrefix(no, "ORD"))
	// ORD + yyyymmddhhmmss + 4 digit suffix
	assert.Len(t, no, 21)
}
