package mandiapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/rates"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRatesErrorInvalidUnit(t *testing.T) {
	err := mapRatesError(&rates.ValidationError{Field: "unit", Value: "Pound"})

	verr, ok := err.(*app.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Pound", verr.InvalidUnit)

	body, merr := json.Marshal(verr)
	require.NoError(t, merr)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Pound", payload["invalidUnit"])
	assert.Equal(t, "invalid unit: Pound", payload["message"])
}

func TestMapRatesErrorInvalidTime(t *testing.T) {
	err := mapRatesError(&rates.ValidationError{Field: "time", Value: "25:00"})

	verr, ok := err.(*app.ValidationError)
	require.True(t, ok)
	assert.Empty(t, verr.InvalidUnit)

	body, merr := json.Marshal(verr)
	require.NoError(t, merr)
	assert.NotContains(t, string(body), "invalidUnit")
}

func TestMapRatesErrorNotEnoughData(t *testing.T) {
	err := mapRatesError(rates.ErrNotEnoughData)

	uerr, ok := err.(*app.UserError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, uerr.StatusCode)
	assert.Equal(t, "Not enough data", uerr.Message)
}

func TestMapRatesErrorPassthrough(t *testing.T) {
	boom := errors.New("connection reset")
	assert.Equal(t, boom, mapRatesError(boom))
}
