package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrimandi/agrimandi-server/api/common"
	"github.com/agrimandi/agrimandi-server/app"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAPI() *API {
	return &API{
		App:    &app.App{},
		Config: &common.Config{MaxContentSize: 1},
	}
}

func TestHandlerValidationError(t *testing.T) {
	a := testAPI()
	h := a.handler(func(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
		return &app.ValidationError{Message: "invalid unit: Pound", InvalidUnit: "Pound"}
	}, false)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/mandiRates", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "invalid unit: Pound", payload["message"])
	assert.Equal(t, "Pound", payload["invalidUnit"])
}

func TestHandlerUserError(t *testing.T) {
	a := testAPI()
	h := a.handler(func(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
		return &app.UserError{Message: "order not found", StatusCode: http.StatusNotFound}
	}, false)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/order/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "order not found")
}

func TestHandlerUnexpectedError(t *testing.T) {
	a := testAPI()
	h := a.handler(func(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
		return errors.New("connection reset by peer")
	}, false)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/mandi", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, float64(0), payload["status"])
}

func TestHandlerSuccessDefaultsTo200(t *testing.T) {
	a := testAPI()
	h := a.handler(func(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
		json.NewEncoder(w).Encode(map[string]string{"message": "pong"})
		return nil
	}, false)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
