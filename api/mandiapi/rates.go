package mandiapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/rates"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
)

func mapRatesError(err error) error {
	var verr *rates.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Field == "unit" {
			return &app.ValidationError{Message: verr.Error(), InvalidUnit: verr.Value}
		}
		return &app.ValidationError{Message: verr.Error()}
	case errors.Is(err, rates.ErrNotEnoughData):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, rates.ErrInvalidTimeframe):
		return &app.ValidationError{Message: err.Error()}
	}
	return err
}

// SaveCategoryPrices - records a batch of prices for one mandi
func (a *api) SaveCategoryPrices(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.MandiCategoryPrice
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Mandi.IsZero() || len(payload.CategoryPrices) == 0 {
		return &app.ValidationError{Message: "mandi and categoryPrices are required"}
	}

	res, err := a.App.RatesService.SaveCategoryPrices(&payload)
	if err != nil {
		return mapRatesError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Rates saved"))
	return nil
}

// SaveBulkRates - save-or-update across many mandis in one call
func (a *api) SaveBulkRates(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload []model.BulkRateEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if len(payload) == 0 {
		return &app.ValidationError{Message: "at least one entry is required"}
	}

	res, err := a.App.RatesService.SaveOrUpdateBulk(payload)
	if err != nil {
		return mapRatesError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Rates processed"))
	return nil
}

// GetRates - all price docs of one mandi, newest first
func (a *api) GetRates(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := mandiIDVar(ctx)
	if err != nil {
		return err
	}
	res, err := a.App.RatesService.GetRatesForMandi(id)
	if err != nil {
		return mapRatesError(err)
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Rates fetched"))
	return nil
}

// GetPriceDifference - latest vs previous price for one (category, subCategory)
func (a *api) GetPriceDifference(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := mandiIDVar(ctx)
	if err != nil {
		return err
	}
	category := ctx.Vars["category"]
	subCategory := r.URL.Query().Get("subCategory")

	res, err := a.App.RatesService.GetPriceDifference(id, category, subCategory)
	if err != nil {
		return mapRatesError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Price difference computed"))
	return nil
}

// GetHistory - price docs of one mandi + category inside a timeframe window
func (a *api) GetHistory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := mandiIDVar(ctx)
	if err != nil {
		return err
	}
	category := r.URL.Query().Get("category")
	timeframe := r.URL.Query().Get("timeframe")
	if category == "" || timeframe == "" {
		return &app.ValidationError{Message: "category and timeframe are required"}
	}

	res, err := a.App.RatesService.GetHistoryByTimeframe(id, category, timeframe)
	if err != nil {
		return mapRatesError(err)
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "History fetched"))
	return nil
}

// GetMandiByCategory - price docs across mandis narrowed to one category
func (a *api) GetMandiByCategory(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	category := ctx.Vars["category"]
	if category == "" {
		return &app.ValidationError{Message: "category is required"}
	}

	res, err := a.App.RatesService.GetMandiByCategory(category)
	if err != nil {
		return mapRatesError(err)
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Mandi rates fetched"))
	return nil
}
