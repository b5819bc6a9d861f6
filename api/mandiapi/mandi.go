package mandiapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/mandi"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mandiIDVar(ctx *app.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["mandiID"])
	if err != nil {
		return primitive.NilObjectID, &app.ValidationError{Message: "invalid mandiID"}
	}
	return id, nil
}

// CreateMandi - registers a new mandi
func (a *api) CreateMandi(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Mandi
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Name == "" || payload.City == "" || payload.State == "" {
		return &app.ValidationError{Message: "name, city and state are required"}
	}

	res, err := a.App.MandiService.CreateMandi(&payload)
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Mandi created"))
	return nil
}

func (a *api) FetchMandi(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := mandiIDVar(ctx)
	if err != nil {
		return err
	}
	res, err := a.App.MandiService.FetchMandi(id)
	if err != nil {
		if errors.Is(err, mandi.ErrNotFound) {
			return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
		}
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Mandi fetched"))
	return nil
}

// ListMandis - lists mandis, optionally narrowed by state / city
func (a *api) ListMandis(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := a.App.MandiService.ListMandis(r.URL.Query().Get("state"), r.URL.Query().Get("city"))
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Mandis fetched"))
	return nil
}

// SearchMandis - fuzzy search by name or city
func (a *api) SearchMandis(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query().Get("q")
	if query == "" {
		return &app.ValidationError{Message: "q is required"}
	}
	res, err := a.App.MandiService.SearchMandis(query)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Mandis fetched"))
	return nil
}

func (a *api) UpdateMandi(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := mandiIDVar(ctx)
	if err != nil {
		return err
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	res, err := a.App.MandiService.UpdateMandi(id, fields)
	if err != nil {
		if errors.Is(err, mandi.ErrNotFound) {
			return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
		}
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Mandi updated"))
	return nil
}

func (a *api) DeleteMandi(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := mandiIDVar(ctx)
	if err != nil {
		return err
	}
	if err := a.App.MandiService.DeleteMandi(id); err != nil {
		if errors.Is(err, mandi.ErrNotFound) {
			return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
		}
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Mandi deleted"))
	return nil
}
