package catalogapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/plan"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapPlanError(err error) error {
	if errors.Is(err, plan.ErrNotFound) {
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	}
	return err
}

// CreatePlan - adds a subscription plan
func (a *api) CreatePlan(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Plan
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Name == "" {
		return &app.ValidationError{Message: "name is required"}
	}

	res, err := a.App.PlanService.CreatePlan(&payload)
	if err != nil {
		return mapPlanError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Plan created"))
	return nil
}

func (a *api) ListPlans(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := a.App.PlanService.ListPlans()
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Plans fetched"))
	return nil
}

func (a *api) UpdatePlan(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["planID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid planID"}
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}

	res, err := a.App.PlanService.UpdatePlan(id, fields)
	if err != nil {
		return mapPlanError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Plan updated"))
	return nil
}

func (a *api) DeletePlan(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["planID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid planID"}
	}
	if err := a.App.PlanService.DeletePlan(id); err != nil {
		return mapPlanError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Plan deleted"))
	return nil
}
