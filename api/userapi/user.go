package userapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/user"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrDuplicatePhone), errors.Is(err, user.ErrDuplicateEmail):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusConflict}
	case errors.Is(err, user.ErrNotFound):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, user.ErrInvalidUnit):
		return &app.ValidationError{Message: err.Error()}
	}
	return err
}

func objectIDVar(ctx *app.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Vars[name])
	if err != nil {
		return primitive.NilObjectID, &app.ValidationError{Message: "invalid " + name}
	}
	return id, nil
}

// CreateB2BUser - registers a business user
func (a *api) CreateB2BUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.B2BUser
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Phone == "" || payload.Name == "" || payload.Role == "" {
		return &app.ValidationError{Message: "name, phone and role are required"}
	}

	res, err := a.App.UserService.CreateB2BUser(&payload)
	if err != nil {
		return mapUserError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "User registered"))
	return nil
}

// CreateB2CUser - registers a consumer user
func (a *api) CreateB2CUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.B2CUser
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Phone == "" || payload.Name == "" {
		return &app.ValidationError{Message: "name and phone are required"}
	}

	res, err := a.App.UserService.CreateB2CUser(&payload)
	if err != nil {
		return mapUserError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "User registered"))
	return nil
}

func (a *api) FetchB2BUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	res, err := a.App.UserService.FetchB2BUser(id)
	if err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "User fetched"))
	return nil
}

func (a *api) FetchB2CUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	res, err := a.App.UserService.FetchB2CUser(id)
	if err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "User fetched"))
	return nil
}

// ListB2BUsers - lists business users, optionally narrowed to a role
func (a *api) ListB2BUsers(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := a.App.UserService.ListB2BUsers(r.URL.Query().Get("role"))
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Users fetched"))
	return nil
}

func (a *api) ListB2CUsers(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := a.App.UserService.ListB2CUsers()
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Users fetched"))
	return nil
}

func (a *api) UpdateB2BUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if err := a.App.UserService.UpdateB2BUser(id, fields); err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "User updated"))
	return nil
}

func (a *api) UpdateB2CUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if err := a.App.UserService.UpdateB2CUser(id, fields); err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "User updated"))
	return nil
}

func (a *api) DeleteB2BUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	if err := a.App.UserService.DeleteB2BUser(id); err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "User deleted"))
	return nil
}

func (a *api) DeleteB2CUser(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	if err := a.App.UserService.DeleteB2CUser(id); err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "User deleted"))
	return nil
}

// AddPushToken - registers an Expo push token for the logged in user
func (a *api) AddPushToken(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Token == "" {
		return &app.ValidationError{Message: "token is required"}
	}

	userID, err := primitive.ObjectIDFromHex(ctx.User.UserID)
	if err != nil {
		return &app.ValidationError{Message: "invalid user id in token"}
	}
	if err := a.App.UserService.AddPushToken(ctx.User.Segment, userID, payload.Token); err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Push token registered"))
	return nil
}

// UpdateCatalogPrice - updates one sub-category price on a B2B catalog,
// keeping the audit history of previous prices
func (a *api) UpdateCatalogPrice(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "userID")
	if err != nil {
		return err
	}
	var payload model.CatalogPriceUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Category == "" || payload.SubCategory == "" {
		return &app.ValidationError{Message: "category and subCategory are required"}
	}

	res, err := a.App.UserService.UpdateCatalogPrice(id, payload)
	if err != nil {
		return mapUserError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Catalog price updated"))
	return nil
}
