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

// CreateAddress - saves a delivery address for the logged in user
func (a *api) CreateAddress(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Address
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Line1 == "" || payload.City == "" || payload.State == "" || payload.Pincode == "" {
		return &app.ValidationError{Message: "line1, city, state and pincode are required"}
	}

	userID, err := primitive.ObjectIDFromHex(ctx.User.UserID)
	if err != nil {
		return &app.ValidationError{Message: "invalid user id in token"}
	}
	payload.User = userID
	payload.Segment = ctx.User.Segment

	res, err := a.App.UserService.CreateAddress(&payload)
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Address saved"))
	return nil
}

// ListAddresses - lists the logged in user's addresses, newest first
func (a *api) ListAddresses(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := primitive.ObjectIDFromHex(ctx.User.UserID)
	if err != nil {
		return &app.ValidationError{Message: "invalid user id in token"}
	}
	res, err := a.App.UserService.ListAddresses(userID)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Addresses fetched"))
	return nil
}

func (a *api) UpdateAddress(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "addressID")
	if err != nil {
		return err
	}
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}

	res, err := a.App.UserService.UpdateAddress(id, fields)
	if err != nil {
		if errors.Is(err, user.ErrAddressNotFound) {
			return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
		}
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Address updated"))
	return nil
}

func (a *api) DeleteAddress(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := objectIDVar(ctx, "addressID")
	if err != nil {
		return err
	}
	if err := a.App.UserService.DeleteAddress(id); err != nil {
		if errors.Is(err, user.ErrAddressNotFound) {
			return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
		}
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Address deleted"))
	return nil
}
