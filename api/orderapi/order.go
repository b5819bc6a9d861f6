package orderapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/order"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapOrderError(err error) error {
	switch {
	case errors.Is(err, order.ErrNotFound):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, order.ErrInvalidFlow), errors.Is(err, order.ErrInvalidStatus):
		return &app.ValidationError{Message: err.Error()}
	}
	return err
}

func orderIDVar(ctx *app.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Vars["orderID"])
	if err != nil {
		return primitive.NilObjectID, &app.ValidationError{Message: "invalid orderID"}
	}
	return id, nil
}

// CreateOrder - places an order between two parties
func (a *api) CreateOrder(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Order
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.OrderBy.IsZero() || payload.OrderTo.IsZero() || len(payload.Items) == 0 {
		return &app.ValidationError{Message: "orderBy, orderTo and items are required"}
	}

	res, err := a.App.OrderService.CreateOrder(&payload)
	if err != nil {
		return mapOrderError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Order placed"))
	return nil
}

func (a *api) FetchOrder(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := orderIDVar(ctx)
	if err != nil {
		return err
	}
	res, err := a.App.OrderService.FetchOrder(id)
	if err != nil {
		return mapOrderError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Order fetched"))
	return nil
}

// ListOrders - orders where the logged in user is either party
func (a *api) ListOrders(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	userID, err := primitive.ObjectIDFromHex(ctx.User.UserID)
	if err != nil {
		return &app.ValidationError{Message: "invalid user id in token"}
	}
	res, err := a.App.OrderService.ListOrdersByParty(userID)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Orders fetched"))
	return nil
}

// UpdateOrderStatus - moves an order through its lifecycle
func (a *api) UpdateOrderStatus(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := orderIDVar(ctx)
	if err != nil {
		return err
	}
	var payload struct {
		Status string `json:"status"`
		Remark string `json:"remark"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Status == "" {
		return &app.ValidationError{Message: "status is required"}
	}

	res, err := a.App.OrderService.UpdateOrderStatus(id, payload.Status, payload.Remark)
	if err != nil {
		return mapOrderError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Order status updated"))
	return nil
}

func (a *api) DeleteOrder(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := orderIDVar(ctx)
	if err != nil {
		return err
	}
	if err := a.App.OrderService.DeleteOrder(id); err != nil {
		return mapOrderError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "Order deleted"))
	return nil
}
