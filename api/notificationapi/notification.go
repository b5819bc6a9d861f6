package notificationapi

import (
	"encoding/json"
	"net/http"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/notification"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mapNotificationError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, notification.ErrNotParty):
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusForbidden}
	}
	return err
}

func (a *api) callerID(ctx *app.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.User.UserID)
	if err != nil {
		return primitive.NilObjectID, &app.ValidationError{Message: "invalid user id in token"}
	}
	return id, nil
}

// CreateNotification - records an order notification for both parties
func (a *api) CreateNotification(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload model.Notification
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Notification == "" || payload.OrderBy.IsZero() || payload.OrderTo.IsZero() {
		return &app.ValidationError{Message: "notification, orderBy and orderTo are required"}
	}

	res, err := a.App.NotificationService.CreateNotification(ctx.User.Segment, &payload)
	if err != nil {
		return mapNotificationError(err)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Notification created"))
	return nil
}

// ListNotifications - notifications where the caller is either party, newest first
func (a *api) ListNotifications(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	caller, err := a.callerID(ctx)
	if err != nil {
		return err
	}
	res, err := a.App.NotificationService.ListNotifications(ctx.User.Segment, caller)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetPaginationResponse(res, len(res), 1, "Notifications fetched"))
	return nil
}

// UnreadCount - how many notifications the caller has not read yet
func (a *api) UnreadCount(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	caller, err := a.callerID(ctx)
	if err != nil {
		return err
	}
	count, err := a.App.NotificationService.UnreadCount(ctx.User.Segment, caller)
	if err != nil {
		return err
	}
	json.NewEncoder(w).Encode(util.SetResponse(map[string]interface{}{"count": count}, 1, "Unread count fetched"))
	return nil
}

// MarkNotificationAsRead - flips only the read flag belonging to the caller
func (a *api) MarkNotificationAsRead(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	caller, err := a.callerID(ctx)
	if err != nil {
		return err
	}
	notificationID, err := primitive.ObjectIDFromHex(ctx.Vars["notificationID"])
	if err != nil {
		return &app.ValidationError{Message: "invalid notificationID"}
	}

	res, err := a.App.NotificationService.MarkNotificationAsRead(ctx.User.Segment, notificationID, caller)
	if err != nil {
		return mapNotificationError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(res, 1, "Notification marked as read"))
	return nil
}

// MarkAllNotificationsAsRead - flips the caller's read flag on every notification
func (a *api) MarkAllNotificationsAsRead(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	caller, err := a.callerID(ctx)
	if err != nil {
		return err
	}
	if err := a.App.NotificationService.MarkAllNotificationsAsRead(ctx.User.Segment, caller); err != nil {
		return mapNotificationError(err)
	}
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "All notifications marked as read"))
	return nil
}
