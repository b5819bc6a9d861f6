package authapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/app/otp"
	"github.com/agrimandi/agrimandi-server/app/user"
	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
)

// Ping Api
func (a *api) Ping(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "pong"))
	return nil
}

// RequestOTP - generates an OTP for the phone and dispatches it over sms
func (a *api) RequestOTP(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Phone == "" {
		return &app.ValidationError{Message: "phone is required"}
	}

	delivered, err := a.App.OtpService.RequestOTP(payload.Phone)
	if err != nil {
		return err
	}
	message := "OTP sent"
	if !delivered {
		message = "OTP generated but could not be delivered"
	}
	json.NewEncoder(w).Encode(util.SetResponse(map[string]interface{}{"success": delivered}, 1, message))
	return nil
}

// VerifyOTP - verifies the OTP and logs the user in with a fresh JWT
func (a *api) VerifyOTP(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	var payload struct {
		Phone   string `json:"phone"`
		OTP     string `json:"otp"`
		Segment string `json:"segment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return errors.Wrap(err, "unable to decode payload json")
	}
	if payload.Phone == "" || payload.OTP == "" {
		return &app.ValidationError{Message: "phone and otp are required"}
	}
	if payload.Segment == "" {
		payload.Segment = consts.SegmentB2B
	}

	if err := a.App.OtpService.VerifyOTP(payload.Phone, payload.OTP); err != nil {
		if errors.Is(err, otp.ErrMismatch) || errors.Is(err, otp.ErrExpired) {
			return &app.UserError{Message: err.Error(), StatusCode: http.StatusUnauthorized}
		}
		return err
	}

	userID, err := a.App.UserService.FetchUserIDByPhone(payload.Segment, payload.Phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return &app.UserError{Message: "user not registered", StatusCode: http.StatusNotFound}
		}
		return err
	}

	token, err := a.App.AuthService.CreateJWTToken(userID.Hex(), payload.Segment,
		time.Duration(a.App.Config.TokenExpiration)*time.Hour)
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(util.SetResponse(map[string]interface{}{
		"token":     token.Value,
		"expiresAt": token.ExpiresAt,
		"userID":    userID.Hex(),
		"segment":   payload.Segment,
	}, 1, "Login successful"))
	return nil
}
