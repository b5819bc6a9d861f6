package authapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrimandi/agrimandi-server/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOtpService struct {
	delivered bool
	verifyErr error
}

func (s *stubOtpService) RequestOTP(phone string) (bool, error) {
	return s.delivered, nil
}

func (s *stubOtpService) VerifyOTP(phone, code string) error {
	return s.verifyErr
}

func TestRequestOTPDelivered(t *testing.T) {
	a := &api{App: &app.App{OtpService: &stubOtpService{delivered: true}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/request",
		bytes.NewBufferString(`{"phone":"9876543210"}`))

	require.NoError(t, a.RequestOTP(&app.Context{}, rec, req))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "OTP sent", payload["message"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["success"])
}

func TestRequestOTPUndelivered(t *testing.T) {
	a := &api{App: &app.App{OtpService: &stubOtpService{delivered: false}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/request",
		bytes.NewBufferString(`{"phone":"9876543210"}`))

	require.NoError(t, a.RequestOTP(&app.Context{}, rec, req))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "OTP generated but could not be delivered", payload["message"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["success"])
}

func TestRequestOTPMissingPhone(t *testing.T) {
	a := &api{App: &app.App{OtpService: &stubOtpService{delivered: true}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/request",
		bytes.NewBufferString(`{}`))

	err := a.RequestOTP(&app.Context{}, rec, req)
	var verr *app.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone is required", verr.Message)
}
