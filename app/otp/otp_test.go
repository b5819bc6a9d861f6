package otp

import (
	"testing"

	"github.com/agrimandi/agrimandi-server/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPTestPhone(t *testing.T) {
	conf := &config.Config{
		TestPhones: []string{"9999999999"},
		TestOTP:    "1234",
	}

	code, err := generateOTP(conf, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "1234", code)
}

func TestGenerateOTPRandomForOthers(t *testing.T) {
	conf := &config.Config{
		TestPhones: []string{"9999999999"},
		TestOTP:    "1234",
		OTPLength:  4,
	}

	code, err := generateOTP(conf, "8888888888")
	require.NoError(t, err)
	assert.Len(t, code, 4)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestGenerateOTPDefaultLength(t *testing.T) {
	code, err := generateOTP(&config.Config{}, "7777777777")
	require.NoError(t, err)
	assert.Len(t, code, 4)
}

func TestOTPKey(t *testing.T) {
	assert.Equal(t, "otp:9876543210", otpKey("9876543210"))
}
