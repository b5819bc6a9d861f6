package otp

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/cache"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/go-redis/redis/v7"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrMismatch - the submitted code does not match the stored one
var ErrMismatch = errors.New("incorrect OTP")

// ErrExpired - no code is stored for the phone (never issued or expired)
var ErrExpired = errors.New("OTP expired or not requested")

var smsClient = &http.Client{Timeout: 10 * time.Second}

func otpKey(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

func generateOTP(conf *config.Config, phone string) (string, error) {
	if util.Contains(conf.TestPhones, phone) {
		return conf.TestOTP, nil
	}
	length := conf.OTPLength
	if length == 0 {
		length = 4
	}
	return util.EncodeToString(length)
}

func storeOTP(c *cache.Cache, conf *config.Config, phone, code string) error {
	ttl := conf.OTPTTL
	if ttl == 0 {
		ttl = cache.Expire5M
	}
	return c.SetValueWithTTL(otpKey(phone), code, ttl)
}

func verifyOTP(c *cache.Cache, phone, code string) error {
	stored, err := c.GetValue(otpKey(phone))
	if err == redis.Nil {
		return ErrExpired
	}
	if err != nil {
		return errors.Wrap(err, "unable to read stored OTP")
	}
	if stored != code {
		return ErrMismatch
	}
	// consume the code only on a successful match
	if err := c.DeleteValue(otpKey(phone)); err != nil {
		logrus.WithError(err).Warn("unable to clear consumed OTP")
	}
	return nil
}

// sendSMS dispatches the code through the SMS gateway. The gateway takes a
// GET request with everything in the query string.
func sendSMS(conf *config.Config, phone, code string) error {
	q := url.Values{}
	q.Set("authorization", conf.SMSAuthKey)
	q.Set("route", conf.SMSRoute)
	q.Set("variables_values", code)
	q.Set("flash", "0")
	q.Set("sender_id", conf.SMSSenderID)
	q.Set("numbers", phone)

	req, err := http.NewRequest(http.MethodGet, conf.SMSGatewayURL+"?"+q.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "unable to build SMS request")
	}

	resp, err := smsClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "SMS gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.Errorf("SMS gateway responded with %d", resp.StatusCode)
	}
	return nil
}
