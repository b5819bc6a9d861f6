package otp

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/cache"
	repo "github.com/agrimandi/agrimandi-server/model"

	"github.com/sirupsen/logrus"
)

// Service - issues and verifies login OTPs
type Service interface {
	// RequestOTP reports whether the code was delivered over sms;
	// an undelivered code is still stored and verifiable
	RequestOTP(phone string) (bool, error)
	VerifyOTP(phone, code string) error
}

type service struct {
	config *config.Config
	cache  *cache.Cache
}

// NewService - creates new OTP service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config: conf,
		cache:  repos.Cache,
	}
}

func (s *service) RequestOTP(phone string) (bool, error) {
	code, err := generateOTP(s.config, phone)
	if err != nil {
		return false, err
	}
	if err := storeOTP(s.cache, s.config, phone, code); err != nil {
		return false, err
	}

	// delivery failure never fails the request; the caller can retry
	if err := sendSMS(s.config, phone, code); err != nil {
		logrus.WithError(err).WithField("phone", phone).Error("unable to dispatch OTP sms")
		return false, nil
	}
	return true, nil
}

func (s *service) VerifyOTP(phone, code string) error {
	return verifyOTP(s.cache, phone, code)
}
