package auth

import (
	"time"

	"github.com/agrimandi/agrimandi-server/app/config"
	repo "github.com/agrimandi/agrimandi-server/model"
)

type Service interface {
	FetchJWTToken(token string) (*Claims, error)
	CreateJWTToken(userID, segment string, tokenExpiration time.Duration) (*JWTToken, error)
}

type service struct {
	config *config.Config
}

func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config: conf,
	}
}

func (s *service) FetchJWTToken(token string) (*Claims, error) {
	claims, err := fetchJWTToken(token, s.config.JWTKey)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *service) CreateJWTToken(userID, segment string, tokenExpiration time.Duration) (*JWTToken, error) {
	return createJWTToken(userID, segment, s.config.JWTKey, tokenExpiration)
}
