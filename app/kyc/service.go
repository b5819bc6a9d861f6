package kyc

import (
	"fmt"

	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/app/notification"
	"github.com/agrimandi/agrimandi-server/app/user"
	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines KYC verification operations
type Service interface {
	FetchByUser(userID primitive.ObjectID) (*model.KYC, error)
	UpdateFields(userID primitive.ObjectID, fields bson.M) (*model.KYC, error)
	UpdateStatus(userID primitive.ObjectID, status, remark string) (*model.KYC, error)
	AddDocument(userID primitive.ObjectID, doc model.KYCDocument) (*model.KYC, error)
	RemoveDocument(userID primitive.ObjectID, key string) (*model.KYC, error)
	VerifyPAN(pan string) (*model.PANVerification, error)
}

type service struct {
	config        *config.Config
	mongodb       *mongodatabase.DBConfig
	users         user.Service
	notifications notification.Service
}

// NewService - creates new KYC service
func NewService(repos *repo.Repos, conf *config.Config, users user.Service, notifications notification.Service) Service {
	return &service{
		config:        conf,
		mongodb:       repos.MongoDB,
		users:         users,
		notifications: notifications,
	}
}

func (s *service) FetchByUser(userID primitive.ObjectID) (*model.KYC, error) {
	return fetchByUser(s.mongodb, userID)
}

func (s *service) UpdateFields(userID primitive.ObjectID, fields bson.M) (*model.KYC, error) {
	return updateFields(s.mongodb, userID, fields)
}

func (s *service) UpdateStatus(userID primitive.ObjectID, status, remark string) (*model.KYC, error) {
	updated, err := updateStatus(s.mongodb, userID, status, remark)
	if err != nil {
		return nil, err
	}
	s.notifyStatus(updated)
	return updated, nil
}

// notifyStatus pushes the new status to the user's devices. Best effort.
func (s *service) notifyStatus(record *model.KYC) {
	var tokens []string
	if record.Segment == consts.SegmentB2C {
		u, err := s.users.FetchB2CUser(record.User)
		if err != nil {
			logrus.WithError(err).Warn("unable to resolve user for KYC push")
			return
		}
		tokens = u.PushTokens
	} else {
		u, err := s.users.FetchB2BUser(record.User)
		if err != nil {
			logrus.WithError(err).Warn("unable to resolve user for KYC push")
			return
		}
		tokens = u.PushTokens
	}
	body := fmt.Sprintf("Your KYC is %s", record.Status)
	s.notifications.PushToTokens(tokens, "KYC status updated", body, map[string]interface{}{"status": record.Status})
}

func (s *service) AddDocument(userID primitive.ObjectID, doc model.KYCDocument) (*model.KYC, error) {
	return addDocument(s.mongodb, userID, doc)
}

func (s *service) RemoveDocument(userID primitive.ObjectID, key string) (*model.KYC, error) {
	return removeDocument(s.mongodb, userID, key)
}

func (s *service) VerifyPAN(pan string) (*model.PANVerification, error) {
	return verifyPAN(s.config, pan)
}
