package user

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines user business rules for both segments
type Service interface {
	CreateB2BUser(user *model.B2BUser) (*model.B2BUser, error)
	CreateB2CUser(user *model.B2CUser) (*model.B2CUser, error)
	FetchB2BUser(id primitive.ObjectID) (*model.B2BUser, error)
	FetchB2CUser(id primitive.ObjectID) (*model.B2CUser, error)
	FetchUserIDByPhone(segment, phone string) (primitive.ObjectID, error)
	ListB2BUsers(role string) ([]model.B2BUser, error)
	ListB2CUsers() ([]model.B2CUser, error)
	UpdateB2BUser(id primitive.ObjectID, fields bson.M) error
	UpdateB2CUser(id primitive.ObjectID, fields bson.M) error
	UpdateCatalogPrice(userID primitive.ObjectID, upd model.CatalogPriceUpdate) (*model.B2BUser, error)
	DeleteB2BUser(id primitive.ObjectID) error
	DeleteB2CUser(id primitive.ObjectID) error
	AddPushToken(segment string, id primitive.ObjectID, token string) error
	CreateAddress(address *model.Address) (*model.Address, error)
	ListAddresses(userID primitive.ObjectID) ([]model.Address, error)
	UpdateAddress(id primitive.ObjectID, fields bson.M) (*model.Address, error)
	DeleteAddress(id primitive.ObjectID) error
}

type service struct {
	config  *config.Config
	mongodb *mongodatabase.DBConfig
}

// NewService - creates new user service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:  conf,
		mongodb: repos.MongoDB,
	}
}

func (s *service) CreateB2BUser(user *model.B2BUser) (*model.B2BUser, error) {
	return createB2BUser(s.mongodb, user)
}

func (s *service) CreateB2CUser(user *model.B2CUser) (*model.B2CUser, error) {
	return createB2CUser(s.mongodb, user)
}

func (s *service) FetchB2BUser(id primitive.ObjectID) (*model.B2BUser, error) {
	return fetchB2BUser(s.mongodb, id)
}

func (s *service) FetchB2CUser(id primitive.ObjectID) (*model.B2CUser, error) {
	return fetchB2CUser(s.mongodb, id)
}

func (s *service) FetchUserIDByPhone(segment, phone string) (primitive.ObjectID, error) {
	return fetchUserIDByPhone(s.mongodb, segment, phone)
}

func (s *service) ListB2BUsers(role string) ([]model.B2BUser, error) {
	return listB2BUsers(s.mongodb, role)
}

func (s *service) ListB2CUsers() ([]model.B2CUser, error) {
	return listB2CUsers(s.mongodb)
}

func (s *service) UpdateB2BUser(id primitive.ObjectID, fields bson.M) error {
	return updateUserFields(s.mongodb, segmentCollection(consts.SegmentB2B), id, fields)
}

func (s *service) UpdateB2CUser(id primitive.ObjectID, fields bson.M) error {
	return updateUserFields(s.mongodb, segmentCollection(consts.SegmentB2C), id, fields)
}

func (s *service) UpdateCatalogPrice(userID primitive.ObjectID, upd model.CatalogPriceUpdate) (*model.B2BUser, error) {
	return updateCatalogPrice(s.mongodb, userID, upd)
}

func (s *service) DeleteB2BUser(id primitive.ObjectID) error {
	return deleteUser(s.mongodb, segmentCollection(consts.SegmentB2B), id)
}

func (s *service) DeleteB2CUser(id primitive.ObjectID) error {
	return deleteUser(s.mongodb, segmentCollection(consts.SegmentB2C), id)
}

func (s *service) AddPushToken(segment string, id primitive.ObjectID, token string) error {
	return addPushToken(s.mongodb, segment, id, token)
}

func (s *service) CreateAddress(address *model.Address) (*model.Address, error) {
	return createAddress(s.mongodb, address)
}

func (s *service) ListAddresses(userID primitive.ObjectID) ([]model.Address, error) {
	return listAddresses(s.mongodb, userID)
}

func (s *service) UpdateAddress(id primitive.ObjectID, fields bson.M) (*model.Address, error) {
	return updateAddress(s.mongodb, id, fields)
}

func (s *service) DeleteAddress(id primitive.ObjectID) error {
	return deleteAddress(s.mongodb, id)
}
