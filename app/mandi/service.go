package mandi

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines mandi reference data operations
type Service interface {
	CreateMandi(m *model.Mandi) (*model.Mandi, error)
	FetchMandi(id primitive.ObjectID) (*model.Mandi, error)
	ListMandis(state, city string) ([]model.Mandi, error)
	SearchMandis(query string) ([]model.Mandi, error)
	UpdateMandi(id primitive.ObjectID, fields bson.M) (*model.Mandi, error)
	DeleteMandi(id primitive.ObjectID) error
}

type service struct {
	config  *config.Config
	mongodb *mongodatabase.DBConfig
}

// NewService - creates new mandi service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:  conf,
		mongodb: repos.MongoDB,
	}
}

func (s *service) CreateMandi(m *model.Mandi) (*model.Mandi, error) {
	return createMandi(s.mongodb, m)
}

func (s *service) FetchMandi(id primitive.ObjectID) (*model.Mandi, error) {
	return fetchMandi(s.mongodb, id)
}

func (s *service) ListMandis(state, city string) ([]model.Mandi, error) {
	return listMandis(s.mongodb, state, city)
}

func (s *service) SearchMandis(query string) ([]model.Mandi, error) {
	return searchMandis(s.mongodb, query)
}

func (s *service) UpdateMandi(id primitive.ObjectID, fields bson.M) (*model.Mandi, error) {
	return updateMandi(s.mongodb, id, fields)
}

func (s *service) DeleteMandi(id primitive.ObjectID) error {
	return deleteMandi(s.mongodb, id)
}
