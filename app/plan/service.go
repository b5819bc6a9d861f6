package plan

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines subscription plan operations
type Service interface {
	CreatePlan(p *model.Plan) (*model.Plan, error)
	ListPlans() ([]model.Plan, error)
	UpdatePlan(id primitive.ObjectID, fields bson.M) (*model.Plan, error)
	DeletePlan(id primitive.ObjectID) error
}

type service struct {
	config  *config.Config
	mongodb *mongodatabase.DBConfig
}

// NewService - creates new plan service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:  conf,
		mongodb: repos.MongoDB,
	}
}

func (s *service) CreatePlan(p *model.Plan) (*model.Plan, error) {
	return createPlan(s.mongodb, p)
}

func (s *service) ListPlans() ([]model.Plan, error) {
	return listPlans(s.mongodb)
}

func (s *service) UpdatePlan(id primitive.ObjectID, fields bson.M) (*model.Plan, error) {
	return updatePlan(s.mongodb, id, fields)
}

func (s *service) DeletePlan(id primitive.ObjectID) error {
	return deletePlan(s.mongodb, id)
}
