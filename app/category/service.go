package category

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines commodity category operations
type Service interface {
	CreateCategory(c *model.Category) (*model.Category, error)
	ListCategories() ([]model.Category, error)
	UpdateCategory(id primitive.ObjectID, fields bson.M) (*model.Category, error)
	DeleteCategory(id primitive.ObjectID) error
	CreateSubCategory(sc *model.SubCategory) (*model.SubCategory, error)
	ListSubCategories(categoryID primitive.ObjectID) ([]model.SubCategory, error)
	DeleteSubCategory(id primitive.ObjectID) error
}

type service struct {
	config  *config.Config
	mongodb *mongodatabase.DBConfig
}

// NewService - creates new category service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:  conf,
		mongodb: repos.MongoDB,
	}
}

func (s *service) CreateCategory(c *model.Category) (*model.Category, error) {
	return createCategory(s.mongodb, c)
}

func (s *service) ListCategories() ([]model.Category, error) {
	return listCategories(s.mongodb)
}

func (s *service) UpdateCategory(id primitive.ObjectID, fields bson.M) (*model.Category, error) {
	return updateCategory(s.mongodb, id, fields)
}

func (s *service) DeleteCategory(id primitive.ObjectID) error {
	return deleteCategory(s.mongodb, id)
}

func (s *service) CreateSubCategory(sc *model.SubCategory) (*model.SubCategory, error) {
	return createSubCategory(s.mongodb, sc)
}

func (s *service) ListSubCategories(categoryID primitive.ObjectID) ([]model.SubCategory, error) {
	return listSubCategories(s.mongodb, categoryID)
}

func (s *service) DeleteSubCategory(id primitive.ObjectID) error {
	return deleteSubCategory(s.mongodb, id)
}
