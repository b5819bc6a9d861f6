package post

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines marketplace listing and quotation operations
type Service interface {
	CreatePost(p *model.Post) (*model.Post, error)
	FetchPost(id primitive.ObjectID) (*model.Post, error)
	ListPosts(category string, userID primitive.ObjectID) ([]model.Post, error)
	UpdatePost(id primitive.ObjectID, fields bson.M) (*model.Post, error)
	DeletePost(id primitive.ObjectID) error
	CreateQuotation(q *model.Quotation) (*model.Quotation, error)
	ListQuotationsByPost(postID primitive.ObjectID) ([]model.Quotation, error)
	DeleteQuotation(id primitive.ObjectID) error
}

type service struct {
	config  *config.Config
	mongodb *mongodatabase.DBConfig
}

// NewService - creates new post service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:  conf,
		mongodb: repos.MongoDB,
	}
}

func (s *service) CreatePost(p *model.Post) (*model.Post, error) {
	return createPost(s.mongodb, p)
}

func (s *service) FetchPost(id primitive.ObjectID) (*model.Post, error) {
	return fetchPost(s.mongodb, id)
}

func (s *service) ListPosts(category string, userID primitive.ObjectID) ([]model.Post, error) {
	return listPosts(s.mongodb, category, userID)
}

func (s *service) UpdatePost(id primitive.ObjectID, fields bson.M) (*model.Post, error) {
	return updatePost(s.mongodb, id, fields)
}

func (s *service) DeletePost(id primitive.ObjectID) error {
	return deletePost(s.mongodb, id)
}

func (s *service) CreateQuotation(q *model.Quotation) (*model.Quotation, error) {
	return createQuotation(s.mongodb, q)
}

func (s *service) ListQuotationsByPost(postID primitive.ObjectID) ([]model.Quotation, error) {
	return listQuotationsByPost(s.mongodb, postID)
}

func (s *service) DeleteQuotation(id primitive.ObjectID) error {
	return deleteQuotation(s.mongodb, id)
}
