package order

import (
	"fmt"

	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/app/notification"
	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines marketplace order operations
type Service interface {
	CreateOrder(o *model.Order) (*model.Order, error)
	FetchOrder(id primitive.ObjectID) (*model.Order, error)
	ListOrdersByParty(userID primitive.ObjectID) ([]model.Order, error)
	UpdateOrderStatus(id primitive.ObjectID, status, remark string) (*model.Order, error)
	DeleteOrder(id primitive.ObjectID) error
}

type service struct {
	config        *config.Config
	mongodb       *mongodatabase.DBConfig
	notifications notification.Service
}

// NewService - creates new order service
func NewService(repos *repo.Repos, conf *config.Config, notifications notification.Service) Service {
	return &service{
		config:        conf,
		mongodb:       repos.MongoDB,
		notifications: notifications,
	}
}

func (s *service) segmentFor(o *model.Order) string {
	if o.BuyerRole == consts.RoleConsumer {
		return consts.SegmentB2C
	}
	return consts.SegmentB2B
}

// notify records a notification for both parties; failure never fails the
// order operation.
func (s *service) notify(o *model.Order, text string) {
	n := &model.Notification{
		Notification: text,
		OrderID:      o.ID,
		OrderBy:      o.OrderBy,
		OrderTo:      o.OrderTo,
		OrderNo:      o.OrderNo,
	}
	if _, err := s.notifications.CreateNotification(s.segmentFor(o), n); err != nil {
		logrus.WithError(err).WithField("orderNo", o.OrderNo).Error("unable to create order notification")
	}
}

func (s *service) CreateOrder(o *model.Order) (*model.Order, error) {
	created, err := createOrder(s.mongodb, o)
	if err != nil {
		return nil, err
	}
	s.notify(created, fmt.Sprintf("Order %s placed", created.OrderNo))
	return created, nil
}

func (s *service) FetchOrder(id primitive.ObjectID) (*model.Order, error) {
	return fetchOrder(s.mongodb, id)
}

func (s *service) ListOrdersByParty(userID primitive.ObjectID) ([]model.Order, error) {
	return listOrdersByParty(s.mongodb, userID)
}

func (s *service) UpdateOrderStatus(id primitive.ObjectID, status, remark string) (*model.Order, error) {
	updated, err := updateOrderStatus(s.mongodb, id, status, remark)
	if err != nil {
		return nil, err
	}
	s.notify(updated, fmt.Sprintf("Order %s %s", updated.OrderNo, updated.Status))
	return updated, nil
}

func (s *service) DeleteOrder(id primitive.ObjectID) error {
	return deleteOrder(s.mongodb, id)
}
