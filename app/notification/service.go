package notification

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service - defines two-party notification operations per segment
type Service interface {
	CreateNotification(segment string, n *model.Notification) (*model.Notification, error)
	ListNotifications(segment string, userID primitive.ObjectID) ([]model.Notification, error)
	UnreadCount(segment string, userID primitive.ObjectID) (int64, error)
	MarkNotificationAsRead(segment string, notificationID, userID primitive.ObjectID) (*model.Notification, error)
	MarkAllNotificationsAsRead(segment string, userID primitive.ObjectID) error
	PushToTokens(tokens []string, title, body string, data map[string]interface{})
	BroadcastPush(title, body string) error
}

type service struct {
	config  *config.Config
	mongodb *mongodatabase.DBConfig
}

// NewService - creates new notification service
func NewService(repos *repo.Repos, conf *config.Config) Service {
	return &service{
		config:  conf,
		mongodb: repos.MongoDB,
	}
}

func (s *service) CreateNotification(segment string, n *model.Notification) (*model.Notification, error) {
	return createNotification(s.mongodb, segment, n)
}

func (s *service) ListNotifications(segment string, userID primitive.ObjectID) ([]model.Notification, error) {
	return listNotifications(s.mongodb, segment, userID)
}

func (s *service) UnreadCount(segment string, userID primitive.ObjectID) (int64, error) {
	return unreadCount(s.mongodb, segment, userID)
}

func (s *service) MarkNotificationAsRead(segment string, notificationID, userID primitive.ObjectID) (*model.Notification, error) {
	return markNotificationAsRead(s.mongodb, segment, notificationID, userID)
}

func (s *service) MarkAllNotificationsAsRead(segment string, userID primitive.ObjectID) error {
	return markAllNotificationsAsRead(s.mongodb, segment, userID)
}

func (s *service) PushToTokens(tokens []string, title, body string, data map[string]interface{}) {
	sendPushToTokens(s.config, tokens, title, body, data)
}

func (s *service) BroadcastPush(title, body string) error {
	tokens, err := fetchAllPushTokens(s.mongodb)
	if err != nil {
		return err
	}
	sendPushToTokens(s.config, tokens, title, body, nil)
	return nil
}
