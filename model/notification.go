package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification - a two-party order notification with per-party read receipts
type Notification struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Notification    string             `json:"notification" bson:"notification"`
	OrderID         primitive.ObjectID `json:"orderId,omitempty" bson:"orderId,omitempty"`
	OrderBy         primitive.ObjectID `json:"orderBy" bson:"orderBy"`
	OrderTo         primitive.ObjectID `json:"orderTo" bson:"orderTo"`
	OrderNo         string             `json:"orderNo,omitempty" bson:"orderNo,omitempty"`
	IsReadByOrderBy bool               `json:"isReadByOrderBy" bson:"isReadByOrderBy"`
	IsReadByOrderTo bool               `json:"isReadByOrderTo" bson:"isReadByOrderTo"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// PushMessage - one Expo push message
type PushMessage struct {
	To    string                 `json:"to"`
	Sound string                 `json:"sound"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
}
