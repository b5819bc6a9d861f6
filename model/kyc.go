package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KYCDocument - an uploaded verification document
type KYCDocument struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
	Key  string `json:"key" bson:"key"`
}

// KYC - a Know-Your-Customer verification record, one per user
type KYC struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Segment   string             `json:"segment" bson:"segment"`
	PAN       string             `json:"pan,omitempty" bson:"pan,omitempty"`
	GSTIN     string             `json:"gstin,omitempty" bson:"gstin,omitempty"`
	Documents []KYCDocument      `json:"documents" bson:"documents"`
	Status    string             `json:"status" bson:"status"`
	Remark    string             `json:"remark,omitempty" bson:"remark,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PANVerification - result of the third-party PAN check
type PANVerification struct {
	PAN      string `json:"pan"`
	Name     string `json:"name,omitempty"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
}
