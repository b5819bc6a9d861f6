package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category - a top-level commodity category
type Category struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// SubCategory - a commodity variant under a category
type SubCategory struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Category  primitive.ObjectID `json:"category" bson:"category"`
	Name      string             `json:"name" bson:"name"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Post - a marketplace listing (sell or buy intent)
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Segment     string             `json:"segment" bson:"segment"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category"`
	SubCategory string             `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Quantity    float64            `json:"quantity" bson:"quantity"`
	Unit        string             `json:"unit" bson:"unit"`
	Price       float64            `json:"price" bson:"price"`
	Images      []KYCDocument      `json:"images,omitempty" bson:"images,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Quotation - a quote offered against a post
type Quotation struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Post      primitive.ObjectID `json:"post" bson:"post"`
	QuotedBy  primitive.ObjectID `json:"quotedBy" bson:"quotedBy"`
	Price     float64            `json:"price" bson:"price"`
	Unit      string             `json:"unit" bson:"unit"`
	Message   string             `json:"message,omitempty" bson:"message,omitempty"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Plan - a subscription plan
type Plan struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64            `json:"price" bson:"price"`
	DurationDays int                `json:"durationDays" bson:"durationDays"`
	Features     []string           `json:"features,omitempty" bson:"features,omitempty"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
