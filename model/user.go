package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceHistoryEntry - one audit record appended whenever a catalog price changes
type PriceHistoryEntry struct {
	Price     float64   `json:"price" bson:"price"`
	Unit      string    `json:"unit" bson:"unit"`
	Status    string    `json:"status" bson:"status"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CatalogSubCategory - a sub-category in a B2B user's price catalog
type CatalogSubCategory struct {
	Name    string              `json:"name" bson:"name"`
	Price   float64             `json:"price" bson:"price"`
	Unit    string              `json:"unit" bson:"unit"`
	Status  string              `json:"status" bson:"status"`
	History []PriceHistoryEntry `json:"history" bson:"history"`
}

// CatalogCategory - a category in a B2B user's price catalog
type CatalogCategory struct {
	Name          string               `json:"name" bson:"name"`
	SubCategories []CatalogSubCategory `json:"subCategories" bson:"subCategories"`
}

// B2BUser - a business user (retailer / wholesaler / manufacturer)
type B2BUser struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Phone        string             `json:"phone" bson:"phone"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Role         string             `json:"role" bson:"role"`
	BusinessName string             `json:"businessName,omitempty" bson:"businessName,omitempty"`
	City         string             `json:"city,omitempty" bson:"city,omitempty"`
	State        string             `json:"state,omitempty" bson:"state,omitempty"`
	Categories   []CatalogCategory  `json:"categories" bson:"categories"`
	PushTokens   []string           `json:"pushTokens,omitempty" bson:"pushTokens,omitempty"`
	OTP          string             `json:"-" bson:"otp,omitempty"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// B2CUser - a consumer user
type B2CUser struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Phone      string             `json:"phone" bson:"phone"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	City       string             `json:"city,omitempty" bson:"city,omitempty"`
	State      string             `json:"state,omitempty" bson:"state,omitempty"`
	Categories []string           `json:"categories,omitempty" bson:"categories,omitempty"`
	PushTokens []string           `json:"pushTokens,omitempty" bson:"pushTokens,omitempty"`
	OTP        string             `json:"-" bson:"otp,omitempty"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CatalogPriceUpdate - payload for updating one sub-category price in a B2B catalog
type CatalogPriceUpdate struct {
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Status      string  `json:"status"`
}

// Address - a saved delivery / pickup address
type Address struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Segment   string             `json:"segment" bson:"segment"`
	Line1     string             `json:"line1" bson:"line1"`
	Line2     string             `json:"line2,omitempty" bson:"line2,omitempty"`
	City      string             `json:"city" bson:"city"`
	State     string             `json:"state" bson:"state"`
	Pincode   string             `json:"pincode" bson:"pincode"`
	IsDefault bool               `json:"isDefault" bson:"isDefault"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
