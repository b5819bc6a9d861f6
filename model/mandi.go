package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mandi - a regional wholesale market that price records attach to
type Mandi struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	City       string             `json:"city" bson:"city"`
	State      string             `json:"state" bson:"state"`
	Categories []string           `json:"categories" bson:"categories"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// CategoryPrice - one price observation inside a MandiCategoryPrice document
type CategoryPrice struct {
	Category        string    `json:"category" bson:"category"`
	SubCategory     string    `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Price           float64   `json:"price" bson:"price"`
	PriceDifference float64   `json:"priceDifference" bson:"priceDifference"`
	Unit            string    `json:"unit" bson:"unit"`
	Date            string    `json:"date,omitempty" bson:"date,omitempty"`
	Time            string    `json:"time,omitempty" bson:"time,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// MandiCategoryPrice - the append-only price log of one mandi
type MandiCategoryPrice struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Mandi          primitive.ObjectID `json:"mandi" bson:"mandi"`
	CategoryPrices []CategoryPrice    `json:"categoryPrices" bson:"categoryPrices"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// BulkRateEntry - one row of the bulk save-or-update payload
type BulkRateEntry struct {
	MandiID         string  `json:"mandiId"`
	Category        string  `json:"category"`
	SubCategory     string  `json:"subCategory,omitempty"`
	Price           float64 `json:"price"`
	PriceDifference float64 `json:"priceDifference"`
	Unit            string  `json:"unit"`
	Date            string  `json:"date,omitempty"`
	Time            string  `json:"time,omitempty"`
}

// SkippedEntry - a bulk entry dropped before the write, with the reason
type SkippedEntry struct {
	Entry  BulkRateEntry `json:"entry"`
	Reason string        `json:"reason"`
}

// PriceDifference - the "what changed since last time" answer for one pair
type PriceDifference struct {
	Mandi         string  `json:"mandi"`
	Category      string  `json:"category"`
	SubCategory   string  `json:"subCategory,omitempty"`
	CurrentPrice  float64 `json:"currentPrice"`
	PreviousPrice float64 `json:"previousPrice"`
	Difference    float64 `json:"difference"`
	PercentChange string  `json:"percentChange"`
	Tag           string  `json:"tag"`
	Unit          string  `json:"unit"`
}
