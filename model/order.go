package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem - one line item of an order
type OrderItem struct {
	Category    string  `json:"category" bson:"category"`
	SubCategory string  `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	Unit        string  `json:"unit" bson:"unit"`
	Price       float64 `json:"price" bson:"price"`
}

// Order - a marketplace order between two parties
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNo     string             `json:"orderNo" bson:"orderNo"`
	OrderBy     primitive.ObjectID `json:"orderBy" bson:"orderBy"`
	OrderTo     primitive.ObjectID `json:"orderTo" bson:"orderTo"`
	BuyerRole   string             `json:"buyerRole" bson:"buyerRole"`
	SellerRole  string             `json:"sellerRole" bson:"sellerRole"`
	Items       []OrderItem        `json:"items" bson:"items"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	Status      string             `json:"status" bson:"status"`
	Remark      string             `json:"remark,omitempty" bson:"remark,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
