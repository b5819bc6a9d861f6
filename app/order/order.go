package order

import (
	"context"
	"fmt"
	"time"

	"github.com/agrimandi/agrimandi-server/app/user"
	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound - no order matched
var ErrNotFound = errors.New("order not found")

// ErrInvalidFlow - the buyer role cannot order from the seller role
var ErrInvalidFlow = errors.New("order flow not allowed for these roles")

// ErrInvalidStatus - status outside the allowed set
var ErrInvalidStatus = errors.New("invalid order status")

var validStatuses = []string{
	consts.OrderPlaced, consts.OrderAccepted, consts.OrderRejected,
	consts.OrderShipped, consts.OrderDelivered, consts.OrderCancelled,
}

// ValidateFlow reports whether the buyer role may order from the seller role.
func ValidateFlow(buyerRole, sellerRole string) bool {
	return util.Contains(user.AllowedSellerRoles(buyerRole), sellerRole)
}

// TotalAmount sums quantity * price across the line items.
func TotalAmount(items []model.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Quantity * item.Price
	}
	return total
}

func newOrderNo() string {
	suffix, err := util.EncodeToString(4)
	if err != nil {
		suffix = "0000"
	}
	return fmt.Sprintf("ORD%s%s", time.Now().Format("20060102150405"), suffix)
}

func createOrder(db *mongodatabase.DBConfig, o *model.Order) (*model.Order, error) {
	if !ValidateFlow(o.BuyerRole, o.SellerRole) {
		return nil, ErrInvalidFlow
	}

	dbConn, err := db.New(consts.Orders)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	o.ID = primitive.NewObjectID()
	o.OrderNo = newOrderNo()
	o.TotalAmount = TotalAmount(o.Items)
	o.Status = consts.OrderPlaced
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt

	if _, err := dbConn.Collection.InsertOne(context.TODO(), o); err != nil {
		return nil, errors.Wrap(err, "unable to insert order")
	}
	return o, nil
}

func fetchOrder(db *mongodatabase.DBConfig, id primitive.ObjectID) (*model.Order, error) {
	dbConn, err := db.New(consts.Orders)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var o model.Order
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch order")
	}
	return &o, nil
}

func listOrdersByParty(db *mongodatabase.DBConfig, userID primitive.ObjectID) ([]model.Order, error) {
	dbConn, err := db.New(consts.Orders)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{"$or": []bson.M{
		{"orderBy": userID},
		{"orderTo": userID},
	}}
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := dbConn.Collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list orders")
	}

	orders := []model.Order{}
	if err := cur.All(context.TODO(), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func updateOrderStatus(db *mongodatabase.DBConfig, id primitive.ObjectID, status, remark string) (*model.Order, error) {
	if !util.Contains(validStatuses, status) {
		return nil, ErrInvalidStatus
	}

	dbConn, err := db.New(consts.Orders)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if remark != "" {
		set["remark"] = remark
	}

	var updated model.Order
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update order status")
	}
	return &updated, nil
}

func deleteOrder(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Orders)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete order")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
