package user

import (
	"context"
	"time"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAddressNotFound - no address with that id
var ErrAddressNotFound = errors.New("address not found")

func createAddress(db *mongodatabase.DBConfig, a *model.Address) (*model.Address, error) {
	dbConn, err := db.New(consts.Addresses)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()

	// only one default address per user
	if a.IsDefault {
		if err := clearDefault(dbConn.Collection, a.User); err != nil {
			return nil, err
		}
	}

	if _, err := dbConn.Collection.InsertOne(context.TODO(), a); err != nil {
		return nil, errors.Wrap(err, "unable to insert address")
	}
	return a, nil
}

func clearDefault(coll *mongo.Collection, userID primitive.ObjectID) error {
	_, err := coll.UpdateMany(context.TODO(),
		bson.M{"user": userID, "isDefault": true},
		bson.M{"$set": bson.M{"isDefault": false}})
	if err != nil {
		return errors.Wrap(err, "unable to clear default address")
	}
	return nil
}

func listAddresses(db *mongodatabase.DBConfig, userID primitive.ObjectID) ([]model.Address, error) {
	dbConn, err := db.New(consts.Addresses)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := dbConn.Collection.Find(context.TODO(), bson.M{"user": userID}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list addresses")
	}
	addresses := []model.Address{}
	if err := cur.All(context.TODO(), &addresses); err != nil {
		return nil, errors.Wrap(err, "unable to decode addresses")
	}
	return addresses, nil
}

func updateAddress(db *mongodatabase.DBConfig, id primitive.ObjectID, fields bson.M) (*model.Address, error) {
	dbConn, err := db.New(consts.Addresses)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	if isDefault, ok := fields["isDefault"].(bool); ok && isDefault {
		var current model.Address
		if err := dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&current); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrAddressNotFound
			}
			return nil, errors.Wrap(err, "unable to fetch address")
		}
		if err := clearDefault(dbConn.Collection, current.User); err != nil {
			return nil, err
		}
	}

	var updated model.Address
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update address")
	}
	return &updated, nil
}

func deleteAddress(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Addresses)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete address")
	}
	if res.DeletedCount == 0 {
		return ErrAddressNotFound
	}
	return nil
}
