package kyc

import (
	"context"
	"time"

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

// ErrNotFound - no KYC record matched
var ErrNotFound = errors.New("KYC record not found")

// ErrInvalidStatus - status outside {pending, verified, rejected}
var ErrInvalidStatus = errors.New("invalid KYC status")

var validStatuses = []string{consts.KYCPending, consts.KYCVerified, consts.KYCRejected}

func fetchByUser(db *mongodatabase.DBConfig, userID primitive.ObjectID) (*model.KYC, error) {
	dbConn, err := db.New(consts.KYC)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var record model.KYC
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"user": userID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch KYC record")
	}
	return &record, nil
}

func updateFields(db *mongodatabase.DBConfig, userID primitive.ObjectID, fields bson.M) (*model.KYC, error) {
	dbConn, err := db.New(consts.KYC)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	fields["updatedAt"] = time.Now()

	var updated model.KYC
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"user": userID},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update KYC record")
	}
	return &updated, nil
}

func updateStatus(db *mongodatabase.DBConfig, userID primitive.ObjectID, status, remark string) (*model.KYC, error) {
	if !util.Contains(validStatuses, status) {
		return nil, ErrInvalidStatus
	}
	fields := bson.M{"status": status}
	if remark != "" {
		fields["remark"] = remark
	}
	return updateFields(db, userID, fields)
}

func addDocument(db *mongodatabase.DBConfig, userID primitive.ObjectID, doc model.KYCDocument) (*model.KYC, error) {
	dbConn, err := db.New(consts.KYC)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var updated model.KYC
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"user": userID},
		bson.M{
			"$push": bson.M{"documents": doc},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to attach KYC document")
	}
	return &updated, nil
}

func removeDocument(db *mongodatabase.DBConfig, userID primitive.ObjectID, key string) (*model.KYC, error) {
	dbConn, err := db.New(consts.KYC)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var updated model.KYC
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"user": userID},
		bson.M{
			"$pull": bson.M{"documents": bson.M{"key": key}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to remove KYC document")
	}
	return &updated, nil
}
