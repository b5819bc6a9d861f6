package plan

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

// ErrNotFound - no plan matched
var ErrNotFound = errors.New("plan not found")

func createPlan(db *mongodatabase.DBConfig, p *model.Plan) (*model.Plan, error) {
	dbConn, err := db.New(consts.Plans)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	p.ID = primitive.NewObjectID()
	p.IsActive = true
	p.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), p); err != nil {
		return nil, errors.Wrap(err, "unable to insert plan")
	}
	return p, nil
}

func listPlans(db *mongodatabase.DBConfig) ([]model.Plan, error) {
	dbConn, err := db.New(consts.Plans)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	cur, err := dbConn.Collection.Find(context.TODO(), bson.M{}, options.Find().SetSort(bson.M{"price": 1}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to list plans")
	}

	plans := []model.Plan{}
	if err := cur.All(context.TODO(), &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func updatePlan(db *mongodatabase.DBConfig, id primitive.ObjectID, fields bson.M) (*model.Plan, error) {
	dbConn, err := db.New(consts.Plans)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var updated model.Plan
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update plan")
	}
	return &updated, nil
}

func deletePlan(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Plans)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete plan")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
