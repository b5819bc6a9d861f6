package mandi

import (
	"context"
	"time"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound - no mandi matched
var ErrNotFound = errors.New("mandi not found")

func createMandi(db *mongodatabase.DBConfig, m *model.Mandi) (*model.Mandi, error) {
	dbConn, err := db.New(consts.Mandis)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	m.ID = primitive.NewObjectID()
	if m.Categories == nil {
		m.Categories = []string{}
	}
	m.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), m); err != nil {
		return nil, errors.Wrap(err, "unable to insert mandi")
	}
	return m, nil
}

func fetchMandi(db *mongodatabase.DBConfig, id primitive.ObjectID) (*model.Mandi, error) {
	dbConn, err := db.New(consts.Mandis)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var m model.Mandi
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch mandi")
	}
	return &m, nil
}

func listMandis(db *mongodatabase.DBConfig, state, city string) ([]model.Mandi, error) {
	dbConn, err := db.New(consts.Mandis)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{}
	if state != "" {
		filter["state"] = state
	}
	if city != "" {
		filter["city"] = city
	}

	findOptions := options.Find().SetSort(bson.M{"name": 1})
	cur, err := dbConn.Collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list mandis")
	}

	mandis := []model.Mandi{}
	if err := cur.All(context.TODO(), &mandis); err != nil {
		return nil, err
	}
	return mandis, nil
}

// SearchMandis ranks mandis by fuzzy match on name or city.
func SearchMandis(mandis []model.Mandi, query string) []model.Mandi {
	if query == "" {
		return mandis
	}
	matched := []model.Mandi{}
	for _, m := range mandis {
		if fuzzy.MatchFold(query, m.Name) || fuzzy.MatchFold(query, m.City) {
			matched = append(matched, m)
		}
	}
	return matched
}

func searchMandis(db *mongodatabase.DBConfig, query string) ([]model.Mandi, error) {
	mandis, err := listMandis(db, "", "")
	if err != nil {
		return nil, err
	}
	return SearchMandis(mandis, query), nil
}

func updateMandi(db *mongodatabase.DBConfig, id primitive.ObjectID, fields bson.M) (*model.Mandi, error) {
	dbConn, err := db.New(consts.Mandis)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var updated model.Mandi
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update mandi")
	}
	return &updated, nil
}

// deleteMandi removes the mandi document only. Price documents it owned are
// left in place.
func deleteMandi(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Mandis)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete mandi")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
