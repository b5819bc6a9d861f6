package category

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

// ErrNotFound - no category or sub-category matched
var ErrNotFound = errors.New("category not found")

// ErrDuplicateName - the name is already taken
var ErrDuplicateName = errors.New("category name already exists")

func createCategory(db *mongodatabase.DBConfig, c *model.Category) (*model.Category, error) {
	dbConn, err := db.New(consts.Categories)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	count, err := dbConn.Collection.CountDocuments(context.TODO(), bson.M{"name": c.Name})
	if err != nil {
		return nil, errors.Wrap(err, "unable to check category name")
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	c.ID = primitive.NewObjectID()
	c.IsActive = true
	c.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), c); err != nil {
		return nil, errors.Wrap(err, "unable to insert category")
	}
	return c, nil
}

func listCategories(db *mongodatabase.DBConfig) ([]model.Category, error) {
	dbConn, err := db.New(consts.Categories)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	cur, err := dbConn.Collection.Find(context.TODO(), bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to list categories")
	}

	categories := []model.Category{}
	if err := cur.All(context.TODO(), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func updateCategory(db *mongodatabase.DBConfig, id primitive.ObjectID, fields bson.M) (*model.Category, error) {
	dbConn, err := db.New(consts.Categories)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var updated model.Category
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update category")
	}
	return &updated, nil
}

func deleteCategory(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Categories)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete category")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func createSubCategory(db *mongodatabase.DBConfig, sc *model.SubCategory) (*model.SubCategory, error) {
	dbConn, err := db.New(consts.SubCategories)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	count, err := dbConn.Collection.CountDocuments(context.TODO(),
		bson.M{"name": sc.Name, "category": sc.Category})
	if err != nil {
		return nil, errors.Wrap(err, "unable to check sub-category name")
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	sc.ID = primitive.NewObjectID()
	sc.IsActive = true
	sc.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), sc); err != nil {
		return nil, errors.Wrap(err, "unable to insert sub-category")
	}
	return sc, nil
}

func listSubCategories(db *mongodatabase.DBConfig, categoryID primitive.ObjectID) ([]model.SubCategory, error) {
	dbConn, err := db.New(consts.SubCategories)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{}
	if !categoryID.IsZero() {
		filter["category"] = categoryID
	}
	cur, err := dbConn.Collection.Find(context.TODO(), filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to list sub-categories")
	}

	subCategories := []model.SubCategory{}
	if err := cur.All(context.TODO(), &subCategories); err != nil {
		return nil, err
	}
	return subCategories, nil
}

func deleteSubCategory(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.SubCategories)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete sub-category")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
