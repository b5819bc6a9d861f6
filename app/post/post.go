package post

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

// ErrNotFound - no post or quotation matched
var ErrNotFound = errors.New("post not found")

func createPost(db *mongodatabase.DBConfig, p *model.Post) (*model.Post, error) {
	dbConn, err := db.New(consts.Posts)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	p.ID = primitive.NewObjectID()
	p.IsActive = true
	p.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), p); err != nil {
		return nil, errors.Wrap(err, "unable to insert post")
	}
	return p, nil
}

func fetchPost(db *mongodatabase.DBConfig, id primitive.ObjectID) (*model.Post, error) {
	dbConn, err := db.New(consts.Posts)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var p model.Post
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch post")
	}
	return &p, nil
}

func listPosts(db *mongodatabase.DBConfig, category string, userID primitive.ObjectID) ([]model.Post, error) {
	dbConn, err := db.New(consts.Posts)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if !userID.IsZero() {
		filter["user"] = userID
	}
	cur, err := dbConn.Collection.Find(context.TODO(), filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to list posts")
	}

	posts := []model.Post{}
	if err := cur.All(context.TODO(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func updatePost(db *mongodatabase.DBConfig, id primitive.ObjectID, fields bson.M) (*model.Post, error) {
	dbConn, err := db.New(consts.Posts)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var updated model.Post
	after := options.After
	err = dbConn.Collection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to update post")
	}
	return &updated, nil
}

func deletePost(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Posts)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete post")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func createQuotation(db *mongodatabase.DBConfig, q *model.Quotation) (*model.Quotation, error) {
	// the quotation must answer an existing post
	if _, err := fetchPost(db, q.Post); err != nil {
		return nil, err
	}

	dbConn, err := db.New(consts.Quotations)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	q.ID = primitive.NewObjectID()
	q.Status = "Open"
	q.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), q); err != nil {
		return nil, errors.Wrap(err, "unable to insert quotation")
	}
	return q, nil
}

func listQuotationsByPost(db *mongodatabase.DBConfig, postID primitive.ObjectID) ([]model.Quotation, error) {
	dbConn, err := db.New(consts.Quotations)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	cur, err := dbConn.Collection.Find(context.TODO(),
		bson.M{"post": postID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to list quotations")
	}

	quotations := []model.Quotation{}
	if err := cur.All(context.TODO(), &quotations); err != nil {
		return nil, err
	}
	return quotations, nil
}

func deleteQuotation(db *mongodatabase.DBConfig, id primitive.ObjectID) error {
	dbConn, err := db.New(consts.Quotations)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete quotation")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
