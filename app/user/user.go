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

// ErrDuplicatePhone - the phone number is already registered in the segment
var ErrDuplicatePhone = errors.New("phone already registered")

// ErrDuplicateEmail - the email is already registered in the segment
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound - no user matched
var ErrNotFound = errors.New("user not found")

// flows maps a buyer role to the seller roles it is allowed to order from.
var flows = map[string][]string{
	consts.RoleConsumer:   {consts.RoleRetailer},
	consts.RoleRetailer:   {consts.RoleWholesaler},
	consts.RoleWholesaler: {consts.RoleManufacturer},
}

// AllowedSellerRoles returns the seller roles a buyer role may order from.
func AllowedSellerRoles(buyerRole string) []string {
	return flows[buyerRole]
}

func segmentCollection(segment string) string {
	if segment == consts.SegmentB2C {
		return consts.B2CUsers
	}
	return consts.B2BUsers
}

func checkUniqueness(coll *mongo.Collection, phone, email string) error {
	count, err := coll.CountDocuments(context.TODO(), bson.M{"phone": phone})
	if err != nil {
		return errors.Wrap(err, "unable to check phone uniqueness")
	}
	if count > 0 {
		return ErrDuplicatePhone
	}
	if email != "" {
		count, err = coll.CountDocuments(context.TODO(), bson.M{"email": email})
		if err != nil {
			return errors.Wrap(err, "unable to check email uniqueness")
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
	}
	return nil
}

func createDefaultKYC(db *mongodatabase.DBConfig, userID primitive.ObjectID, segment string) error {
	dbConn, err := db.New(consts.KYC)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	record := model.KYC{
		User:      userID,
		Segment:   segment,
		Documents: []model.KYCDocument{},
		Status:    consts.KYCPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err = dbConn.Collection.InsertOne(context.TODO(), record)
	return errors.Wrap(err, "unable to create default KYC record")
}

func createB2BUser(db *mongodatabase.DBConfig, user *model.B2BUser) (*model.B2BUser, error) {
	dbConn, err := db.New(consts.B2BUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	if err := checkUniqueness(dbConn.Collection, user.Phone, user.Email); err != nil {
		return nil, err
	}

	user.ID = primitive.NewObjectID()
	if user.Categories == nil {
		user.Categories = []model.CatalogCategory{}
	}
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if _, err := dbConn.Collection.InsertOne(context.TODO(), user); err != nil {
		return nil, errors.Wrap(err, "unable to insert b2b user")
	}

	if err := createDefaultKYC(db, user.ID, consts.SegmentB2B); err != nil {
		return nil, err
	}
	return user, nil
}

func createB2CUser(db *mongodatabase.DBConfig, user *model.B2CUser) (*model.B2CUser, error) {
	dbConn, err := db.New(consts.B2CUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	if err := checkUniqueness(dbConn.Collection, user.Phone, user.Email); err != nil {
		return nil, err
	}

	user.ID = primitive.NewObjectID()
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if _, err := dbConn.Collection.InsertOne(context.TODO(), user); err != nil {
		return nil, errors.Wrap(err, "unable to insert b2c user")
	}

	if err := createDefaultKYC(db, user.ID, consts.SegmentB2C); err != nil {
		return nil, err
	}
	return user, nil
}

func fetchB2BUser(db *mongodatabase.DBConfig, id primitive.ObjectID) (*model.B2BUser, error) {
	dbConn, err := db.New(consts.B2BUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var user model.B2BUser
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch b2b user")
	}
	return &user, nil
}

func fetchB2CUser(db *mongodatabase.DBConfig, id primitive.ObjectID) (*model.B2CUser, error) {
	dbConn, err := db.New(consts.B2CUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var user model.B2CUser
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch b2c user")
	}
	return &user, nil
}

// fetchUserIDByPhone resolves the phone to a user id within a segment.
func fetchUserIDByPhone(db *mongodatabase.DBConfig, segment, phone string) (primitive.ObjectID, error) {
	dbConn, err := db.New(segmentCollection(segment))
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"phone": phone}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return primitive.NilObjectID, ErrNotFound
	}
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "unable to fetch user by phone")
	}
	return doc.ID, nil
}

func listB2BUsers(db *mongodatabase.DBConfig, role string) ([]model.B2BUser, error) {
	dbConn, err := db.New(consts.B2BUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := dbConn.Collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list b2b users")
	}

	users := []model.B2BUser{}
	if err := cur.All(context.TODO(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func listB2CUsers(db *mongodatabase.DBConfig) ([]model.B2CUser, error) {
	dbConn, err := db.New(consts.B2CUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := dbConn.Collection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list b2c users")
	}

	users := []model.B2CUser{}
	if err := cur.All(context.TODO(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func updateUserFields(db *mongodatabase.DBConfig, collection string, id primitive.ObjectID, fields bson.M) error {
	dbConn, err := db.New(collection)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	fields["updatedAt"] = time.Now()
	res, err := dbConn.Collection.UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return errors.Wrap(err, "unable to update user")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteUser(db *mongodatabase.DBConfig, collection string, id primitive.ObjectID) error {
	dbConn, err := db.New(collection)
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	res, err := dbConn.Collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "unable to delete user")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func addPushToken(db *mongodatabase.DBConfig, segment string, id primitive.ObjectID, token string) error {
	dbConn, err := db.New(segmentCollection(segment))
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	_, err = dbConn.Collection.UpdateOne(context.TODO(),
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"pushTokens": token}})
	return errors.Wrap(err, "unable to save push token")
}
