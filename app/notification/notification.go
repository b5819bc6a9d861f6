package notification

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

// ErrNotFound - no notification matched
var ErrNotFound = errors.New("notification not found")

// ErrNotParty - the caller is neither orderBy nor orderTo
var ErrNotParty = errors.New("user is not a party to this notification")

func segmentCollection(segment string) string {
	if segment == consts.SegmentB2C {
		return consts.B2CNotifications
	}
	return consts.B2BNotifications
}

// ResolveReadFlags reports which read flags the caller may set: the orderBy
// flag iff the caller placed the order and the orderTo flag iff the caller
// received it. Both are set for a self-order.
func ResolveReadFlags(orderBy, orderTo, caller primitive.ObjectID) (byOrderBy, byOrderTo bool) {
	return caller == orderBy, caller == orderTo
}

func createNotification(db *mongodatabase.DBConfig, segment string, n *model.Notification) (*model.Notification, error) {
	dbConn, err := db.New(segmentCollection(segment))
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	n.ID = primitive.NewObjectID()
	n.IsReadByOrderBy = false
	n.IsReadByOrderTo = false
	n.CreatedAt = time.Now()

	if _, err := dbConn.Collection.InsertOne(context.TODO(), n); err != nil {
		return nil, errors.Wrap(err, "unable to insert notification")
	}
	return n, nil
}

func listNotifications(db *mongodatabase.DBConfig, segment string, userID primitive.ObjectID) ([]model.Notification, error) {
	dbConn, err := db.New(segmentCollection(segment))
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
		return nil, errors.Wrap(err, "unable to list notifications")
	}

	notifications := []model.Notification{}
	if err := cur.All(context.TODO(), &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func unreadCount(db *mongodatabase.DBConfig, segment string, userID primitive.ObjectID) (int64, error) {
	dbConn, err := db.New(segmentCollection(segment))
	if err != nil {
		return 0, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{"$or": []bson.M{
		{"orderBy": userID, "isReadByOrderBy": false},
		{"orderTo": userID, "isReadByOrderTo": false},
	}}
	count, err := dbConn.Collection.CountDocuments(context.TODO(), filter)
	if err != nil {
		return 0, errors.Wrap(err, "unable to count unread notifications")
	}
	return count, nil
}

func markNotificationAsRead(db *mongodatabase.DBConfig, segment string, notificationID, userID primitive.ObjectID) (*model.Notification, error) {
	dbConn, err := db.New(segmentCollection(segment))
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	var n model.Notification
	err = dbConn.Collection.FindOne(context.TODO(), bson.M{"_id": notificationID}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch notification")
	}

	byOrderBy, byOrderTo := ResolveReadFlags(n.OrderBy, n.OrderTo, userID)
	if !byOrderBy && !byOrderTo {
		return nil, ErrNotParty
	}

	set := bson.M{}
	if byOrderBy {
		set["isReadByOrderBy"] = true
		n.IsReadByOrderBy = true
	}
	if byOrderTo {
		set["isReadByOrderTo"] = true
		n.IsReadByOrderTo = true
	}

	_, err = dbConn.Collection.UpdateOne(context.TODO(), bson.M{"_id": notificationID}, bson.M{"$set": set})
	if err != nil {
		return nil, errors.Wrap(err, "unable to mark notification as read")
	}
	return &n, nil
}

// markAllNotificationsAsRead flips each flag with a conditional UpdateMany so
// already-read documents are not rewritten.
func markAllNotificationsAsRead(db *mongodatabase.DBConfig, segment string, userID primitive.ObjectID) error {
	dbConn, err := db.New(segmentCollection(segment))
	if err != nil {
		return err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	_, err = dbConn.Collection.UpdateMany(context.TODO(),
		bson.M{"orderBy": userID, "isReadByOrderBy": false},
		bson.M{"$set": bson.M{"isReadByOrderBy": true}})
	if err != nil {
		return errors.Wrap(err, "unable to mark orderBy notifications as read")
	}

	_, err = dbConn.Collection.UpdateMany(context.TODO(),
		bson.M{"orderTo": userID, "isReadByOrderTo": false},
		bson.M{"$set": bson.M{"isReadByOrderTo": true}})
	if err != nil {
		return errors.Wrap(err, "unable to mark orderTo notifications as read")
	}
	return nil
}

func fetchAllPushTokens(db *mongodatabase.DBConfig) ([]string, error) {
	tokens := []string{}
	for _, collection := range []string{consts.B2BUsers, consts.B2CUsers} {
		dbConn, err := db.New(collection)
		if err != nil {
			return nil, err
		}

		cur, err := dbConn.Collection.Find(context.TODO(),
			bson.M{"pushTokens": bson.M{"$exists": true, "$ne": []string{}}},
			options.Find().SetProjection(bson.M{"pushTokens": 1}))
		if err != nil {
			dbConn.Client.Disconnect(context.TODO())
			return nil, errors.Wrap(err, "unable to fetch push tokens")
		}

		var docs []struct {
			PushTokens []string `bson:"pushTokens"`
		}
		err = cur.All(context.TODO(), &docs)
		dbConn.Client.Disconnect(context.TODO())
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			tokens = append(tokens, doc.PushTokens...)
		}
	}
	return tokens, nil
}
