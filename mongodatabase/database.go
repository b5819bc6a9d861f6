package mongodatabase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBConn struct {
	Collection *mongo.Collection `mapstructure:"collection"`
	Client     *mongo.Client     `mapstructure:"client"`
}

// New create new DB
func (config *DBConfig) New(collectionName string) (dbconn *MongoDBConn, err error) {
	clientOptions := options.Client().ApplyURI(config.Host).
		SetRetryReads(true).
		SetRetryWrites(true).
		SetMaxPoolSize(config.MaxPoolSize).
		SetConnectTimeout(5 * time.Minute)

	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(context.TODO(), nil)
	if err != nil {
		logrus.WithError(err).Error("error connecting mongo")
		return &MongoDBConn{}, err
	}

	collection := client.Database(config.DBName).Collection(collectionName)
	return &MongoDBConn{collection, client}, nil
}

// Close DB
func Close(c *mongo.Client) error {
	return c.Disconnect(context.TODO())
}
