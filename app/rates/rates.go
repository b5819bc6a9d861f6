package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/agrimandi/agrimandi-server/consts"
	"github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"
	"github.com/agrimandi/agrimandi-server/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PartitionBulkEntries splits the payload into entries with a usable mandiId
// and entries skipped with a reason. Skipping is per entry; the batch keeps
// going.
func PartitionBulkEntries(entries []model.BulkRateEntry) (valid []model.BulkRateEntry, ids []primitive.ObjectID, skipped []model.SkippedEntry) {
	for _, entry := range entries {
		id, err := primitive.ObjectIDFromHex(entry.MandiID)
		if entry.MandiID == "" || err != nil {
			skipped = append(skipped, model.SkippedEntry{
				Entry:  entry,
				Reason: fmt.Sprintf("Invalid mandiId: %s", entry.MandiID),
			})
			continue
		}
		valid = append(valid, entry)
		ids = append(ids, id)
	}
	return valid, ids, skipped
}

func saveCategoryPrices(db *mongodatabase.DBConfig, doc *model.MandiCategoryPrice) (*model.MandiCategoryPrice, error) {
	dbConn, err := db.New(consts.MandiCategoryPrice)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = time.Now()
	for i := range doc.CategoryPrices {
		if doc.CategoryPrices[i].CreatedAt.IsZero() {
			doc.CategoryPrices[i].CreatedAt = doc.CreatedAt
		}
	}

	if _, err := dbConn.Collection.InsertOne(context.TODO(), doc); err != nil {
		return nil, errors.Wrap(err, "unable to insert mandi category prices")
	}
	return doc, nil
}

// saveOrUpdateBulk applies each entry as a conditional upsert keyed on
// (mandi, category, subCategory): update the matched array element in place,
// otherwise push a new element, creating the parent document if the mandi has
// none yet.
func saveOrUpdateBulk(db *mongodatabase.DBConfig, entries []model.BulkRateEntry, ids []primitive.ObjectID) (int, error) {
	dbConn, err := db.New(consts.MandiCategoryPrice)
	if err != nil {
		return 0, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	processed := 0
	for i, entry := range entries {
		mandiID := ids[i]
		now := time.Now()

		elemMatch := bson.M{"category": entry.Category}
		if entry.SubCategory != "" {
			elemMatch["subCategory"] = entry.SubCategory
		}

		setFields := bson.M{
			"categoryPrices.$.price":           entry.Price,
			"categoryPrices.$.priceDifference": entry.PriceDifference,
			"categoryPrices.$.unit":            entry.Unit,
			"categoryPrices.$.date":            entry.Date,
			"categoryPrices.$.time":            entry.Time,
			"categoryPrices.$.createdAt":       now,
		}

		res, err := dbConn.Collection.UpdateOne(context.TODO(),
			bson.M{"mandi": mandiID, "categoryPrices": bson.M{"$elemMatch": elemMatch}},
			bson.M{"$set": setFields})
		if err != nil {
			return processed, errors.Wrap(err, "unable to update category price")
		}
		if res.MatchedCount > 0 {
			processed++
			continue
		}

		element := model.CategoryPrice{
			Category:        entry.Category,
			SubCategory:     entry.SubCategory,
			Price:           entry.Price,
			PriceDifference: entry.PriceDifference,
			Unit:            entry.Unit,
			Date:            entry.Date,
			Time:            entry.Time,
			CreatedAt:       now,
		}
		_, err = dbConn.Collection.UpdateOne(context.TODO(),
			bson.M{"mandi": mandiID},
			bson.M{
				"$push":        bson.M{"categoryPrices": element},
				"$setOnInsert": bson.M{"mandi": mandiID, "createdAt": now},
			},
			options.Update().SetUpsert(true))
		if err != nil {
			return processed, errors.Wrap(err, "unable to upsert category price")
		}
		processed++
	}
	return processed, nil
}

func fetchPricesForMandi(db *mongodatabase.DBConfig, mandiID primitive.ObjectID) ([]model.MandiCategoryPrice, error) {
	dbConn, err := db.New(consts.MandiCategoryPrice)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	cur, err := dbConn.Collection.Find(context.TODO(), bson.M{"mandi": mandiID})
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch mandi prices")
	}

	docs := []model.MandiCategoryPrice{}
	if err := cur.All(context.TODO(), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func getPriceDifference(db *mongodatabase.DBConfig, mandiID primitive.ObjectID, category, subCategory string) (*model.PriceDifference, error) {
	docs, err := fetchPricesForMandi(db, mandiID)
	if err != nil {
		return nil, err
	}
	entries := FlattenMatching(docs, category, subCategory)
	diff, err := ComputeDifference(entries)
	if err != nil {
		return nil, err
	}
	diff.Mandi = mandiID.Hex()
	return diff, nil
}

func getHistoryByTimeframe(db *mongodatabase.DBConfig, mandiID primitive.ObjectID, category, timeframe string) ([]model.MandiCategoryPrice, error) {
	start, err := TimeframeWindow(timeframe, time.Now())
	if err != nil {
		return nil, err
	}

	dbConn, err := db.New(consts.MandiCategoryPrice)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	filter := bson.M{
		"mandi":                   mandiID,
		"categoryPrices.category": category,
	}
	if !start.IsZero() {
		filter["createdAt"] = bson.M{"$gte": start}
	}

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := dbConn.Collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch price history")
	}

	docs := []model.MandiCategoryPrice{}
	if err := cur.All(context.TODO(), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func getMandiByCategory(db *mongodatabase.DBConfig, category string) ([]model.MandiCategoryPrice, error) {
	dbConn, err := db.New(consts.MandiCategoryPrice)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	cur, err := dbConn.Collection.Find(context.TODO(), bson.M{"categoryPrices.category": category})
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch mandis by category")
	}

	docs := []model.MandiCategoryPrice{}
	if err := cur.All(context.TODO(), &docs); err != nil {
		return nil, err
	}

	// narrow each document to the entries of the requested category
	for i := range docs {
		matched := []model.CategoryPrice{}
		for _, cp := range docs[i].CategoryPrices {
			if cp.Category == category {
				matched = append(matched, cp)
			}
		}
		docs[i].CategoryPrices = matched
	}
	return docs, nil
}

func validateBulkEntries(entries []model.BulkRateEntry) error {
	for _, entry := range entries {
		if err := ValidateBulkEntry(entry, util.IsValidClockTime); err != nil {
			return err
		}
	}
	return nil
}
