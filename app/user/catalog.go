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
)

// ErrInvalidUnit - unit outside the allowed set
var ErrInvalidUnit = errors.New("invalid unit")

// ApplyCatalogPrice sets the new price on the matching sub-category of the
// catalog, appending the previous values to the sub-category's history. A
// missing category or sub-category entry is created. Returns the updated
// catalog.
func ApplyCatalogPrice(categories []model.CatalogCategory, upd model.CatalogPriceUpdate, now time.Time) []model.CatalogCategory {
	for ci := range categories {
		if categories[ci].Name != upd.Category {
			continue
		}
		subs := categories[ci].SubCategories
		for si := range subs {
			if subs[si].Name != upd.SubCategory {
				continue
			}
			// audit the outgoing values before overwriting
			subs[si].History = append(subs[si].History, model.PriceHistoryEntry{
				Price:     subs[si].Price,
				Unit:      subs[si].Unit,
				Status:    subs[si].Status,
				UpdatedAt: now,
			})
			subs[si].Price = upd.Price
			subs[si].Unit = upd.Unit
			subs[si].Status = upd.Status
			return categories
		}
		categories[ci].SubCategories = append(subs, newCatalogSubCategory(upd))
		return categories
	}
	return append(categories, model.CatalogCategory{
		Name:          upd.Category,
		SubCategories: []model.CatalogSubCategory{newCatalogSubCategory(upd)},
	})
}

func newCatalogSubCategory(upd model.CatalogPriceUpdate) model.CatalogSubCategory {
	return model.CatalogSubCategory{
		Name:    upd.SubCategory,
		Price:   upd.Price,
		Unit:    upd.Unit,
		Status:  upd.Status,
		History: []model.PriceHistoryEntry{},
	}
}

func updateCatalogPrice(db *mongodatabase.DBConfig, userID primitive.ObjectID, upd model.CatalogPriceUpdate) (*model.B2BUser, error) {
	if upd.Unit != consts.UnitKg && upd.Unit != consts.UnitTon {
		return nil, ErrInvalidUnit
	}

	user, err := fetchB2BUser(db, userID)
	if err != nil {
		return nil, err
	}

	user.Categories = ApplyCatalogPrice(user.Categories, upd, time.Now())
	user.UpdatedAt = time.Now()

	dbConn, err := db.New(consts.B2BUsers)
	if err != nil {
		return nil, err
	}
	defer dbConn.Client.Disconnect(context.TODO())

	_, err = dbConn.Collection.UpdateOne(context.TODO(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"categories": user.Categories, "updatedAt": user.UpdatedAt}})
	if err != nil {
		return nil, errors.Wrap(err, "unable to update catalog price")
	}
	return user, nil
}
