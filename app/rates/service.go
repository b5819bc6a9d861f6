package rates

import (
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Broadcaster - pushes a broadcast message to all registered devices
type Broadcaster interface {
	BroadcastPush(title, body string) error
}

// BulkResult - outcome of a bulk save-or-update call
type BulkResult struct {
	Processed      int                  `json:"processed"`
	Skipped        int                  `json:"skipped"`
	SkippedEntries []model.SkippedEntry `json:"skippedEntries"`
}

// Service - records mandi prices and answers what changed since last time
type Service interface {
	SaveCategoryPrices(doc *model.MandiCategoryPrice) (*model.MandiCategoryPrice, error)
	SaveOrUpdateBulk(entries []model.BulkRateEntry) (*BulkResult, error)
	GetRatesForMandi(mandiID primitive.ObjectID) ([]model.MandiCategoryPrice, error)
	GetPriceDifference(mandiID primitive.ObjectID, category, subCategory string) (*model.PriceDifference, error)
	GetHistoryByTimeframe(mandiID primitive.ObjectID, category, timeframe string) ([]model.MandiCategoryPrice, error)
	GetMandiByCategory(category string) ([]model.MandiCategoryPrice, error)
}

type service struct {
	config      *config.Config
	mongodb     *mongodatabase.DBConfig
	broadcaster Broadcaster
}

// NewService - creates new rates service
func NewService(repos *repo.Repos, conf *config.Config, broadcaster Broadcaster) Service {
	return &service{
		config:      conf,
		mongodb:     repos.MongoDB,
		broadcaster: broadcaster,
	}
}

func (s *service) SaveCategoryPrices(doc *model.MandiCategoryPrice) (*model.MandiCategoryPrice, error) {
	if invalid, ok := ValidateUnits(doc.CategoryPrices); !ok {
		return nil, &ValidationError{Field: "unit", Value: invalid}
	}

	saved, err := saveCategoryPrices(s.mongodb, doc)
	if err != nil {
		return nil, err
	}

	// the broadcast is best effort; a push failure never fails the save
	if s.broadcaster != nil {
		if err := s.broadcaster.BroadcastPush("Mandi rates updated", "New mandi prices are available"); err != nil {
			logrus.WithError(err).Error("unable to broadcast rate update")
		}
	}
	return saved, nil
}

func (s *service) SaveOrUpdateBulk(entries []model.BulkRateEntry) (*BulkResult, error) {
	valid, ids, skipped := PartitionBulkEntries(entries)

	if err := validateBulkEntries(valid); err != nil {
		return nil, err
	}

	processed, err := saveOrUpdateBulk(s.mongodb, valid, ids)
	if err != nil {
		return nil, err
	}
	if skipped == nil {
		skipped = []model.SkippedEntry{}
	}
	return &BulkResult{
		Processed:      processed,
		Skipped:        len(skipped),
		SkippedEntries: skipped,
	}, nil
}

func (s *service) GetRatesForMandi(mandiID primitive.ObjectID) ([]model.MandiCategoryPrice, error) {
	return fetchPricesForMandi(s.mongodb, mandiID)
}

func (s *service) GetPriceDifference(mandiID primitive.ObjectID, category, subCategory string) (*model.PriceDifference, error) {
	return getPriceDifference(s.mongodb, mandiID, category, subCategory)
}

func (s *service) GetHistoryByTimeframe(mandiID primitive.ObjectID, category, timeframe string) ([]model.MandiCategoryPrice, error) {
	return getHistoryByTimeframe(s.mongodb, mandiID, category, timeframe)
}

func (s *service) GetMandiByCategory(category string) ([]model.MandiCategoryPrice, error) {
	return getMandiByCategory(s.mongodb, category)
}
