package store

import (
	"context"
	"errors"
	"time"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// Aggregator computes store reports from the catalog. It never writes.
type Aggregator struct {
	db   *gorm.DB
	topN int
	now  func() time.Time
}

// NewAggregator creates an aggregator. A non-positive topN falls back to DefaultTopN.
func NewAggregator(db *gorm.DB, topN int) *Aggregator {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Aggregator{db: db, topN: topN, now: time.Now}
}

// BuildReport ranks the available listings of a store.
// It returns StoreNotFoundError before touching listings when the store does not exist.
func (a *Aggregator) BuildReport(ctx context.Context, storeID uint) (*Report, error) {
	db := a.db.WithContext(ctx)

	var store models.Store
	if err := db.Take(&store, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &StoreNotFoundError{ID: storeID}
		}
		return nil, reconcile.Classify("load store", err)
	}

	listings, err := a.availableListings(db, storeID)
	if err != nil {
		return nil, err
	}

	return &Report{
		Store:       store,
		GeneratedAt: a.now().UTC(),
		TopN:        a.topN,
		TopPriced:   TopPriced(listings, a.topN),
		TopAuthors:  TopAuthors(listings, a.topN),
	}, nil
}

// availableListings loads the store's listings that are not sold out, with
// book and author, in insertion order.
func (a *Aggregator) availableListings(db *gorm.DB, storeID uint) ([]models.StoreBook, error) {
	var listings []models.StoreBook
	err := db.
		Preload("Book.Author").
		Where("store_id = ? AND sold_out = ?", storeID, false).
		Order("id").
		Find(&listings).Error
	if err != nil {
		return nil, reconcile.Classify("load listings", err)
	}
	return listings, nil
}
