package inventory

import (
	"context"
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/catalog/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Result is the outcome of reconciling one record.
type Result struct {
	// Created is true when a new listing was inserted, false when an existing one was restocked.
	Created bool
	StoreID uint
	BookID  uint
}

// Engine merges validated records into the catalog. It is the only writer of
// authors, books, stores and listings.
type Engine struct {
	db *gorm.DB
}

// NewEngine creates an engine on db.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// Reconcile applies one record inside a single transaction:
// find-or-create the author, the book, the store, then create or restock the listing.
// Restocking adds one copy, overwrites the price and clears sold_out.
func (e *Engine) Reconcile(ctx context.Context, rec InventoryRecord) (Result, error) {
	var res Result
	err := reconcile.InTx(ctx, e.db, func(tx *gorm.DB) error {
		author := models.Author{Name: rec.AuthorName}
		if _, err := reconcile.FindOrCreate(ctx, tx, map[string]any{"name": author.Name}, &author); err != nil {
			return fmt.Errorf("author %q: %w", rec.AuthorName, err)
		}

		book := models.Book{Name: rec.BookName, AuthorID: author.ID, Pages: rec.Pages}
		bookKey := map[string]any{"name": book.Name, "author_id": book.AuthorID, "pages": book.Pages}
		if _, err := reconcile.FindOrCreate(ctx, tx, bookKey, &book); err != nil {
			return fmt.Errorf("book %q: %w", rec.BookName, err)
		}

		store := models.Store{Name: rec.StoreName, Address: rec.StoreAddress}
		storeKey := map[string]any{"name": store.Name, "address": store.Address}
		if _, err := reconcile.FindOrCreate(ctx, tx, storeKey, &store); err != nil {
			return fmt.Errorf("store %q: %w", rec.StoreName, err)
		}

		created, err := e.stock(ctx, tx, store.ID, book.ID, rec.Price)
		if err != nil {
			return fmt.Errorf("listing: %w", err)
		}

		res = Result{Created: created, StoreID: store.ID, BookID: book.ID}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (e *Engine) stock(ctx context.Context, tx *gorm.DB, storeID, bookID uint, price decimal.Decimal) (bool, error) {
	listing := models.StoreBook{StoreID: storeID, BookID: bookID, Price: price, Copies: 1}
	key := map[string]any{"store_id": storeID, "book_id": bookID}

	created, err := reconcile.FindOrCreate(ctx, tx, key, &listing)
	if err != nil || created {
		return created, err
	}

	err = tx.WithContext(ctx).
		Model(&models.StoreBook{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"copies":   gorm.Expr("copies + ?", 1),
			"price":    price,
			"sold_out": false,
		}).Error
	if err != nil {
		return false, reconcile.Classify("restock", err)
	}
	return false, nil
}
