package models_test

import (
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/feature/catalog/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "authors", models.Author{}.TableName())
	assert.Equal(t, "books", models.Book{}.TableName())
	assert.Equal(t, "stores", models.Store{}.TableName())
	assert.Equal(t, "store_books", models.StoreBook{}.TableName())
}

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, models.Migrate(db))

	for table, cols := range models.ExpectedColumns() {
		missing, err := database.MissingColumns(db, table, cols)
		require.NoError(t, err, table)
		assert.Empty(t, missing, table)
	}

	t.Run("Unique Author Name", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Author{Name: "Jane"}).Error)
		err := db.Create(&models.Author{Name: "Jane"}).Error
		require.Error(t, err)
		assert.True(t, database.IsDuplicate(err))
	})

	t.Run("Unique Listing", func(t *testing.T) {
		author := models.Author{Name: "Ann"}
		require.NoError(t, db.Create(&author).Error)
		book := models.Book{Name: "Go", AuthorID: author.ID, Pages: 10}
		require.NoError(t, db.Create(&book).Error)
		store := models.Store{Name: "Alpha", Address: "1 Main"}
		require.NoError(t, db.Create(&store).Error)

		listing := models.StoreBook{StoreID: store.ID, BookID: book.ID, Price: decimal.RequireFromString("9.99"), Copies: 1}
		require.NoError(t, db.Create(&listing).Error)
		dup := models.StoreBook{StoreID: store.ID, BookID: book.ID, Price: decimal.Zero, Copies: 1}
		assert.Error(t, db.Create(&dup).Error)

		var got models.StoreBook
		require.NoError(t, db.First(&got, listing.ID).Error)
		assert.Equal(t, "9.99", got.Price.StringFixed(2))
	})
}
