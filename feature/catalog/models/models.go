package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Author writes books. Name is unique.
type Author struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_authors_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

func (Author) TableName() string { return "authors" }

// Book is identified by the (name, author_id, pages) triple.
type Book struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_books_natural,priority:1" json:"name"`
	AuthorID  uint      `gorm:"column:author_id;not null;uniqueIndex:idx_books_natural,priority:2" json:"author_id"`
	Pages     int       `gorm:"column:pages;not null;uniqueIndex:idx_books_natural,priority:3" json:"pages"`
	Author    *Author   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

func (Book) TableName() string { return "books" }

// Store is identified by the (name, address) pair.
type Store struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_stores_natural,priority:1" json:"name"`
	Address   string    `gorm:"column:address;type:varchar(255);not null;uniqueIndex:idx_stores_natural,priority:2" json:"address"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

func (Store) TableName() string { return "stores" }

// StoreBook is a store's listing of a book. A store carries at most one listing per book.
type StoreBook struct {
	ID        uint            `gorm:"primaryKey;column:id" json:"id"`
	StoreID   uint            `gorm:"column:store_id;not null;uniqueIndex:idx_store_books_listing,priority:1" json:"store_id"`
	BookID    uint            `gorm:"column:book_id;not null;uniqueIndex:idx_store_books_listing,priority:2" json:"book_id"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Copies    int             `gorm:"column:copies;not null" json:"copies"`
	SoldOut   bool            `gorm:"column:sold_out;not null" json:"sold_out"`
	Store     *Store          `gorm:"foreignKey:StoreID" json:"-"`
	Book      *Book           `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time       `gorm:"column:updated_at" json:"-"`
}

func (StoreBook) TableName() string { return "store_books" }

// All returns one value of every model, in dependency order, for migrations.
func All() []any {
	return []any{&Author{}, &Book{}, &Store{}, &StoreBook{}}
}

// ExpectedColumns maps each table to the columns the application reads and writes.
func ExpectedColumns() map[string][]string {
	return map[string][]string{
		"authors":     {"id", "name", "created_at", "updated_at"},
		"books":       {"id", "name", "author_id", "pages", "created_at", "updated_at"},
		"stores":      {"id", "name", "address", "created_at", "updated_at"},
		"store_books": {"id", "store_id", "book_id", "price", "copies", "sold_out", "created_at", "updated_at"},
	}
}
