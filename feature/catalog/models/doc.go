// Package models contains the GORM models of the bookstore catalog.
//
// Tables: authors, books, stores and store_books (the listing join table
// carrying price, copies and sold_out). Natural keys are backed by unique
// indexes so that concurrent find-or-create calls converge on one row:
//
//   - authors(name)
//   - books(name, author_id, pages)
//   - stores(name, address)
//   - store_books(store_id, book_id)
//
// The inventory feature writes these tables; the store and health features
// only read them.
package models
