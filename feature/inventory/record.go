package inventory

import "github.com/shopspring/decimal"

// Column names of an inventory upload.
const (
	ColStoreName    = "store_name"
	ColStoreAddress = "store_address"
	ColBookName     = "book_name"
	ColPages        = "pages"
	ColAuthorName   = "author_name"
	ColPrice        = "price"
)

// RequiredColumns lists every column a row must carry, in report order.
var RequiredColumns = []string{ColStoreName, ColStoreAddress, ColBookName, ColPages, ColAuthorName, ColPrice}

// RawRow maps normalized column names to the untrimmed cell text.
type RawRow map[string]string

// InventoryRecord is one validated row.
type InventoryRecord struct {
	StoreName    string          `json:"store_name"`
	StoreAddress string          `json:"store_address"`
	BookName     string          `json:"book_name"`
	Pages        int             `json:"pages"`
	AuthorName   string          `json:"author_name"`
	Price        decimal.Decimal `json:"price"`
}

// Summary is the outcome of one ingestion run.
// Created + Updated + len(Errors) always equals TotalRecords for a completed run.
type Summary struct {
	UploadID     string        `json:"upload_id,omitempty"`
	TotalRecords int           `json:"total_records"`
	Created      int           `json:"created"`
	Updated      int           `json:"updated"`
	Errors       []RecordError `json:"errors,omitempty"`
	// StoreIDs are the stores touched by successfully reconciled records.
	StoreIDs []uint `json:"-"`
}

// RecordError describes one record that failed to reconcile.
type RecordError struct {
	Row    int             `json:"row"`
	Record InventoryRecord `json:"record"`
	Error  string          `json:"error"`
}

// Counts is the compact view of a summary returned by the upload endpoint.
type Counts struct {
	TotalRecords int `json:"total_records"`
	Created      int `json:"created"`
	Updated      int `json:"updated"`
	Errors       int `json:"errors"`
}

// Counts returns the totals of s.
func (s *Summary) Counts() Counts {
	return Counts{
		TotalRecords: s.TotalRecords,
		Created:      s.Created,
		Updated:      s.Updated,
		Errors:       len(s.Errors),
	}
}
