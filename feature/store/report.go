package store

import (
	"sort"
	"time"

	"inventory-manager/feature/catalog/models"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the size of each ranking when none is configured.
const DefaultTopN = 5

// Report is the analytics payload for one store.
type Report struct {
	Store       models.Store `json:"store"`
	GeneratedAt time.Time    `json:"generated_at"`
	TopN        int          `json:"top_n"`
	TopPriced   []PricedBook `json:"top_priced"`
	TopAuthors  []AuthorRank `json:"top_authors"`
}

// PricedBook is one entry of the priciest-books ranking.
type PricedBook struct {
	ListingID uint            `json:"listing_id"`
	BookID    uint            `json:"book_id"`
	Title     string          `json:"title"`
	AuthorID  uint            `json:"author_id"`
	Author    string          `json:"author"`
	Pages     int             `json:"pages"`
	Price     decimal.Decimal `json:"price"`
	Copies    int             `json:"copies"`
}

// AuthorRank is one entry of the prolific-authors ranking.
type AuthorRank struct {
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name"`
	BookCount  int    `json:"book_count"`
}

// TopPriced returns at most n listings by descending price.
// Equal prices keep their input order.
func TopPriced(listings []models.StoreBook, n int) []PricedBook {
	ranked := make([]PricedBook, 0, len(listings))
	for _, l := range listings {
		if l.Book == nil || l.Book.Author == nil {
			continue
		}
		ranked = append(ranked, PricedBook{
			ListingID: l.ID,
			BookID:    l.Book.ID,
			Title:     l.Book.Name,
			AuthorID:  l.Book.Author.ID,
			Author:    l.Book.Author.Name,
			Pages:     l.Book.Pages,
			Price:     l.Price,
			Copies:    l.Copies,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price.GreaterThan(ranked[j].Price)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopAuthors returns at most n authors by descending count of distinct books.
// Equal counts keep the order in which the authors were first seen.
func TopAuthors(listings []models.StoreBook, n int) []AuthorRank {
	var ranked []AuthorRank
	index := make(map[uint]int)
	seen := make(map[uint]map[uint]struct{})

	for _, l := range listings {
		if l.Book == nil || l.Book.Author == nil {
			continue
		}
		a := l.Book.Author
		i, ok := index[a.ID]
		if !ok {
			i = len(ranked)
			index[a.ID] = i
			seen[a.ID] = make(map[uint]struct{})
			ranked = append(ranked, AuthorRank{AuthorID: a.ID, AuthorName: a.Name})
		}
		if _, dup := seen[a.ID][l.Book.ID]; dup {
			continue
		}
		seen[a.ID][l.Book.ID] = struct{}{}
		ranked[i].BookCount++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].BookCount > ranked[j].BookCount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []AuthorRank{}
	}
	return ranked
}
