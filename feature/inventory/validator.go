package inventory

import (
	"strconv"

	"inventory-manager/core/utils"

	"github.com/shopspring/decimal"
)

// Validate turns one raw row into an InventoryRecord. row is the 1-based data row number.
//
// Checks run in a fixed order and the first failing one is returned: missing
// columns, whitespace-only text, pages, price. A numeric zero is a value, not
// a missing field.
func Validate(raw RawRow, row int) (InventoryRecord, error) {
	var missing []string
	for _, col := range RequiredColumns {
		if v, ok := raw[col]; !ok || v == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return InventoryRecord{}, &MissingFieldsError{Row: row, Fields: missing}
	}

	rec := InventoryRecord{
		StoreName:    utils.CleanCell(raw[ColStoreName]),
		StoreAddress: utils.CleanCell(raw[ColStoreAddress]),
		BookName:     utils.CleanCell(raw[ColBookName]),
		AuthorName:   utils.CleanCell(raw[ColAuthorName]),
	}

	var empty []string
	for col, v := range map[string]string{
		ColStoreName:    rec.StoreName,
		ColStoreAddress: rec.StoreAddress,
		ColBookName:     rec.BookName,
		ColAuthorName:   rec.AuthorName,
	} {
		if v == "" {
			empty = append(empty, col)
		}
	}
	if len(empty) > 0 {
		return InventoryRecord{}, &EmptyFieldError{Row: row, Fields: ordered(empty)}
	}

	pages, err := strconv.Atoi(utils.CleanCell(raw[ColPages]))
	if err != nil || pages < 1 {
		return InventoryRecord{}, &InvalidPagesError{Row: row, Value: raw[ColPages]}
	}
	rec.Pages = pages

	price, err := decimal.NewFromString(utils.CleanCell(raw[ColPrice]))
	if err != nil || price.IsNegative() {
		return InventoryRecord{}, &InvalidPriceError{Row: row, Value: raw[ColPrice]}
	}
	rec.Price = price.Round(2)

	return rec, nil
}

// ordered sorts cols into RequiredColumns order.
func ordered(cols []string) []string {
	set := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	out := make([]string, 0, len(cols))
	for _, c := range RequiredColumns {
		if _, ok := set[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
