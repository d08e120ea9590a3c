// Package utils provides small string helpers shared by the inventory and
// store features: spreadsheet cell cleanup, header normalization, slugs for
// report filenames and path id parsing.
package utils
