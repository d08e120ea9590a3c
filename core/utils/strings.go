package utils

import (
	"strconv"
	"strings"
	"unicode"
)

const bom = "\uFEFF"

// CleanCell trims surrounding whitespace, a leading byte order mark and
// non-breaking spaces from a spreadsheet cell.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, bom)
	s = strings.ReplaceAll(s, "\u00A0", " ")
	return strings.TrimSpace(s)
}

// NormalizeHeader turns a column title like " Store Address " into "store_address".
func NormalizeHeader(s string) string {
	s = strings.ToLower(CleanCell(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	}), "_")
}

// Slugify converts a display name into a filename-safe token.
// Runs of anything other than ASCII letters and digits collapse into a single dash.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ParseID parses a positive integer identifier.
func ParseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
