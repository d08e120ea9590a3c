package inventory

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"inventory-manager/core/utils"
)

// RowSource yields raw rows one at a time. Next returns io.EOF after the last row.
type RowSource interface {
	Next() (RawRow, error)
}

// CSVSource reads rows from CSV text whose first line is the header.
type CSVSource struct {
	r      *csv.Reader
	header []string
	row    int
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewCSVSource wraps r. The header is read lazily on the first call to Next.
func NewCSVSource(r io.Reader) *CSVSource {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	return &CSVSource{r: cr}
}

// Next returns the next data row. CSV syntax errors come back as MalformedRowError.
func (s *CSVSource) Next() (RawRow, error) {
	if s.header == nil {
		header, err := s.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, &MalformedRowError{Row: 0, Err: err}
		}
		s.header = make([]string, len(header))
		for i, h := range header {
			s.header[i] = utils.NormalizeHeader(h)
		}
	}

	fields, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, &MalformedRowError{Row: s.row + 1, Err: err}
	}
	s.row++

	raw := make(RawRow, len(s.header))
	for i, name := range s.header {
		if i >= len(fields) || name == "" {
			continue
		}
		raw[name] = fields[i]
	}
	return raw, nil
}
