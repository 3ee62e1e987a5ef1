// Package dataset loads observed internet-user series from CSV.
//
// The file must carry at least the columns "Entity", "Year" and
// "Number of Internet users"; other columns are ignored. Rows are kept in
// file order.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	ColumnEntity = "Entity"
	ColumnYear   = "Year"
	ColumnUsers  = "Number of Internet users"

	DefaultEntity = "World"
)

var (
	ErrMissingColumn = errors.New("dataset: missing column")
	ErrNoRows        = errors.New("dataset: no rows for entity")
)

// Series is an observed count per year for one entity.
type Series struct {
	Entity string
	Years  []int
	Counts []float64
}

func (s *Series) Len() int { return len(s.Counts) }

// Initial returns the first observed count.
func (s *Series) Initial() float64 {
	if len(s.Counts) == 0 {
		return math.NaN()
	}
	return s.Counts[0]
}

func (s *Series) Max() float64 {
	if len(s.Counts) == 0 {
		return math.NaN()
	}
	m := s.Counts[0]
	for _, c := range s.Counts[1:] {
		m = math.Max(m, c)
	}
	return m
}

// Span returns the first and last year.
func (s *Series) Span() (int, int) {
	if len(s.Years) == 0 {
		return 0, 0
	}
	return s.Years[0], s.Years[len(s.Years)-1]
}

func Load(path, entity string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := Read(file, entity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// Read parses CSV from r and keeps the rows whose Entity equals entity.
func Read(r io.Reader, entity string) (*Series, error) {
	if entity == "" {
		entity = DefaultEntity
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, err
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	cols := make([]int, 3)
	for i, name := range []string{ColumnEntity, ColumnYear, ColumnUsers} {
		c, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		cols[i] = c
	}

	series := &Series{Entity: entity}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if field(record, cols[0]) != entity {
			continue
		}

		year, err := strconv.Atoi(field(record, cols[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: year: %w", line, err)
		}
		count, err := strconv.ParseFloat(field(record, cols[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: users: %w", line, err)
		}

		series.Years = append(series.Years, year)
		series.Counts = append(series.Counts, count)
	}

	if series.Len() == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoRows, entity)
	}
	return series, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
