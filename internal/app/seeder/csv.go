package seeder

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mybayani/emergency-backend/internal/service/directory"
)

var requiredColumns = []string{"type", "name", "category", "contact"}

// Row is one parsed CSV record with its 1-based line number.
type Row struct {
	Line  int
	Input directory.AddServiceInput
}

// ParseCSV reads a header row followed by service records. Recognized
// columns are type, name, category, classification, description, contact,
// address, notes, lat, lon, barangay, city and region; others are ignored.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv has no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, k := range requiredColumns {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("missing required column: %s", k)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// *csv.ParseError already names the line.
			return nil, fmt.Errorf("read record: %w", err)
		}
		if blank(record) {
			continue
		}
		// Quoted fields may span lines, so ask the reader where the record began.
		line, _ := reader.FieldPos(0)

		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		in := directory.AddServiceInput{
			Type:           get("type"),
			Name:           get("name"),
			Category:       get("category"),
			Classification: get("classification"),
			Description:    get("description"),
			ContactNo:      get("contact"),
			Address:        get("address"),
			Notes:          get("notes"),
			Barangay:       get("barangay"),
			City:           get("city"),
			Region:         get("region"),
		}
		if in.Lat, err = parseCoord(get("lat")); err != nil {
			return nil, fmt.Errorf("line %d: lat: %w", line, err)
		}
		if in.Lon, err = parseCoord(get("lon")); err != nil {
			return nil, fmt.Errorf("line %d: lon: %w", line, err)
		}

		rows = append(rows, Row{Line: line, Input: in})
	}
	return rows, nil
}

func parseCoord(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
