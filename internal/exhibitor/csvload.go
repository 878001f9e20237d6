package exhibitor

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strings"

	"marketboard/pkg/models"
)

// Required CSV columns; the rest are optional contact fields.
var requiredColumns = []string{"id", "name", "category", "shortDesc", "longDesc", "imageUrl"}

// Load reads the flat-file catalog. A missing or unreadable file yields
// an empty catalog, never a failure; bad rows are logged and skipped.
func Load(path string) []models.Exhibitor {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[csv] cannot read %s: %v", path, err)
		return []models.Exhibitor{}
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) []models.Exhibitor {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err != nil {
		log.Printf("[csv] cannot read header: %v", err)
		return []models.Exhibitor{}
	}

	out := []models.Exhibitor{}
	line := 1 // header was line 1
	for {
		row, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("[csv] row %d malformed, skipping: %v", line, err)
			continue
		}
		if len(row) == 0 {
			continue
		}

		missing := ""
		for _, col := range requiredColumns {
			if valueAt(header, row, col) == "" {
				missing = col
				break
			}
		}
		if missing != "" {
			log.Printf("[csv] row %d missing required field %q, skipping", line, missing)
			continue
		}

		rawCategory := valueAt(header, row, "category")
		category, ok := models.ParseCategory(rawCategory)
		if !ok {
			log.Printf("[csv] row %d has invalid category %q, skipping", line, rawCategory)
			continue
		}

		out = append(out, models.Exhibitor{
			ID:           valueAt(header, row, "id"),
			Name:         valueAt(header, row, "name"),
			Category:     category,
			ShortDesc:    valueAt(header, row, "shortDesc"),
			LongDesc:     valueAt(header, row, "longDesc"),
			ImageURL:     valueAt(header, row, "imageUrl"),
			WebsiteURL:   valueAt(header, row, "websiteUrl"),
			Address:      valueAt(header, row, "address"),
			FacebookURL:  valueAt(header, row, "facebookUrl"),
			InstagramURL: valueAt(header, row, "instagramUrl"),
			TwitterURL:   valueAt(header, row, "twitterUrl"),
		})
	}

	return out
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(name)] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
