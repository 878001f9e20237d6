package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"marketboard/internal/exhibitor"
)

// Static-variant build step: validate the flat-file catalog and freeze
// it into a JSON snapshot. Admin edits to the CSV only show up after
// rerunning this.

type snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Total       int       `json:"total"`
	Items       any       `json:"items"`
}

func main() {
	var (
		in  = flag.String("exhibitors", "data/exhibitors.csv", "input CSV path")
		out = flag.String("out", "data/catalog.json", "output snapshot path")
	)
	flag.Parse()

	records := exhibitor.Load(*in)

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	b, err := json.MarshalIndent(snapshot{
		GeneratedAt: time.Now().UTC(),
		Total:       len(records),
		Items:       records,
	}, "", "  ")
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}

	if err := os.WriteFile(*out, b, 0o644); err != nil {
		log.Fatalf("write failed: %v", err)
	}

	log.Printf("✅ built catalog snapshot with %d exhibitors at %s", len(records), *out)
}
