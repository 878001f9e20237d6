package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"marketboard/internal/exhibitor"
	"marketboard/pkg/database"
)

func main() {
	var (
		out = flag.String("exhibitors", "data/exhibitors.csv", "output CSV path for exhibitors")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := exhibitor.NewRepo(db)
	items, err := repo.List(ctx, "")
	if err != nil {
		log.Fatalf("list exhibitors failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s failed: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "name", "category", "shortDesc", "longDesc", "imageUrl",
		"websiteUrl", "address", "facebookUrl", "instagramUrl", "twitterUrl",
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("write header failed: %v", err)
	}

	for _, e := range items {
		row := []string{
			e.ID, e.Name, string(e.Category), e.ShortDesc, e.LongDesc, e.ImageURL,
			e.WebsiteURL, e.Address, e.FacebookURL, e.InstagramURL, e.TwitterURL,
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("write row failed: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("flush failed: %v", err)
	}

	log.Printf("✅ exported %d exhibitors to %s", len(items), *out)
}
