package main

import (
	"context"
	"flag"
	"log"
	"time"

	"marketboard/internal/exhibitor"
	"marketboard/pkg/database"
)

func main() {
	var (
		in = flag.String("exhibitors", "data/exhibitors.csv", "input CSV path for exhibitors")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	// bad rows are logged and skipped inside the loader
	records := exhibitor.Load(*in)

	repo := exhibitor.NewRepo(db)
	for _, e := range records {
		if err := repo.Upsert(ctx, e); err != nil {
			log.Fatalf("import exhibitor %s failed: %v", e.ID, err)
		}
	}

	log.Printf("✅ imported %d exhibitors from %s", len(records), *in)
}
