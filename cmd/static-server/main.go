package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
)

func main() {
	var (
		dataPath = flag.String("snapshot", "data/catalog.json", "catalog snapshot path")
		addr     = flag.String("addr", ":9000", "listen address")
	)
	flag.Parse()

	// serves the frozen snapshot at GET /exhibitors
	http.HandleFunc("/exhibitors", func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(*dataPath)
		if err != nil {
			http.Error(w, "cannot read snapshot: "+err.Error(), http.StatusInternalServerError)
			return
		}
		// validate JSON so bad file doesn't silently break
		var tmp any
		if err := json.Unmarshal(b, &tmp); err != nil {
			http.Error(w, "snapshot invalid JSON: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	})

	log.Printf("static-server listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
