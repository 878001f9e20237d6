package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"marketboard/internal/catalog"
	"marketboard/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type listResponse struct {
	Total int                `json:"total"`
	Items []models.Exhibitor `json:"items"`
}

func main() {
	var (
		baseURL  = flag.String("api", defaultBaseURL, "API base URL")
		filter   = flag.String("filter", "ALL", "category filter (ALL, 農家, 飲食, カフェ, クラフト)")
		selectID = flag.String("select", "", "open the detail view for one exhibitor id")
		watch    = flag.Bool("watch", false, "follow the live feed and re-render on changes")
	)
	flag.Parse()

	client := &http.Client{Timeout: 15 * time.Second}
	state := catalog.NewState()
	state.SetFilter(models.Category(*filter))

	refresh := func() {
		items, err := fetchCatalog(context.Background(), client, *baseURL)
		if err != nil {
			// degraded view, not a crash
			log.Printf("[board] fetch failed: %v", err)
			items = []models.Exhibitor{}
		}
		state.Replace(items)
		render(state)
	}

	refresh()

	if *selectID != "" {
		for _, e := range state.Records() {
			if e.ID == *selectID {
				state.Select(e)
				break
			}
		}
		if state.OverlayOpen() {
			renderDetail(state.Selected())
			state.Clear()
		} else {
			fmt.Printf("exhibitor %q not found\n", *selectID)
		}
	}

	if !*watch {
		return
	}

	wsURL, err := websocketURL(*baseURL, "/ws")
	if err != nil {
		log.Fatalf("bad api url: %v", err)
	}

	for {
		if err := follow(wsURL, refresh); err != nil {
			log.Printf("[board] feed disconnected: %v", err)
		}
		time.Sleep(1 * time.Second) // auto reconnect
	}
}

func fetchCatalog(ctx context.Context, client *http.Client, baseURL string) ([]models.Exhibitor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/exhibitors", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// follow stays on the feed, refreshing the board on every event.
func follow(wsURL string, refresh func()) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer conn.Close()

	log.Printf("[board] following %s", wsURL)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var ev struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &ev); err != nil || ev.Type == "welcome" {
			continue
		}
		refresh()
	}
}

func render(state *catalog.State) {
	fmt.Printf("\n=== ヘルシーマーケット出店者 (filter: %s) ===\n", state.Filter())

	items := state.Filtered()
	if len(items) == 0 {
		fmt.Println("該当する出店者が見つかりませんでした。")
		return
	}

	for _, e := range items {
		fmt.Printf("  [%s] %-24s %s\n", e.Category, e.Name, e.ShortDesc)
	}
	fmt.Printf("%d exhibitor(s)\n", len(items))
}

func renderDetail(e *models.Exhibitor) {
	fmt.Printf("\n--- %s (%s) ---\n", e.Name, e.Category)
	fmt.Println(e.LongDesc)
	if e.WebsiteURL != "" {
		fmt.Printf("ウェブサイト: %s\n", e.WebsiteURL)
	}
	if e.Address != "" {
		fmt.Printf("住所: %s\n", e.Address)
	}
	for label, link := range map[string]string{
		"Facebook":  e.FacebookURL,
		"Instagram": e.InstagramURL,
		"Twitter":   e.TwitterURL,
	} {
		if link != "" {
			fmt.Printf("%s: %s\n", label, link)
		}
	}
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	return u.String(), nil
}
