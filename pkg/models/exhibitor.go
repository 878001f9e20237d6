package models

// Exhibitor is the canonical record for one market stall.
// category, short_desc, long_desc and image_url are required when a
// record enters through the CSV pipeline; the social/contact fields are
// optional everywhere.
type Exhibitor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	ShortDesc    string   `json:"short_desc"`
	LongDesc     string   `json:"long_desc"`
	ImageURL     string   `json:"image_url,omitempty"`
	WebsiteURL   string   `json:"website_url,omitempty"`
	Address      string   `json:"address,omitempty"`
	FacebookURL  string   `json:"facebook_url,omitempty"`
	InstagramURL string   `json:"instagram_url,omitempty"`
	TwitterURL   string   `json:"twitter_url,omitempty"`
}

// Category is the closed set of stall categories.
type Category string

const (
	CategoryFarmer Category = "農家"
	CategoryFood   Category = "飲食"
	CategoryCafe   Category = "カフェ"
	CategoryCraft  Category = "クラフト"
)

// Categories in display order.
var Categories = []Category{CategoryFarmer, CategoryFood, CategoryCafe, CategoryCraft}

// FilterAll is the pseudo-category matching every record.
const FilterAll Category = "ALL"

// FilterChoices is what a filter bar shows: ALL first, then the real
// categories in display order.
var FilterChoices = append([]Category{FilterAll}, Categories...)

// ParseCategory reports whether raw names a real category (never ALL).
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// CategoryStyle holds the presentation attributes for one category.
type CategoryStyle struct {
	Base string `json:"base"`
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

// CategoryStyles maps each category to its presentation attributes.
// A lookup table, deliberately: styles are data, not assembled strings.
var CategoryStyles = map[Category]CategoryStyle{
	CategoryFarmer: {Base: "green", Bg: "bg-green-50", Text: "text-green-800"},
	CategoryFood:   {Base: "red", Bg: "bg-red-50", Text: "text-red-800"},
	CategoryCafe:   {Base: "stone", Bg: "bg-stone-100", Text: "text-stone-800"},
	CategoryCraft:  {Base: "orange", Bg: "bg-orange-50", Text: "text-orange-800"},
	FilterAll:      {Base: "gray", Bg: "bg-gray-200", Text: "text-gray-800"},
}
