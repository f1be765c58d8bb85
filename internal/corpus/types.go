// Package corpus holds the static knowledge corpora the assistant retrieves
// from: destinations, food venues, tour packages, booking policies and travel
// tips. Each corpus is wrapped in an Index that supports approximate search
// over a derived, normalized search key; the index never interprets the
// domain fields beyond extracting searchable text.
package corpus

import "strings"

// LatLng is an optional coordinate pair attached to destination records.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination describes a city or province entry.
type Destination struct {
	City       string   `json:"city"`
	Name       string   `json:"name,omitempty"`
	Country    string   `json:"country,omitempty"`
	Region     string   `json:"region,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	BestTime   string   `json:"bestTime,omitempty"`
	Coords     *LatLng  `json:"coordinates,omitempty"`
}

// Food describes a dish and a concrete venue serving it.
type Food struct {
	City       string   `json:"city"`
	Country    string   `json:"country,omitempty"`
	DishName   string   `json:"dishName"`
	Restaurant string   `json:"restaurant,omitempty"`
	Address    string   `json:"address,omitempty"`
	PriceRange string   `json:"priceRange,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Tour describes a pre-packaged tour or combo.
type Tour struct {
	Title        string   `json:"title"`
	Destinations []string `json:"destinations,omitempty"`
	Style        []string `json:"style,omitempty"`
	Target       []string `json:"target,omitempty"`
	DurationDays int      `json:"durationDays,omitempty"`
	PriceFrom    string   `json:"priceFrom,omitempty"`
}

// Policy describes a booking/payment/cancellation note.
type Policy struct {
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Content  string   `json:"content,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Tip describes a travel tip grouped by topic.
type Tip struct {
	Topic   string   `json:"topic"`
	Title   string   `json:"title"`
	Content string   `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// The search-key extractors below concatenate the salient fields of each
// record type. The resulting blob is normalized once at index build time.

// DestinationSearchText returns the searchable text of a destination.
func DestinationSearchText(d Destination) string {
	return join(d.City, d.Name, d.Country, strings.Join(d.Tags, " "))
}

// FoodSearchText returns the searchable text of a food record.
func FoodSearchText(f Food) string {
	return join(f.City, f.Country, f.DishName, f.Restaurant, strings.Join(f.Tags, " "))
}

// TourSearchText returns the searchable text of a tour record.
func TourSearchText(t Tour) string {
	return join(t.Title, strings.Join(t.Destinations, " "), strings.Join(t.Style, " "), strings.Join(t.Target, " "))
}

// PolicySearchText returns the searchable text of a policy record.
func PolicySearchText(p Policy) string {
	return join(p.Category, p.Title, strings.Join(p.Keywords, " "))
}

// TipSearchText returns the searchable text of a tip record.
func TipSearchText(t Tip) string {
	return join(t.Topic, t.Title, strings.Join(t.Tags, " "))
}

func join(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
