package response_models

// PlaceItem is a single activity or restaurant entry. SearchableName is the
// geocoder-friendly alias ("Senso-ji, Asakusa, Tokyo" rather than the display
// name); either it or Name must be usable as a geocoding query.
type PlaceItem struct {
	Name           string `json:"name"`
	SearchableName string `json:"searchable_name,omitempty"`
	Description    string `json:"description"`
	Emoji          string `json:"emoji"`
}

// GeocodeQuery is the text the enrichment stage should look up for this item.
func (p PlaceItem) GeocodeQuery() string {
	if p.SearchableName != "" {
		return p.SearchableName
	}
	return p.Name
}

type ItineraryDay struct {
	Day         int         `json:"day"`
	Theme       string      `json:"theme"`
	Activities  []PlaceItem `json:"activities"`
	Restaurants []PlaceItem `json:"restaurants"`
}

// Itinerary is the canonical generated travel plan. Coordinates never live
// here; they are recomputed by the map view on every render.
type Itinerary struct {
	TripTitle      string         `json:"trip_title"`
	Destination    string         `json:"destination"`
	SoulQuote      string         `json:"soul_quote,omitempty"`
	DailyItinerary []ItineraryDay `json:"daily_itinerary"`
}
