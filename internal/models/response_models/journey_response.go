package response_models

import "encoding/json"

type JourneyResponse struct {
	ID          string `json:"id"`
	TripTitle   string `json:"trip_title"`
	Destination string `json:"destination"`
	CreatedAt   string `json:"created_at"` // RFC3339
}

// JourneyDetailResponse serves the stored document back verbatim; the soul
// profile is returned exactly as it was saved.
type JourneyDetailResponse struct {
	ID               string          `json:"id"`
	TripTitle        string          `json:"trip_title"`
	Destination      string          `json:"destination"`
	SoulQuote        string          `json:"soul_quote,omitempty"`
	DailyItinerary   []ItineraryDay  `json:"daily_itinerary"`
	SoulProfile      json.RawMessage `json:"soul_profile"`
	CompletedItemIDs []string        `json:"completed_item_ids"`
	CreatedAt        string          `json:"created_at"`
}

type SaveJourneyResponse struct {
	ID string `json:"id"`
}

type ToggleProgressResponse struct {
	ItemID    string `json:"item_id"`
	Completed bool   `json:"completed"`
}
