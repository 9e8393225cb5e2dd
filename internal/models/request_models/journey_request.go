package request_models

import "vibego/internal/models/response_models"

type SaveJourneyRequest struct {
	Itinerary   *response_models.Itinerary `json:"itinerary" binding:"required"`
	SoulProfile *SoulProfile               `json:"soul_profile" binding:"required"`
}

type ToggleProgressRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type MapViewRequest struct {
	Itinerary *response_models.Itinerary `json:"itinerary" binding:"required"`
}
