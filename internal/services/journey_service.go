package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"vibego/internal/models/db_models"
	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	"vibego/internal/repositories"
	"vibego/pkg/utils"
)

type JourneyServiceInterface interface {
	SaveJourney(ctx context.Context, userId string, request *request_models.SaveJourneyRequest) (string, error)
	GetListOfJourneyByUserId(ctx context.Context, userId string, page, pageSize int) ([]response_models.JourneyResponse, error)
	GetJourneyById(ctx context.Context, userId, journeyId string) (*response_models.JourneyDetailResponse, error)
	DeleteJourney(ctx context.Context, userId, journeyId string) error
	ToggleItemComplete(ctx context.Context, userId, journeyId, itemId string) (*response_models.ToggleProgressResponse, error)
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
}

func NewJourneyService(journeyRepo repositories.JourneyRepository) JourneyServiceInterface {
	return &JourneyService{journeyRepo: journeyRepo}
}

// SaveJourney stores the itinerary and its originating soul profile as one
// document under the acting user. Coordinates are never part of the stored
// document; the map view recomputes them on every read.
func (j *JourneyService) SaveJourney(ctx context.Context, userId string, request *request_models.SaveJourneyRequest) (string, error) {
	uid, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	if request.Itinerary == nil || len(request.Itinerary.DailyItinerary) == 0 || request.SoulProfile == nil {
		return "", utils.ErrInvalidInput
	}

	dailyJSON, err := json.Marshal(request.Itinerary.DailyItinerary)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	profileJSON, err := json.Marshal(request.SoulProfile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	journey := &db_models.Journey{
		UserID:         uid,
		TripTitle:      request.Itinerary.TripTitle,
		Destination:    request.Itinerary.Destination,
		SoulQuote:      request.Itinerary.SoulQuote,
		DailyItinerary: dailyJSON,
		SoulProfile:    profileJSON,
	}
	if err := j.journeyRepo.Insert(ctx, journey); err != nil {
		return "", utils.ErrDatabaseError
	}
	return journey.ID.String(), nil
}

func (j *JourneyService) GetListOfJourneyByUserId(ctx context.Context, userId string, page, pageSize int) ([]response_models.JourneyResponse, error) {
	uid, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	journeys, err := j.journeyRepo.ListByUserId(ctx, uid, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JourneyResponse, 0, len(journeys))
	for _, journey := range journeys {
		out = append(out, response_models.JourneyResponse{
			ID:          journey.ID.String(),
			TripTitle:   journey.TripTitle,
			Destination: journey.Destination,
			CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(journey.CreatedAt)),
		})
	}
	return out, nil
}

func (j *JourneyService) GetJourneyById(ctx context.Context, userId, journeyId string) (*response_models.JourneyDetailResponse, error) {
	journey, err := j.loadOwned(ctx, userId, journeyId)
	if err != nil {
		return nil, err
	}

	var days []response_models.ItineraryDay
	if err := json.Unmarshal(journey.DailyItinerary, &days); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.JourneyDetailResponse{
		ID:               journey.ID.String(),
		TripTitle:        journey.TripTitle,
		Destination:      journey.Destination,
		SoulQuote:        journey.SoulQuote,
		DailyItinerary:   days,
		SoulProfile:      json.RawMessage(journey.SoulProfile),
		CompletedItemIDs: journey.CompletedItemIDs,
		CreatedAt:        utils.FormatRFC3339(utils.FromUnixSeconds(journey.CreatedAt)),
	}, nil
}

func (j *JourneyService) DeleteJourney(ctx context.Context, userId, journeyId string) error {
	uid, jid, err := parseIds(userId, journeyId)
	if err != nil {
		return err
	}
	deleted, err := j.journeyRepo.DeleteForUser(ctx, uid, jid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrJourneyNotFound
	}
	return nil
}

// ToggleItemComplete flips one checklist item in the persisted completion set.
// Ids outside the journey's checklist are rejected, so the stored set only
// ever references real line items.
func (j *JourneyService) ToggleItemComplete(ctx context.Context, userId, journeyId, itemId string) (*response_models.ToggleProgressResponse, error) {
	journey, err := j.loadOwned(ctx, userId, journeyId)
	if err != nil {
		return nil, err
	}

	var days []response_models.ItineraryDay
	if err := json.Unmarshal(journey.DailyItinerary, &days); err != nil {
		return nil, utils.ErrDatabaseError
	}
	itinerary := &response_models.Itinerary{DailyItinerary: days}

	valid := NewCompletionSet(ChecklistItemIDs(itinerary)...)
	if !valid.Contains(itemId) {
		return nil, utils.ErrUnknownItemID
	}

	set := NewCompletionSet(journey.CompletedItemIDs...)
	completed := set.Toggle(itemId)

	if err := j.journeyRepo.UpdateCompletedItems(ctx, journey.UserID, journey.ID, set.Items()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ToggleProgressResponse{ItemID: itemId, Completed: completed}, nil
}

func (j *JourneyService) loadOwned(ctx context.Context, userId, journeyId string) (*db_models.Journey, error) {
	uid, jid, err := parseIds(userId, journeyId)
	if err != nil {
		return nil, err
	}
	journey, err := j.journeyRepo.GetByIdForUser(ctx, uid, jid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}
	return journey, nil
}

func parseIds(userId, journeyId string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userId)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrInvalidInput
	}
	jid, err := uuid.Parse(journeyId)
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.ErrJourneyNotFound
	}
	return uid, jid, nil
}
