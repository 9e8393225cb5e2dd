package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibego/internal/models/db_models"
	"vibego/internal/models/request_models"
	"vibego/pkg/utils"
)

type fakeJourneyRepo struct {
	journeys map[uuid.UUID]*db_models.Journey
}

func newFakeJourneyRepo() *fakeJourneyRepo {
	return &fakeJourneyRepo{journeys: make(map[uuid.UUID]*db_models.Journey)}
}

func (f *fakeJourneyRepo) Insert(_ context.Context, journey *db_models.Journey) error {
	if journey.ID == uuid.Nil {
		journey.ID = uuid.New()
	}
	f.journeys[journey.ID] = journey
	return nil
}

func (f *fakeJourneyRepo) ListByUserId(_ context.Context, userId uuid.UUID, _, _ int) ([]db_models.Journey, error) {
	var out []db_models.Journey
	for _, j := range f.journeys {
		if j.UserID == userId {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJourneyRepo) GetByIdForUser(_ context.Context, userId, journeyId uuid.UUID) (*db_models.Journey, error) {
	j, ok := f.journeys[journeyId]
	if !ok || j.UserID != userId {
		return nil, nil
	}
	return j, nil
}

func (f *fakeJourneyRepo) DeleteForUser(_ context.Context, userId, journeyId uuid.UUID) (bool, error) {
	j, ok := f.journeys[journeyId]
	if !ok || j.UserID != userId {
		return false, nil
	}
	delete(f.journeys, journeyId)
	return true, nil
}

func (f *fakeJourneyRepo) UpdateCompletedItems(_ context.Context, userId, journeyId uuid.UUID, itemIds []string) error {
	j, ok := f.journeys[journeyId]
	if !ok || j.UserID != userId {
		return nil
	}
	j.CompletedItemIDs = pq.StringArray(itemIds)
	return nil
}

func saveRequest() *request_models.SaveJourneyRequest {
	itinerary := tokyoItinerary()
	return &request_models.SaveJourneyRequest{
		Itinerary: itinerary,
		SoulProfile: &request_models.SoulProfile{
			Archetype: &request_models.ProfileOption{Value: "wanderer", Label: "The Wanderer"},
			Practical: &request_models.PracticalDetails{
				Destination: "Tokyo, Japan",
				StartDate:   "2026-04-01",
				EndDate:     "2026-04-02",
			},
		},
	}
}

func TestSaveAndLoadJourneyRoundTrip(t *testing.T) {
	repo := newFakeJourneyRepo()
	svc := NewJourneyService(repo)
	userId := uuid.New().String()

	req := saveRequest()
	id, err := svc.SaveJourney(context.Background(), userId, req)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	detail, err := svc.GetJourneyById(context.Background(), userId, id)
	require.NoError(t, err)

	assert.Equal(t, req.Itinerary.TripTitle, detail.TripTitle)
	assert.Equal(t, req.Itinerary.Destination, detail.Destination)
	assert.Equal(t, req.Itinerary.DailyItinerary, detail.DailyItinerary)
	assert.Empty(t, detail.CompletedItemIDs)
	assert.JSONEq(t, `{
		"archetype":{"value":"wanderer","label":"The Wanderer"},
		"mood":null,
		"philosophy":"",
		"intention":"",
		"destinations":null,
		"practical":{"destination":"Tokyo, Japan","start_date":"2026-04-01","end_date":"2026-04-02","budget":0,"companions":""}
	}`, string(detail.SoulProfile))
}

func TestSaveJourneyRejectsEmptyDocument(t *testing.T) {
	svc := NewJourneyService(newFakeJourneyRepo())
	userId := uuid.New().String()

	_, err := svc.SaveJourney(context.Background(), userId, &request_models.SaveJourneyRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetJourneyByIdScopedToOwner(t *testing.T) {
	repo := newFakeJourneyRepo()
	svc := NewJourneyService(repo)
	owner := uuid.New().String()
	stranger := uuid.New().String()

	id, err := svc.SaveJourney(context.Background(), owner, saveRequest())
	require.NoError(t, err)

	_, err = svc.GetJourneyById(context.Background(), stranger, id)
	assert.ErrorIs(t, err, utils.ErrJourneyNotFound)
}

func TestDeleteJourney(t *testing.T) {
	repo := newFakeJourneyRepo()
	svc := NewJourneyService(repo)
	userId := uuid.New().String()

	id, err := svc.SaveJourney(context.Background(), userId, saveRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJourney(context.Background(), userId, id))
	assert.ErrorIs(t, svc.DeleteJourney(context.Background(), userId, id), utils.ErrJourneyNotFound)
}

func TestToggleItemCompletePersists(t *testing.T) {
	repo := newFakeJourneyRepo()
	svc := NewJourneyService(repo)
	userId := uuid.New().String()

	id, err := svc.SaveJourney(context.Background(), userId, saveRequest())
	require.NoError(t, err)

	result, err := svc.ToggleItemComplete(context.Background(), userId, id, "item-1-0")
	require.NoError(t, err)
	assert.True(t, result.Completed)

	detail, err := svc.GetJourneyById(context.Background(), userId, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1-0"}, detail.CompletedItemIDs)

	// second toggle clears it
	result, err = svc.ToggleItemComplete(context.Background(), userId, id, "item-1-0")
	require.NoError(t, err)
	assert.False(t, result.Completed)

	detail, err = svc.GetJourneyById(context.Background(), userId, id)
	require.NoError(t, err)
	assert.Empty(t, detail.CompletedItemIDs)
}

func TestToggleItemCompleteRejectsUnknownId(t *testing.T) {
	repo := newFakeJourneyRepo()
	svc := NewJourneyService(repo)
	userId := uuid.New().String()

	id, err := svc.SaveJourney(context.Background(), userId, saveRequest())
	require.NoError(t, err)

	_, err = svc.ToggleItemComplete(context.Background(), userId, id, "item-9-9")
	assert.ErrorIs(t, err, utils.ErrUnknownItemID)
}

func TestJourneyIdsMustBeUUIDs(t *testing.T) {
	svc := NewJourneyService(newFakeJourneyRepo())

	_, err := svc.GetJourneyById(context.Background(), "not-a-uuid", uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.GetJourneyById(context.Background(), uuid.New().String(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrJourneyNotFound)
}
