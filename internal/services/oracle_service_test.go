package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	"vibego/pkg/utils"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubGenerator) GenerateItineraryJSON(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func validRequest() *request_models.GenerateItineraryRequest {
	return &request_models.GenerateItineraryRequest{
		SoulProfile: &request_models.SoulProfile{
			Archetype:    &request_models.ProfileOption{Value: "wanderer", Label: "The Wanderer", Description: "Drawn to the unknown"},
			Mood:         &request_models.ProfileOption{Value: "restless", Label: "Restless"},
			Philosophy:   "slow mornings",
			Intention:    "find quiet",
			Destinations: []string{"mountains", "old towns"},
			Practical: &request_models.PracticalDetails{
				Destination: "Kyoto, Japan",
				StartDate:   "2026-04-01",
				EndDate:     "2026-04-03",
				Budget:      1500,
				Companions:  "solo",
			},
		},
	}
}

func generatedJSON(days ...int) string {
	itinerary := response_models.Itinerary{
		TripTitle:   "Kyoto Unfolding",
		Destination: "Kyoto, Japan",
		SoulQuote:   "The path reveals itself one step at a time.",
	}
	for _, d := range days {
		itinerary.DailyItinerary = append(itinerary.DailyItinerary, response_models.ItineraryDay{
			Day:   d,
			Theme: fmt.Sprintf("Theme %d", d),
			Activities: []response_models.PlaceItem{
				{Name: fmt.Sprintf("Temple %d", d), SearchableName: fmt.Sprintf("Temple %d, Kyoto", d), Description: "quiet grounds", Emoji: "⛩️"},
			},
			Restaurants: []response_models.PlaceItem{
				{Name: fmt.Sprintf("Ramen %d", d), Description: "late bowl", Emoji: "🍜"},
			},
		})
	}
	raw, _ := json.Marshal(itinerary)
	return string(raw)
}

func TestGenerateItineraryExactDaySequence(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON(1, 2, 3)}
	svc := NewOracleService(gen, nil)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, itinerary.DailyItinerary, 3)
	for i, day := range itinerary.DailyItinerary {
		assert.Equal(t, i+1, day.Day)
	}
}

func TestGenerateItineraryPadsShortOutput(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON(1, 2)}
	svc := NewOracleService(gen, nil)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, itinerary.DailyItinerary, 3)
	assert.Equal(t, 3, itinerary.DailyItinerary[2].Day)
	assert.Equal(t, "Day of Stillness", itinerary.DailyItinerary[2].Theme)
	assert.NotEmpty(t, itinerary.DailyItinerary[2].Activities)
}

func TestGenerateItineraryTruncatesAndRenumbers(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON(4, 1, 7, 2, 3)}
	svc := NewOracleService(gen, nil)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, itinerary.DailyItinerary, 3)
	for i, day := range itinerary.DailyItinerary {
		assert.Equal(t, i+1, day.Day)
	}
	// lowest-numbered generated days survive the cut
	assert.Equal(t, "Theme 1", itinerary.DailyItinerary[0].Theme)
	assert.Equal(t, "Theme 2", itinerary.DailyItinerary[1].Theme)
	assert.Equal(t, "Theme 3", itinerary.DailyItinerary[2].Theme)
}

func TestGenerateItineraryIncompleteProfileSkipsUpstream(t *testing.T) {
	cases := map[string]func(*request_models.GenerateItineraryRequest){
		"missing practical":   func(r *request_models.GenerateItineraryRequest) { r.SoulProfile.Practical = nil },
		"missing archetype":   func(r *request_models.GenerateItineraryRequest) { r.SoulProfile.Archetype = nil },
		"missing destination": func(r *request_models.GenerateItineraryRequest) { r.SoulProfile.Practical.Destination = "  " },
		"missing dates":       func(r *request_models.GenerateItineraryRequest) { r.SoulProfile.Practical.StartDate = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			gen := &stubGenerator{response: generatedJSON(1, 2, 3)}
			svc := NewOracleService(gen, nil)

			req := validRequest()
			mutate(req)

			_, err := svc.GenerateItinerary(context.Background(), req)
			assert.ErrorIs(t, err, utils.ErrIncompleteProfile)
			assert.Zero(t, gen.calls, "invalid profile must not reach the generator")
		})
	}
}

func TestGenerateItineraryRejectsBadDates(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON(1)}
	svc := NewOracleService(gen, nil)

	req := validRequest()
	req.SoulProfile.Practical.StartDate = "2026-04-05"
	req.SoulProfile.Practical.EndDate = "2026-04-01"

	_, err := svc.GenerateItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, gen.calls)
}

func TestGenerateItineraryRejectsLegacyShape(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON(1)}
	svc := NewOracleService(gen, nil)

	req := &request_models.GenerateItineraryRequest{
		PersonalityData: map[string]interface{}{"archetype": "wanderer"},
		TripData:        map[string]interface{}{"destination": "Kyoto"},
	}

	_, err := svc.GenerateItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrLegacyRequestShape)
	assert.Zero(t, gen.calls)
}

func TestGenerateItineraryAcceptsAnswersAlias(t *testing.T) {
	gen := &stubGenerator{response: generatedJSON(1, 2, 3)}
	svc := NewOracleService(gen, nil)

	req := validRequest()
	req.Answers = req.SoulProfile
	req.SoulProfile = nil

	itinerary, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, itinerary.DailyItinerary, 3)
}

func TestGenerateItineraryPassesUpstreamErrors(t *testing.T) {
	for _, sentinel := range []error{utils.ErrUpstreamCredentials, utils.ErrUpstreamQuota, utils.ErrGenerationFailed} {
		gen := &stubGenerator{err: sentinel}
		svc := NewOracleService(gen, nil)

		_, err := svc.GenerateItinerary(context.Background(), validRequest())
		assert.ErrorIs(t, err, sentinel)
	}
}

func TestGenerateItineraryRejectsMalformedJSON(t *testing.T) {
	gen := &stubGenerator{response: "the spirits are silent today"}
	svc := NewOracleService(gen, nil)

	_, err := svc.GenerateItinerary(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateItineraryStripsMarkdownFences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + generatedJSON(1, 2, 3) + "\n```"}
	svc := NewOracleService(gen, nil)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, itinerary.DailyItinerary, 3)
}

func TestBuildOraclePromptEmbedsProfile(t *testing.T) {
	req := validRequest()
	profile := req.Profile()

	prompt := BuildOraclePrompt(profile, 3, nil)

	assert.Contains(t, prompt, "The Wanderer (Drawn to the unknown)")
	assert.Contains(t, prompt, "Restless")
	assert.Contains(t, prompt, "slow mornings")
	assert.Contains(t, prompt, "find quiet")
	assert.Contains(t, prompt, "mountains, old towns")
	assert.Contains(t, prompt, "Kyoto, Japan")
	assert.Contains(t, prompt, "From 2026-04-01 to 2026-04-03 (3 days)")
	assert.Contains(t, prompt, "$1500")
	assert.Contains(t, prompt, "Special Requests: None")
	assert.NotContains(t, prompt, "Verified venues")
}

func TestBuildOraclePromptClosedCandidateList(t *testing.T) {
	req := validRequest()
	candidates := []PlaceCandidate{
		{Name: "Kinkaku-ji", Category: "temple", Description: "golden pavilion"},
		{Name: "Nishiki Market", Category: "market", Description: "covered food street"},
	}

	prompt := BuildOraclePrompt(req.Profile(), 3, candidates)

	assert.Contains(t, prompt, "ONLY from this list")
	assert.Contains(t, prompt, "Kinkaku-ji")
	assert.Contains(t, prompt, "Nishiki Market")
	assert.True(t, strings.Contains(prompt, "exactly 3 entries"))
}

func TestGenerateItineraryDefaultsDestination(t *testing.T) {
	itinerary := response_models.Itinerary{
		TripTitle: "Untitled",
		DailyItinerary: []response_models.ItineraryDay{
			{Day: 1, Theme: "arrival", Activities: []response_models.PlaceItem{{Name: "Station"}}},
		},
	}
	raw, _ := json.Marshal(itinerary)

	gen := &stubGenerator{response: string(raw)}
	svc := NewOracleService(gen, nil)

	out, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Kyoto, Japan", out.Destination)
}
