package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayCountInclusive(t *testing.T) {
	p := &PracticalDetails{StartDate: "2026-04-01", EndDate: "2026-04-03"}
	assert.Equal(t, 3, p.DayCount())

	p = &PracticalDetails{StartDate: "2026-04-01", EndDate: "2026-04-01"}
	assert.Equal(t, 1, p.DayCount())
}

func TestDayCountUnusableWindow(t *testing.T) {
	p := &PracticalDetails{StartDate: "01/04/2026", EndDate: "2026-04-03"}
	assert.Zero(t, p.DayCount())

	p = &PracticalDetails{StartDate: "2026-04-05", EndDate: "2026-04-01"}
	assert.Zero(t, p.DayCount())
}

func TestProfilePrefersCanonicalKey(t *testing.T) {
	canonical := &SoulProfile{Philosophy: "canonical"}
	alias := &SoulProfile{Philosophy: "alias"}

	req := &GenerateItineraryRequest{SoulProfile: canonical, Answers: alias}
	assert.Same(t, canonical, req.Profile())

	req = &GenerateItineraryRequest{Answers: alias}
	assert.Same(t, alias, req.Profile())
}

func TestIsLegacyFlattened(t *testing.T) {
	req := &GenerateItineraryRequest{
		PersonalityData: map[string]interface{}{"archetype": "seeker"},
	}
	assert.True(t, req.IsLegacyFlattened())

	// a soul profile alongside stray legacy keys still wins
	req.SoulProfile = &SoulProfile{}
	assert.False(t, req.IsLegacyFlattened())

	assert.False(t, (&GenerateItineraryRequest{}).IsLegacyFlattened())
}
