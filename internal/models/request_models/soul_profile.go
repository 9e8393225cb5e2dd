package request_models

import "time"

// ProfileOption is one questionnaire answer card. Value is the stable id;
// Label and Description are the human-facing text fed to the prompt.
type ProfileOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

type PracticalDetails struct {
	Destination      string  `json:"destination"`
	StartDate        string  `json:"start_date"` // YYYY-MM-DD
	EndDate          string  `json:"end_date"`   // YYYY-MM-DD
	Budget           float64 `json:"budget"`
	Companions       string  `json:"companions"`
	AdditionalPrompt string  `json:"additional_prompt,omitempty"`
}

// SoulProfile is the complete questionnaire outcome for one traveler.
type SoulProfile struct {
	Archetype    *ProfileOption    `json:"archetype"`
	Mood         *ProfileOption    `json:"mood"`
	Philosophy   string            `json:"philosophy"`
	Intention    string            `json:"intention"`
	Destinations []string          `json:"destinations"`
	Practical    *PracticalDetails `json:"practical"`
}

// GenerateItineraryRequest accepts the canonical soul_profile key and the
// deprecated answers alias, which carries the same object. The flattened
// personalityData/tripData pair is recognized only to be rejected.
type GenerateItineraryRequest struct {
	SoulProfile     *SoulProfile           `json:"soul_profile"`
	Answers         *SoulProfile           `json:"answers"`
	PersonalityData map[string]interface{} `json:"personalityData"`
	TripData        map[string]interface{} `json:"tripData"`
}

// Profile returns the effective soul profile, preferring the canonical key.
func (r *GenerateItineraryRequest) Profile() *SoulProfile {
	if r.SoulProfile != nil {
		return r.SoulProfile
	}
	return r.Answers
}

// IsLegacyFlattened reports whether the caller sent the retired flattened
// shape instead of a soul profile object.
func (r *GenerateItineraryRequest) IsLegacyFlattened() bool {
	return r.SoulProfile == nil && r.Answers == nil &&
		(len(r.PersonalityData) > 0 || len(r.TripData) > 0)
}

const tripDateLayout = "2006-01-02"

func (p *PracticalDetails) TripDates() (time.Time, time.Time, error) {
	start, err := time.Parse(tripDateLayout, p.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(tripDateLayout, p.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// DayCount is the inclusive number of calendar days in the trip window.
// Zero means the window is unusable.
func (p *PracticalDetails) DayCount() int {
	start, end, err := p.TripDates()
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
