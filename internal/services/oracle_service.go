package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	"vibego/pkg/utils"
)

type OracleServiceInterface interface {
	GenerateItinerary(ctx context.Context, request *request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
}

type OracleService struct {
	generator    utils.ItineraryGeneratorInterface
	placeService PlaceServiceInterface // nil when grounding is disabled
}

func NewOracleService(generator utils.ItineraryGeneratorInterface, placeService PlaceServiceInterface) OracleServiceInterface {
	return &OracleService{
		generator:    generator,
		placeService: placeService,
	}
}

// GenerateItinerary runs the whole pipeline: validate, prompt, one structured
// generation call, then reconcile the day sequence against the trip window.
// No upstream call happens for an invalid profile, and no partial itinerary is
// ever returned.
func (o *OracleService) GenerateItinerary(ctx context.Context, request *request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	if request.IsLegacyFlattened() {
		return nil, utils.ErrLegacyRequestShape
	}

	profile := request.Profile()
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	dayCount := profile.Practical.DayCount()

	var candidates []PlaceCandidate
	if o.placeService != nil {
		// Grounding is best-effort: an empty or failed lookup falls back to
		// letting the model name venues itself.
		found, err := o.placeService.FindCandidates(ctx, profile)
		if err != nil {
			log.Printf("place grounding lookup failed, continuing without: %v", err)
		} else {
			candidates = found
		}
	}

	prompt := BuildOraclePrompt(profile, dayCount, candidates)

	rawJSON, err := o.generator.GenerateItineraryJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	itinerary, err := parseItinerary(rawJSON)
	if err != nil {
		return nil, err
	}

	reconcileDays(itinerary, dayCount)
	if itinerary.Destination == "" {
		itinerary.Destination = profile.Practical.Destination
	}
	return itinerary, nil
}

func validateProfile(profile *request_models.SoulProfile) error {
	if profile == nil || profile.Practical == nil || profile.Archetype == nil {
		return utils.ErrIncompleteProfile
	}
	p := profile.Practical
	if strings.TrimSpace(p.Destination) == "" || p.StartDate == "" || p.EndDate == "" {
		return utils.ErrIncompleteProfile
	}
	start, end, err := p.TripDates()
	if err != nil {
		return fmt.Errorf("%w: dates must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date before start date", utils.ErrInvalidInput)
	}
	return nil
}

// BuildOraclePrompt embeds every profile field verbatim. When candidates are
// present the model must pick venues only from that closed list.
func BuildOraclePrompt(profile *request_models.SoulProfile, dayCount int, candidates []PlaceCandidate) string {
	p := profile.Practical
	var b strings.Builder

	b.WriteString("You are a mystical travel oracle. Create a personalized and soulful travel itinerary based on the following sacred reading:\n\n")

	b.WriteString("Traveler's Soul Profile:\n")
	fmt.Fprintf(&b, "- Soul Archetype: %s\n", describeOption(profile.Archetype))
	fmt.Fprintf(&b, "- Current Energy: %s\n", describeOption(profile.Mood))
	fmt.Fprintf(&b, "- Journey Philosophy: %s\n", profile.Philosophy)
	fmt.Fprintf(&b, "- Sacred Intention: %s\n", profile.Intention)
	fmt.Fprintf(&b, "- Realms that Call to Them: %s\n", strings.Join(profile.Destinations, ", "))

	b.WriteString("\nPractical Journey Details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", p.Destination)
	fmt.Fprintf(&b, "- Duration: From %s to %s (%d days)\n", p.StartDate, p.EndDate, dayCount)
	fmt.Fprintf(&b, "- Budget: Around $%.0f\n", p.Budget)
	fmt.Fprintf(&b, "- Companions: %s\n", p.Companions)
	special := p.AdditionalPrompt
	if special == "" {
		special = "None"
	}
	fmt.Fprintf(&b, "- Special Requests: %s\n", special)

	if len(candidates) > 0 {
		b.WriteString("\nVerified venues (choose activities and restaurants ONLY from this list, do not invent others):\n")
		for _, c := range candidates {
			fmt.Fprintf(&b, "- %s | %s | %s\n", c.Name, c.Category, c.Description)
		}
	}

	b.WriteString("\nHard constraints:\n")
	fmt.Fprintf(&b, "1. Every place must be in or around %s.\n", p.Destination)
	fmt.Fprintf(&b, "2. \"daily_itinerary\" has exactly %d entries, day = 1..%d, no gaps.\n", dayCount, dayCount)
	b.WriteString("3. Each day has 2-4 activities and 1-3 restaurants.\n")
	b.WriteString("4. Every activity and restaurant carries a searchable_name that a geocoding service can resolve (include district and city).\n")
	b.WriteString("5. Return machine-parseable JSON only. No prose, no markdown.\n")

	return b.String()
}

func describeOption(opt *request_models.ProfileOption) string {
	if opt == nil {
		return ""
	}
	if opt.Label == "" {
		return opt.Value
	}
	if opt.Description == "" {
		return opt.Label
	}
	return fmt.Sprintf("%s (%s)", opt.Label, opt.Description)
}

func parseItinerary(rawJSON string) (*response_models.Itinerary, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(rawJSON)), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}
	if len(itinerary.DailyItinerary) == 0 {
		return nil, fmt.Errorf("%w: empty itinerary", utils.ErrGenerationFailed)
	}
	return &itinerary, nil
}

// reconcileDays normalizes the generated day sequence to exactly 1..dayCount:
// sort, renumber, pad short output with a rest day, truncate long output.
func reconcileDays(itinerary *response_models.Itinerary, dayCount int) {
	days := itinerary.DailyItinerary
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	if len(days) > dayCount {
		days = days[:dayCount]
	}
	for len(days) < dayCount {
		days = append(days, restDay())
	}
	for i := range days {
		days[i].Day = i + 1
	}
	itinerary.DailyItinerary = days
}

func restDay() response_models.ItineraryDay {
	return response_models.ItineraryDay{
		Theme: "Day of Stillness",
		Activities: []response_models.PlaceItem{{
			Name:        "Free exploration",
			Description: "Wander at your own pace and follow whatever calls to you.",
			Emoji:       "🌿",
		}},
		Restaurants: []response_models.PlaceItem{},
	}
}
