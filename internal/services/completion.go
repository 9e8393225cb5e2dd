package services

import (
	"fmt"

	"vibego/internal/models/response_models"
)

// Checklist item ids must come out identical for a fresh generation and for a
// saved journey, or toggles stop meaning anything. For day d, activity i maps
// to "item-d-i" and restaurant j continues the index after the activities.

func ItemID(day, index int) string {
	return fmt.Sprintf("item-%d-%d", day, index)
}

// ChecklistItemIDs enumerates every toggleable id for an itinerary, in
// declaration order.
func ChecklistItemIDs(itinerary *response_models.Itinerary) []string {
	var ids []string
	for _, day := range itinerary.DailyItinerary {
		for i := range day.Activities {
			ids = append(ids, ItemID(day.Day, i))
		}
		for j := range day.Restaurants {
			ids = append(ids, ItemID(day.Day, len(day.Activities)+j))
		}
	}
	return ids
}

// CompletionSet is the per-view set of checked-off items.
type CompletionSet map[string]struct{}

func NewCompletionSet(ids ...string) CompletionSet {
	s := make(CompletionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle flips membership and reports the new state. Toggling twice restores
// the original set.
func (s CompletionSet) Toggle(itemId string) (completed bool) {
	if _, ok := s[itemId]; ok {
		delete(s, itemId)
		return false
	}
	s[itemId] = struct{}{}
	return true
}

func (s CompletionSet) Contains(itemId string) bool {
	_, ok := s[itemId]
	return ok
}

// Items returns the membership as a slice for storage. Order is unspecified.
func (s CompletionSet) Items() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}
