package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Journey is one saved itinerary. The generated plan and the originating soul
// profile are stored as opaque jsonb documents: the row is immutable after
// save except for the completion checklist.
type Journey struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	TripTitle   string
	Destination string
	SoulQuote   string

	DailyItinerary []byte `gorm:"type:jsonb"`
	SoulProfile    []byte `gorm:"type:jsonb"`

	CompletedItemIDs pq.StringArray `gorm:"type:text[]"`
}
