package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Place is one candidate venue for prompt grounding. Rows are seeded out of
// band; Embedding covers name, description and tags.
type Place struct {
	BaseModel
	Name        string
	Destination string `gorm:"index"`
	Description string
	Category    string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(256)"`
}
