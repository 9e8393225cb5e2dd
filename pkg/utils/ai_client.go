package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// ItineraryGeneratorInterface is the single structured-generation call the
// oracle pipeline makes: one prompt in, one JSON itinerary document out.
// Implementations must classify upstream failures with ErrUpstreamCredentials,
// ErrUpstreamQuota or ErrGenerationFailed.
type ItineraryGeneratorInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
}

// EmbeddingClientInterface produces the vectors used for place grounding.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// EmbeddingDim matches the places.embedding column.
const EmbeddingDim = 256
