package services

import (
	"context"
	"fmt"
	"strings"

	"vibego/internal/models/request_models"
	"vibego/internal/repositories"
	"vibego/pkg/utils"
)

// PlaceCandidate is one verified venue offered to the model as part of a
// closed candidate list.
type PlaceCandidate struct {
	Name        string
	Category    string
	Description string
}

type PlaceServiceInterface interface {
	FindCandidates(ctx context.Context, profile *request_models.SoulProfile) ([]PlaceCandidate, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	embedder  utils.EmbeddingClientInterface
	limit     int
}

func NewPlaceService(placeRepo repositories.PlaceRepository, embedder utils.EmbeddingClientInterface) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
		embedder:  embedder,
		limit:     20,
	}
}

// FindCandidates embeds "destination + interest tags" and pulls the nearest
// seeded places. An empty result is not an error; the caller falls back to
// ungrounded generation.
func (s *PlaceService) FindCandidates(ctx context.Context, profile *request_models.SoulProfile) ([]PlaceCandidate, error) {
	query := profile.Practical.Destination
	if len(profile.Destinations) > 0 {
		query = fmt.Sprintf("%s %s", query, strings.Join(profile.Destinations, " "))
	}

	vector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	places, err := s.placeRepo.FindNearestByVector(ctx, profile.Practical.Destination, vector, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	candidates := make([]PlaceCandidate, 0, len(places))
	for _, place := range places {
		candidates = append(candidates, PlaceCandidate{
			Name:        place.Name,
			Category:    place.Category,
			Description: place.Description,
		})
	}
	return candidates, nil
}
