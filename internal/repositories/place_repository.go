package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vibego/internal/models/db_models"
)

type PlaceRepository interface {
	FindNearestByVector(ctx context.Context, destination string, vector pgvector.Vector, limit int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// FindNearestByVector ranks the destination's seeded places by cosine
// distance to the query embedding.
func (r *placeRepository) FindNearestByVector(ctx context.Context, destination string, vector pgvector.Vector, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("destination ILIKE ?", destination).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{vector}},
		}).
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
