package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"vibego/internal/models/db_models"
)

// JourneyRepository scopes every read and write by the owning user: a journey
// id belonging to someone else behaves exactly like a missing journey.
type JourneyRepository interface {
	Insert(ctx context.Context, journey *db_models.Journey) error
	ListByUserId(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]db_models.Journey, error)
	GetByIdForUser(ctx context.Context, userId, journeyId uuid.UUID) (*db_models.Journey, error)
	DeleteForUser(ctx context.Context, userId, journeyId uuid.UUID) (bool, error)
	UpdateCompletedItems(ctx context.Context, userId, journeyId uuid.UUID, itemIds []string) error
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) Insert(ctx context.Context, journey *db_models.Journey) error {
	return r.db.WithContext(ctx).Create(journey).Error
}

func (r *journeyRepository) ListByUserId(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]db_models.Journey, error) {
	var journeys []db_models.Journey
	err := r.db.WithContext(ctx).
		Select("id", "user_id", "trip_title", "destination", "created_at").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&journeys).Error
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

func (r *journeyRepository) GetByIdForUser(ctx context.Context, userId, journeyId uuid.UUID) (*db_models.Journey, error) {
	var journey db_models.Journey
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", journeyId, userId).
		First(&journey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) DeleteForUser(ctx context.Context, userId, journeyId uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", journeyId, userId).
		Delete(&db_models.Journey{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *journeyRepository) UpdateCompletedItems(ctx context.Context, userId, journeyId uuid.UUID, itemIds []string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Journey{}).
		Where("id = ? AND user_id = ?", journeyId, userId).
		Update("completed_item_ids", pq.StringArray(itemIds)).Error
}
