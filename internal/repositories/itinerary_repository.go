package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type SavedItineraryRepositoryInterface interface {
	Create(ctx context.Context, itinerary *db_models.SavedItinerary) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*db_models.SavedItinerary, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

func NewSavedItineraryRepository(db *gorm.DB) SavedItineraryRepositoryInterface {
	return &SavedItineraryRepository{db: db}
}

type SavedItineraryRepository struct {
	db *gorm.DB
}

func (r *SavedItineraryRepository) Create(ctx context.Context, itinerary *db_models.SavedItinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *SavedItineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error) {
	var itineraries []db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *SavedItineraryRepository) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*db_models.SavedItinerary, error) {
	var itinerary db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *SavedItineraryRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.SavedItinerary{}).Error
}
