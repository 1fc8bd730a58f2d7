package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

type DestinationRepositoryInterface interface {
	Create(ctx context.Context, destination *db_models.Destination) error
	GetNearest(ctx context.Context, embedding pgvector.Vector, limit int) ([]db_models.Destination, error)
	GetAll(ctx context.Context, limit int) ([]db_models.Destination, error)
}

func NewDestinationRepository(db *gorm.DB) DestinationRepositoryInterface {
	return &DestinationRepository{db: db}
}

type DestinationRepository struct {
	db *gorm.DB
}

func (r *DestinationRepository) Create(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

// GetNearest orders by L2 distance between the stored embedding and the
// query embedding.
func (r *DestinationRepository) GetNearest(ctx context.Context, embedding pgvector.Vector, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{embedding}},
		}).
		Limit(limit).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) GetAll(ctx context.Context, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).Order("rating DESC").Limit(limit).Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
