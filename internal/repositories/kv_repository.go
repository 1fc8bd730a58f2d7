package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
)

// KVRepositoryInterface is the narrow persistence contract everything above
// it depends on: synchronous string get/set/delete, read-your-write within a
// request, no expiry. Get reports absence separately from failure so callers
// can tell "not set yet" from "store broken".
type KVRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

func NewKVRepository(db *gorm.DB) KVRepositoryInterface {
	return &KVRepository{db: db}
}

type KVRepository struct {
	db *gorm.DB
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry db_models.StoreEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key string, value string) error {
	entry := db_models.StoreEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&db_models.StoreEntry{}).Error
}
