package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"desawisata/internal/models/db_models"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error)
	Update(ctx context.Context, destination *db_models.Destination) error

	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(destination).Error; err != nil {
		return uuid.Nil, err
	}
	return destination.ID, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *db_models.Destination) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(destination)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to update destination: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		First(&destination, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Find(&destinations).Error

	if err != nil {
		return nil, err
	}
	return destinations, nil
}
