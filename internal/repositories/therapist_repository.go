package repositories

import (
	"context"

	"gorm.io/gorm"

	"serenely/internal/models/db_models"
)

type TherapistRepository interface {
	ListAll(ctx context.Context) ([]db_models.Therapist, error)
}

type therapistRepository struct {
	db *gorm.DB
}

func NewTherapistRepository(db *gorm.DB) TherapistRepository {
	return &therapistRepository{db: db}
}

func (r *therapistRepository) ListAll(ctx context.Context) ([]db_models.Therapist, error) {
	var therapists []db_models.Therapist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&therapists).Error
	return therapists, err
}
