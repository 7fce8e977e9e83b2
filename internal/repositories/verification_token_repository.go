package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"serenely/internal/models/db_models"
)

type VerificationTokenRepository interface {
	Insert(ctx context.Context, token *db_models.VerificationToken) error
	FindByToken(ctx context.Context, token string) (*db_models.VerificationToken, error)
	Delete(ctx context.Context, token string) error
}

type verificationTokenRepository struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

func (r *verificationTokenRepository) Insert(ctx context.Context, token *db_models.VerificationToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *verificationTokenRepository) FindByToken(ctx context.Context, token string) (*db_models.VerificationToken, error) {
	var vt db_models.VerificationToken
	err := r.db.WithContext(ctx).First(&vt, "token = ?", token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &vt, nil
}

func (r *verificationTokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&db_models.VerificationToken{}, "token = ?", token).Error
}
