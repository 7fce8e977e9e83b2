package services

import (
	"context"

	"serenely/internal/models/response_models"
	"serenely/internal/repositories"
	"serenely/pkg/utils"
)

type TherapistServiceInterface interface {
	ListTherapists(ctx context.Context) ([]response_models.TherapistResponse, error)
}

type TherapistService struct {
	therapistRepo repositories.TherapistRepository
}

func NewTherapistService(therapistRepo repositories.TherapistRepository) TherapistServiceInterface {
	return &TherapistService{therapistRepo: therapistRepo}
}

func (t *TherapistService) ListTherapists(ctx context.Context) ([]response_models.TherapistResponse, error) {
	therapists, err := t.therapistRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TherapistResponse, 0, len(therapists))
	for _, th := range therapists {
		out = append(out, response_models.TherapistResponse{
			ID:      th.ID.String(),
			Name:    th.Name,
			Address: th.Address,
			Email:   th.Email,
		})
	}
	return out, nil
}
