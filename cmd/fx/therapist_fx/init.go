package therapist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"serenely/internal/repositories"
	"serenely/internal/services"
)

var Module = fx.Provide(
	provideTherapistRepo, provideTherapistService)

func provideTherapistRepo(db *gorm.DB) repositories.TherapistRepository {
	return repositories.NewTherapistRepository(db)
}

func provideTherapistService(therapistRepo repositories.TherapistRepository) services.TherapistServiceInterface {
	return services.NewTherapistService(therapistRepo)
}
