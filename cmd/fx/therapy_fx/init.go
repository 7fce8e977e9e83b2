package therapy_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"serenely/internal/repositories"
	"serenely/internal/services"
	"serenely/pkg/ai"
)

var Module = fx.Provide(
	provideTherapyRepo, provideTherapyService)

func provideTherapyRepo(db *gorm.DB) repositories.TherapyRepository {
	return repositories.NewTherapyRepository(db)
}

func provideTherapyService(therapyRepo repositories.TherapyRepository, aiClient ai.CompletionClientInterface) services.TherapyServiceInterface {
	return services.NewTherapyService(therapyRepo, aiClient)
}
