package admin_fx

import (
	"go.uber.org/fx"

	"serenely/internal/repositories"
	"serenely/internal/services"
)

var Module = fx.Provide(provideAdminService)

func provideAdminService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, postRepo)
}
