package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"serenely/internal/repositories"
	"serenely/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenRepo(db *gorm.DB) repositories.VerificationTokenRepository {
	return repositories.NewVerificationTokenRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, tokenRepo repositories.VerificationTokenRepository, mailService services.IMailService) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, tokenRepo, mailService)
}
