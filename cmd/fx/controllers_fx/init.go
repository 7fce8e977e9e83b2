package controllers_fx

import (
	"go.uber.org/fx"

	"serenely/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTherapyController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewTherapistController))
