package controllersfx

import (
	"go.uber.org/fx"
	"lifediary/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDirectoryController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewPollController),
	fx.Provide(controllers.NewTimelineController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewEntryController))
