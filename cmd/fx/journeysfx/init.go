package journeysfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lifediary/internal/repositories"
	"lifediary/internal/services"
)

var Module = fx.Provide(
	provideJourneyRepo, provideJourneyService)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepositoryInterface {
	return repositories.NewJourneyRepository(db)
}

func provideJourneyService(
	journeyRepo repositories.JourneyRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) services.JourneyServiceInterface {
	return services.NewJourneyService(journeyRepo, userRepo)
}
