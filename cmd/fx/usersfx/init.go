package usersfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lifediary/internal/repositories"
	"lifediary/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideUserService(
	userRepo repositories.UserRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, timelineRepo)
}
