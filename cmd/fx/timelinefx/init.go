package timelinefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lifediary/internal/repositories"
	"lifediary/internal/services"
)

var Module = fx.Provide(
	provideTimelineRepo, provideTimelineService)

func provideTimelineRepo(db *gorm.DB) repositories.TimelineRepositoryInterface {
	return repositories.NewTimelineRepository(db)
}

func provideTimelineService(
	timelineRepo repositories.TimelineRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) services.TimelineServiceInterface {
	return services.NewTimelineService(timelineRepo, userRepo)
}
