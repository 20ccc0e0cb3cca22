package pollsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lifediary/internal/repositories"
	"lifediary/internal/services"
)

var Module = fx.Provide(
	providePollRepo, providePollService)

func providePollRepo(db *gorm.DB) repositories.PollRepositoryInterface {
	return repositories.NewPollRepository(db)
}

func providePollService(
	pollRepo repositories.PollRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
) services.PollServiceInterface {
	return services.NewPollService(pollRepo, userRepo, timelineRepo)
}
