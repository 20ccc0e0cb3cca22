package entriesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lifediary/internal/repositories"
	"lifediary/internal/services"
)

var Module = fx.Provide(
	provideEntryRepo, provideEntryService)

func provideEntryRepo(db *gorm.DB) repositories.EntryRepositoryInterface {
	return repositories.NewEntryRepository(db)
}

func provideEntryService(
	entryRepo repositories.EntryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) services.EntryServiceInterface {
	return services.NewEntryService(entryRepo, userRepo)
}
