package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"desawisata/internal/api/controllers"
	"desawisata/internal/repositories"
	"desawisata/internal/services"
	mem "desawisata/pkg/memcache"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationCache, provideDestinationService, provideDestinationController)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationCache() mem.DestinationCache {
	return mem.NewDestinations()
}

func provideDestinationService(repo repositories.DestinationRepository, cache mem.DestinationCache) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, cache)
}

func provideDestinationController(service services.DestinationServiceInterface) *controllers.DestinationController {
	return controllers.NewDestinationController(service)
}
