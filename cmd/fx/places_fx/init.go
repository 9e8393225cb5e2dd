package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibego/internal/repositories"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

var Module = fx.Provide(providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, embedder utils.EmbeddingClientInterface) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, embedder)
}
