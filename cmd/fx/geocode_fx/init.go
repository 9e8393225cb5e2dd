package geocode_fx

import (
	"go.uber.org/fx"

	"vibego/internal/api/controllers"
	"vibego/internal/services"
	mem "vibego/pkg/memcache"
)

var Module = fx.Provide(provideGeocoder, provideGeocodeService, provideMapController)

func provideGeocoder(cache mem.GeocodeCache) services.GeocoderInterface {
	return services.NewGoogleGeocodeClient(cache)
}

func provideGeocodeService(geocoder services.GeocoderInterface) services.GeocodeServiceInterface {
	return services.NewGeocodeService(geocoder)
}

func provideMapController(geocodeService services.GeocodeServiceInterface) *controllers.MapController {
	return controllers.NewMapController(geocodeService)
}
