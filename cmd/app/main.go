package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibego/cmd/fx/account_fx"
	"vibego/cmd/fx/db_fx"
	"vibego/cmd/fx/geocode_fx"
	"vibego/cmd/fx/journey_fx"
	"vibego/cmd/fx/memcache_fx"
	"vibego/cmd/fx/oracle_fx"
	"vibego/cmd/fx/places_fx"
	"vibego/internal/api/controllers"
	"vibego/internal/infra"
	"vibego/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		oracle_fx.Module,
		places_fx.Module,
		geocode_fx.Module,
		journey_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(RegisterDatabaseShutdown),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func RegisterDatabaseShutdown(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	oracleController *controllers.OracleController,
	mapController *controllers.MapController,
	accountController *controllers.AccountController,
	journeyController *controllers.JourneyController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, oracleController, mapController, accountController, journeyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	oracleController *controllers.OracleController,
	mapController *controllers.MapController,
	accountController *controllers.AccountController,
	journeyController *controllers.JourneyController) {

	apiGroup := r.Group("/api")
	apiGroup.POST("/generate-itinerary", oracleController.GenerateItinerary)
	apiGroup.POST("/map-view", mapController.BuildMapView)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/signup", accountController.SignUp)
	accountsGroup.POST("/login", accountController.Login)

	journeysGroup := r.Group("/journeys")
	journeysGroup.Use(middleware.JWTAuthMiddleware())
	journeysGroup.POST("", journeyController.SaveJourney)
	journeysGroup.GET("", journeyController.GetJourneysByUserId)
	journeysGroup.GET("/:journeyId", journeyController.GetJourneyById)
	journeysGroup.DELETE("/:journeyId", journeyController.DeleteJourney)
	journeysGroup.POST("/:journeyId/progress", journeyController.ToggleItemComplete)
}
