package oracle_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"vibego/internal/api/controllers"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

var Module = fx.Provide(
	ProvideOracleClient,
	ProvideEmbeddingClient,
	ProvideOracleService,
	ProvideOracleController)

// OracleConfig holds configuration for the generation backend.
type OracleConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideOracleClient creates the itinerary generator based on environment variables.
func ProvideOracleClient() (utils.ItineraryGeneratorInterface, error) {
	config := getOracleConfig()

	log.Printf("Initializing %s oracle client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIOracleClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiOracleClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideEmbeddingClient creates the embedding client used for place grounding.
// It follows the same provider switch as the generator.
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getOracleConfig()

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIOracleClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiOracleClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideOracleService wires the generation pipeline. Place grounding is
// opt-in via PLACE_GROUNDING; without it the model names venues freely.
func ProvideOracleService(
	generator utils.ItineraryGeneratorInterface,
	placeService services.PlaceServiceInterface,
) services.OracleServiceInterface {
	if !groundingEnabled() {
		placeService = nil
	}
	return services.NewOracleService(generator, placeService)
}

func ProvideOracleController(oracleService services.OracleServiceInterface) *controllers.OracleController {
	return controllers.NewOracleController(oracleService)
}

func groundingEnabled() bool {
	switch strings.ToLower(os.Getenv("PLACE_GROUNDING")) {
	case "1", "true", "on":
		return true
	default:
		return false
	}
}

func getOracleConfig() OracleConfig {
	provider := getEnvWithDefault("ORACLE_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return OracleConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
