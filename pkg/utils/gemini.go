package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiOracleClient generates itineraries with Gemini's JSON response mode
// plus a response schema, so the model cannot return prose.
type GeminiOracleClient struct {
	client *genai.Client
	model  string
}

func NewGeminiOracleClient(apiKey, model string) (*GeminiOracleClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiOracleClient{client: client, model: model}, nil
}

// itinerarySchema constrains generation to the canonical itinerary document.
func itinerarySchema() *genai.Schema {
	placeItem := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            {Type: genai.TypeString},
			"searchable_name": {Type: genai.TypeString, Description: "Geocoder-friendly name, e.g. 'Senso-ji Temple, Asakusa, Tokyo'"},
			"description":     {Type: genai.TypeString},
			"emoji":           {Type: genai.TypeString, Description: "A single emoji for the place"},
		},
		Required: []string{"name", "searchable_name", "description", "emoji"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"trip_title":  {Type: genai.TypeString, Description: "A mystical and inspiring title for the journey"},
			"destination": {Type: genai.TypeString},
			"soul_quote":  {Type: genai.TypeString},
			"daily_itinerary": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":         {Type: genai.TypeInteger},
						"theme":       {Type: genai.TypeString, Description: "A creative theme for the day"},
						"activities":  {Type: genai.TypeArray, Items: placeItem},
						"restaurants": {Type: genai.TypeArray, Items: placeItem},
					},
					Required: []string{"day", "theme", "activities", "restaurants"},
				},
			},
		},
		Required: []string{"trip_title", "destination", "daily_itinerary"},
	}
}

func (c *GeminiOracleClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = itinerarySchema()
	m.SetTemperature(0.4)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(8192)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", ClassifyUpstreamError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrGenerationFailed)
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: model returned invalid JSON", ErrGenerationFailed)
	}
	return content, nil
}

// GetEmbedding is the free-tier fallback: a deterministic hash projection.
// Good enough to rank seeded places by lexical overlap; swap the provider to
// openai for real embeddings.
func (c *GeminiOracleClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return HashEmbedding(text), nil
}

// ClassifyUpstreamError folds generation-API failures into the service error
// taxonomy so quota problems read differently from bad credentials.
func ClassifyUpstreamError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key") ||
		strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission"):
		return fmt.Errorf("%w: %v", ErrUpstreamCredentials, err)
	case strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return fmt.Errorf("%w: %v", ErrUpstreamQuota, err)
	default:
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
}

// CleanJSONResponse strips markdown fences some models wrap around JSON.
func CleanJSONResponse(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// HashEmbedding maps text onto a unit vector via token hashing.
func HashEmbedding(text string) pgvector.Vector {
	dims := make([]float32, EmbeddingDim)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		dims[h.Sum32()%EmbeddingDim] += 1
	}

	var norm float64
	for _, v := range dims {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range dims {
			dims[i] = float32(float64(dims[i]) / norm)
		}
	}
	return pgvector.NewVector(dims)
}
