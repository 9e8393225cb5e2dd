package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIOracleClient is the alternative generation backend, selected with
// ORACLE_PROVIDER=openai. JSON mode replaces Gemini's response schema; the
// prompt carries the exact key set and the service validates the document.
type OpenAIOracleClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIOracleClient(apiKey, model string) *OpenAIOracleClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIOracleClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIOracleClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		MaxTokens:   8192,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", ClassifyUpstreamError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrGenerationFailed)
	}

	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("%w: model returned invalid JSON", ErrGenerationFailed)
	}
	return content, nil
}

func (c *OpenAIOracleClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.SmallEmbedding3,
		Dimensions: EmbeddingDim,
	})
	if err != nil {
		return pgvector.Vector{}, ClassifyUpstreamError(err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("%w: empty embedding response", ErrGenerationFailed)
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
