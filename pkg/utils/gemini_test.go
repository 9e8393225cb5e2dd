package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUpstreamError(t *testing.T) {
	cases := []struct {
		raw  string
		want error
	}{
		{"API key not valid. Please pass a valid API key.", ErrUpstreamCredentials},
		{"rpc error: code = Unauthenticated", ErrUpstreamCredentials},
		{"googleapi: Error 429: Quota exceeded", ErrUpstreamQuota},
		{"RESOURCE_EXHAUSTED: rate limit reached", ErrUpstreamQuota},
		{"context deadline exceeded", ErrGenerationFailed},
	}

	for _, tc := range cases {
		got := ClassifyUpstreamError(errors.New(tc.raw))
		assert.ErrorIs(t, got, tc.want, tc.raw)
	}
}

func TestCleanJSONResponse(t *testing.T) {
	fenced := "```json\n{\"day\": 1}\n```"
	assert.Equal(t, `{"day": 1}`, CleanJSONResponse(fenced))
	assert.Equal(t, `{"day": 1}`, CleanJSONResponse(`{"day": 1}`))
	assert.Equal(t, "", CleanJSONResponse("```json\n```"))
}

func TestHashEmbeddingDeterministicUnitVector(t *testing.T) {
	a := HashEmbedding("quiet temples and tea houses in Kyoto")
	b := HashEmbedding("quiet temples and tea houses in Kyoto")
	assert.Equal(t, a, b)

	var norm float64
	for _, v := range a.Slice() {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)

	assert.Len(t, HashEmbedding("").Slice(), EmbeddingDim)
}
