package ollama

import (
	"context"
	"fmt"
	"math"
)

// EmbeddingProvider wraps the client with a single fixed model and enforces
// the vector contract: a unit-length vector of the configured dimension.
// Construct once per process and share; the provider is read-only after
// construction.
type EmbeddingProvider struct {
	client    *Client
	model     string
	dimension int
}

func NewEmbeddingProvider(client *Client, model string, dimension int) *EmbeddingProvider {
	return &EmbeddingProvider{
		client:    client,
		model:     model,
		dimension: dimension,
	}
}

// Embed returns the normalized embedding of text.
func (p *EmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, err := p.client.GetEmbedding(ctx, p.model, text)
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding: %w", err)
	}

	if len(vector) != p.dimension {
		return nil, fmt.Errorf("unexpected embedding dimension: got %d, want %d", len(vector), p.dimension)
	}

	return normalize(vector), nil
}

// normalize scales v to unit length. A zero vector is returned unchanged.
func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}

	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
