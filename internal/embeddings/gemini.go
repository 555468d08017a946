package embeddings

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// DefaultModel is the embedding model used unless overridden.
const DefaultModel = "text-embedding-004"

// batchSize bounds how many texts go into one provider call. The provider
// enforces per-request quotas; larger inputs are split into ordered chunks.
const batchSize = 32

// GeminiProvider implements Provider on the Gemini embeddings API.
type GeminiProvider struct {
	model *genai.EmbeddingModel
}

// NewGeminiProvider creates a provider bound to an embedding model.
// An empty modelName selects DefaultModel.
func NewGeminiProvider(client *genai.Client, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiProvider{model: client.EmbeddingModel(modelName)}
}

// Embed embeds a single text block.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch embeds all texts in input order, splitting into chunks of at
// most batchSize per provider call.
func (p *GeminiProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		chunk := texts[start:end]

		batch := p.model.NewBatch()
		for _, text := range chunk {
			batch.AddContent(genai.Text(text))
		}

		resp, err := p.model.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch [%d:%d]: %w", start, end, err)
		}
		if len(resp.Embeddings) != len(chunk) {
			return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(chunk), len(resp.Embeddings))
		}

		for _, embedding := range resp.Embeddings {
			vectors = append(vectors, embedding.Values)
		}
	}

	return vectors, nil
}
