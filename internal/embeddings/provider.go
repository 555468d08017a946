// Package embeddings wraps the external sentence-embedding provider behind a
// small order-preserving batch interface.
package embeddings

import "context"

// Provider turns text blocks into fixed-length numeric vectors.
// Implementations must preserve input order: vector i corresponds to text i.
type Provider interface {
	// EmbedBatch embeds all texts, chunking internally to respect provider
	// batch quotas. The returned slice has one vector per input text.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Embed embeds a single text block.
	Embed(ctx context.Context, text string) ([]float32, error)
}
