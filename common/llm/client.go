// Package llm wraps the OpenAI embeddings API used by the knowledge base.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Dimensions must match the vector(1536) column of knowledge_chunks.
const Dimensions = 1536

// maxBatch is the number of inputs sent per embeddings request.
const maxBatch = 96

type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
	Model() string
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

type client struct {
	openai openai.Client
	model  string
}

func New(cfg Config) (Embedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(2),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = openai.EmbeddingModelTextEmbedding3Small
	}

	return &client{
		openai: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Embed returns one vector per input, in input order.
func (c *client) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	out := make([][]float32, 0, len(inputs))

	for start := 0; start < len(inputs); start += maxBatch {
		end := min(start+maxBatch, len(inputs))
		batch := inputs[start:end]

		began := time.Now()
		resp, err := c.openai.Embeddings.New(ctx, openai.EmbeddingNewParams{
			Model:      c.model,
			Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: batch},
			Dimensions: openai.Int(Dimensions),
		})
		if err != nil {
			return nil, fmt.Errorf("openai embeddings: %w", err)
		}

		slog.DebugContext(ctx, "embeddings created",
			"model", c.model,
			"inputs", len(batch),
			"duration_ms", time.Since(began).Milliseconds(),
			"prompt_tokens", resp.Usage.PromptTokens)

		if len(resp.Data) != len(batch) {
			return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(resp.Data), len(batch))
		}

		vectors := make([][]float32, len(batch))
		for _, d := range resp.Data {
			if d.Index < 0 || int(d.Index) >= len(batch) {
				return nil, fmt.Errorf("openai embeddings: index %d out of range", d.Index)
			}
			v := make([]float32, len(d.Embedding))
			for i, f := range d.Embedding {
				v[i] = float32(f)
			}
			vectors[d.Index] = v
		}
		out = append(out, vectors...)
	}

	return out, nil
}

func (c *client) Model() string {
	return c.model
}

// IsRetryable reports whether err is worth retrying: rate limits, server
// errors and network failures are; cancellations and 4xx are not.
func IsRetryable(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			slog.WarnContext(ctx, "embeddings rate limited", "status_code", apiErr.StatusCode)
			return true
		case apiErr.StatusCode >= 500:
			slog.WarnContext(ctx, "embeddings server error", "status_code", apiErr.StatusCode)
			return true
		default:
			return false
		}
	}

	return true
}
