// Package narrative writes coaching notes with a Gemini model
package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel    = "gemini-2.0-flash"
	defaultTimeout  = 20 * time.Second
	maxOutputTokens = 300
)

// ErrEmptyResponse is returned when the model answers without text
var ErrEmptyResponse = errors.New("narrative model returned no text")

// GenAINarrator generates narratives through the Gemini API
type GenAINarrator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGenAINarrator creates a narrator. An empty model or timeout selects
// the defaults.
func NewGenAINarrator(ctx context.Context, apiKey, model string, timeout time.Duration, logger *zap.Logger) (*GenAINarrator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAINarrator{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger.Named("narrative"),
	}, nil
}

// Narrate sends prompt to the model and returns its text
func (n *GenAINarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	start := time.Now()
	resp, err := n.client.Models.GenerateContent(ctx,
		n.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.7),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	n.logger.Debug("narrative generated",
		zap.String("model", n.model),
		zap.Duration("latency", time.Since(start)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

// Name returns the narrator name
func (n *GenAINarrator) Name() string {
	return fmt.Sprintf("genai:%s", n.model)
}
