package gemini

import (
	"context"
	"fmt"
	"foodloop/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"strings"
)

type (
	// Client generates text from a single prompt.
	Client interface {
		GenerateContent(ctx context.Context, prompt string) (string, error)
		Close() error
	}

	geminiClient struct {
		client *genai.Client
		model  *genai.GenerativeModel
	}

	unavailableClient struct{}
)

func NewGeminiClient(ctx context.Context, apiKey, model string) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{client: client, model: client.GenerativeModel(model)}, nil
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domain.ErrEmptyGeneratedReply
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", domain.ErrEmptyGeneratedReply
	}
	return sb.String(), nil
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}

// NewUnavailableClient is used when no API key is configured. Every call
// fails with ErrGeneratorDisabled.
func NewUnavailableClient() Client {
	return unavailableClient{}
}

func (unavailableClient) GenerateContent(context.Context, string) (string, error) {
	return "", domain.ErrGeneratorDisabled
}

func (unavailableClient) Close() error { return nil }
