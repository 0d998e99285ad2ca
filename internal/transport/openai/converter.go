package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const converterPrompt = "Convert the user's question into a single plain " +
	"arithmetic expression using numbers, + - * / ** parentheses and the " +
	"functions sqrt() and cbrt(). Respond with the expression only, no " +
	"explanation. If the question contains no arithmetic, respond with an " +
	"empty string."

// Converter turns natural-language arithmetic questions into expressions
// via chat completions. It is the primary conversion strategy; the
// deterministic rewrite in calc is the fallback.
type Converter struct {
	client *openai.Client
	model  string
}

// NewConverter creates a chat-based expression converter.
func NewConverter(apiKey, baseURL, model string) *Converter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Converter{client: openai.NewClientWithConfig(cfg), model: model}
}

// Convert implements calc.Converter.
func (c *Converter) Convert(ctx context.Context, query string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: converterPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
