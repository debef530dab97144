package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brightside-be/pkg/llm"
)

const baseURL = "https://api.groq.com/openai/v1"

const (
	primaryModel  = "llama3-8b-8192"     // Fast and efficient
	fallbackModel = "mixtral-8x7b-32768" // More powerful but can be slower
)

// GroqProvider talks to the Groq API through its OpenAI-compatible endpoint,
// falling back to a second model when the primary fails.
type GroqProvider struct {
	APIKey string
	Client *http.Client
}

var _ llm.LLMProvider = &GroqProvider{}

func NewGroqProvider(apiKey string) *GroqProvider {
	return &GroqProvider{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (p *GroqProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{Temperature: 0.7, MaxTokens: 800}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		messages[i] = chatMessage{Role: msg.Role, Content: msg.Content}
	}

	if options.Model != "" {
		return p.complete(ctx, chatRequest{
			Model:       options.Model,
			Messages:    messages,
			Temperature: options.Temperature,
			MaxTokens:   options.MaxTokens,
			TopP:        0.9,
		})
	}

	reply, err := p.complete(ctx, chatRequest{
		Model:       primaryModel,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
		TopP:        0.9,
	})
	if err == nil {
		return reply, nil
	}

	reply, fallbackErr := p.complete(ctx, chatRequest{
		Model:       fallbackModel,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   500,
		TopP:        0.85,
	})
	if fallbackErr != nil {
		return "", fmt.Errorf("all available groq models failed: %w", err)
	}
	return reply, nil
}

func (p *GroqProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (p *GroqProvider) complete(ctx context.Context, payload chatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("groq error (%s): %s", parsed.Error.Type, parsed.Error.Message)
		}
		return "", fmt.Errorf("groq error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
