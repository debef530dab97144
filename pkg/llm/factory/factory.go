package factory

import (
	"fmt"

	"brightside-be/pkg/llm"
	"brightside-be/pkg/llm/groq"
	"brightside-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured text-generation backend.
func NewLLMProvider(provider, openaiKey, groqKey string) (llm.LLMProvider, error) {
	switch provider {
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY is empty")
		}
		return openai.NewOpenAIProvider(openaiKey), nil
	case "groq":
		if groqKey == "" {
			return nil, fmt.Errorf("groq provider selected but GROQ_API_KEY is empty")
		}
		return groq.NewGroqProvider(groqKey), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", provider)
	}
}
