package factory

import (
	"fmt"

	"sales-assistant-be/pkg/llm"
	"sales-assistant-be/pkg/llm/openai"
)

// NewLLMProvider builds a chat provider from config. A missing or obviously
// invalid API key is reported as an error so the caller can run the composer
// in fallback-only mode for the process lifetime.
func NewLLMProvider(apiKey, modelName string) (llm.LLMProvider, error) {
	if apiKey == "" || apiKey == "your_openai_api_key_here" || len(apiKey) < 20 {
		return nil, fmt.Errorf("openai api key not configured")
	}
	return openai.NewOpenAIProvider(apiKey, modelName), nil
}
