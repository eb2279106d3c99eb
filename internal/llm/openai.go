package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/evanfang0054/ai-commit-wizard/internal/config"
)

// OpenAIProvider implements Provider for any OpenAI-compatible endpoint
type OpenAIProvider struct {
	cfg config.OpenAIConfig
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(cfg config.OpenAIConfig) *OpenAIProvider {
	return &OpenAIProvider{cfg: cfg}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// GetConfig returns the model configuration
func (p *OpenAIProvider) GetConfig() config.OpenAIConfig {
	return p.cfg
}

// CreateChatModel creates an Eino ChatModel for the configured endpoint
func (p *OpenAIProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	var zero float32
	cfg := &openai.ChatModelConfig{
		APIKey:           p.cfg.APIKey,
		Model:            p.cfg.Model,
		BaseURL:          p.cfg.BaseURL,
		PresencePenalty:  &zero,
		FrequencyPenalty: &zero,
	}

	cm, err := openai.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return cm, nil
}
