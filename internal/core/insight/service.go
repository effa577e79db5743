package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
)

// ErrDisabled is returned when no provider is configured
var ErrDisabled = errors.New("insight is disabled")

// Narrative is the generated text for one summary
type Narrative struct {
	Selection harvest.Selection `json:"selection"`
	Provider  string            `json:"provider"`
	Text      string            `json:"text"`
}

// Service wraps a Provider; a nil provider means disabled
type Service struct {
	provider Provider
}

// NewService creates an OpenAI backed service, or a disabled one when apiKey is empty
func NewService(apiKey, model, baseURL string) *Service {
	if apiKey == "" {
		log.Warn().Msg("⚠️ OPENAI_API_KEY not set, insight endpoint disabled")
		return &Service{}
	}
	provider := NewOpenAIProvider(apiKey, model, baseURL, 0, 0)
	log.Info().Str("provider", provider.GetProviderName()).Str("model", provider.model).Msg("🤖 Insight provider ready")
	return &Service{provider: provider}
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

// Enabled reports whether a provider is configured
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Narrate asks the provider for a short narrative about summary
func (s *Service) Narrate(ctx context.Context, summary *harvest.Summary) (*Narrative, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	text, err := s.provider.GenerateResponse(ctx, systemPrompt, BuildUserPrompt(summary))
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	return &Narrative{
		Selection: summary.Selection,
		Provider:  s.provider.GetProviderName(),
		Text:      strings.TrimSpace(text),
	}, nil
}
