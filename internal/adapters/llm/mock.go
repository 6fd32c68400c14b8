package llm

import (
	"context"
	"fmt"

	"github.com/socialpulse/pulse-agent/internal/domain"
)

// MockLLM returns canned copy without touching any model API. It is
// the default client in local runs and in tests.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) GenerateCopy(ctx context.Context, prompt string, voice domain.BrandVoice) (string, error) {
	return fmt.Sprintf("Draft copy in a %s voice for: %s", voice.Tone, prompt), nil
}
