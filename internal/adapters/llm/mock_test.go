package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/pulse-agent/internal/adapters/llm"
	"github.com/socialpulse/pulse-agent/internal/domain"
)

func TestMockLLMGenerateCopy(t *testing.T) {
	client := llm.NewMockLLM()

	reply, err := client.GenerateCopy(context.Background(),
		"Write a post about Go", domain.BrandVoice{Tone: "professional"})
	require.NoError(t, err)
	assert.Contains(t, reply, "professional")
	assert.Contains(t, reply, "Write a post about Go")
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := llm.NewOpenAIClient("", "gpt-4", 0.8)
	require.Error(t, err)

	client, err := llm.NewOpenAIClient("sk-test", "", 0.8)
	require.NoError(t, err)
	assert.NotNil(t, client)
}
