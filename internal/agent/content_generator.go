package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/socialpulse/pulse-agent/internal/config"
	"github.com/socialpulse/pulse-agent/internal/domain"
	"github.com/socialpulse/pulse-agent/internal/observability"
)

const twitterMaxLength = 280

// styleTemplates are the fixed openers keyed by content style. An
// unknown style resolves to an empty opener.
var styleTemplates = map[string]string{
	"conversational": "Let's talk about this...",
	"educational":    "Did you know?",
	"inspirational":  "Here's something that caught our attention...",
	"promotional":    "Check out what we've been working on...",
	"news":           "Breaking: Latest updates",
}

// ContentGeneratorAgent renders brand-consistent content for a target
// platform. By default it works from deterministic templates; when an
// LLMClient is attached the raw copy comes from the model instead.
type ContentGeneratorAgent struct {
	Base

	platform   string
	brandVoice domain.BrandVoice
	llm        domain.LLMClient
}

// ContentOption configures optional collaborators on construction.
type ContentOption func(*ContentGeneratorAgent)

// WithLLM attaches a model client for the generation step.
func WithLLM(client domain.LLMClient) ContentOption {
	return func(a *ContentGeneratorAgent) {
		a.llm = client
	}
}

func NewContentGeneratorAgent(platform string, voice domain.BrandVoice, cfg config.AgentConfig, opts ...ContentOption) *ContentGeneratorAgent {
	a := &ContentGeneratorAgent{
		Base:       NewBase("ContentGenerator", fmt.Sprintf("Generates brand-consistent content for %s", platform), cfg),
		platform:   platform,
		brandVoice: voice,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute generates content for input keys "topic", "tone", "style"
// and "hashtags". Tone and style fall back to the brand voice.
func (a *ContentGeneratorAgent) Execute(ctx context.Context, input map[string]any) (map[string]any, error) {
	topic := getString(input, "topic")
	tone := getString(input, "tone")
	if tone == "" {
		tone = a.brandVoice.Tone
	}
	style := getString(input, "style")
	if style == "" {
		style = a.brandVoice.Style
	}
	hashtags := getStrings(input, "hashtags")

	log := observability.LoggerFromContext(ctx).With("agent", a.Name())
	log.Info("generating content", "topic", topic, "tone", tone, "style", style)

	content, err := a.generate(ctx, topic, tone, style)
	if err != nil {
		return nil, err
	}

	optimized := a.optimizeForPlatform(content)
	if len(hashtags) > 0 {
		optimized = optimized + "\n\n" + strings.Join(hashtags, " ")
	}

	result := domain.ContentResult{
		Platform:  a.platform,
		Content:   optimized,
		Topic:     topic,
		Tone:      tone,
		Style:     style,
		Length:    len(optimized),
		Timestamp: time.Now(),
	}

	out := map[string]any{
		"status":    "success",
		"platform":  result.Platform,
		"content":   result.Content,
		"topic":     result.Topic,
		"tone":      result.Tone,
		"style":     result.Style,
		"length":    result.Length,
		"timestamp": result.Timestamp,
	}

	payload, _ := json.Marshal(out)
	a.Memory().Add(string(domain.RoleAssistant), string(payload), nil)

	return out, nil
}

// Process generates content for a bare topic string.
func (a *ContentGeneratorAgent) Process(ctx context.Context, message string) (string, error) {
	a.Memory().Add(string(domain.RoleUser), message, nil)

	result, err := a.Execute(ctx, map[string]any{"topic": message})
	if err != nil {
		return "", err
	}
	return getString(result, "content"), nil
}

// GenerateCarousel renders one piece per topic in the brand tone,
// with no cross-topic dependency.
func (a *ContentGeneratorAgent) GenerateCarousel(ctx context.Context, topics []string, style string) ([]string, error) {
	if style == "" {
		style = "conversational"
	}

	pieces := make([]string, 0, len(topics))
	for _, topic := range topics {
		content, err := a.generate(ctx, topic, a.brandVoice.Tone, style)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, content)
	}
	return pieces, nil
}

// AdaptVoice merges new brand voice attributes and records the change
// in memory.
func (a *ContentGeneratorAgent) AdaptVoice(voice domain.BrandVoice) {
	if voice.Tone != "" {
		a.brandVoice.Tone = voice.Tone
	}
	if voice.Style != "" {
		a.brandVoice.Style = voice.Style
	}
	if voice.Values != "" {
		a.brandVoice.Values = voice.Values
	}

	// Record the incoming delta, not the merged voice.
	payload, _ := json.Marshal(voice)
	a.Memory().Add(string(domain.RoleSystem), fmt.Sprintf("Brand voice adapted: %s", payload), nil)
}

func (a *ContentGeneratorAgent) generate(ctx context.Context, topic, tone, style string) (string, error) {
	if a.llm != nil {
		prompt := fmt.Sprintf("Write a %s %s post about %s.", tone, style, topic)
		return a.llm.GenerateCopy(ctx, prompt, a.brandVoice)
	}

	template := styleTemplates[style]

	content := fmt.Sprintf(`%s

Topic: %s
Tone: %s
Brand Voice: %s

Generated content for social media engagement.`,
		template, topic, tone, a.brandVoice.Tone)

	return content, nil
}

// optimizeForPlatform applies the single platform-specific transform.
// Unrecognized platforms pass through unchanged.
func (a *ContentGeneratorAgent) optimizeForPlatform(content string) string {
	switch a.platform {
	case "twitter":
		// The 280 limit counts characters, not bytes.
		if runes := []rune(content); len(runes) > twitterMaxLength {
			content = string(runes[:twitterMaxLength])
		}
	case "tiktok":
		content = "Hook: " + content
	case "instagram":
		content = "[Visual: infographic]\n" + content
	}
	return content
}
