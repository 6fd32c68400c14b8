package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/socialpulse/pulse-agent/internal/domain"
)

// AgentConfig holds the per-agent model settings.
type AgentConfig struct {
	Name        string
	Enabled     bool
	ModelName   string
	Temperature float64
	MaxTokens   int
}

// PlatformConfig holds per-platform content limits.
type PlatformConfig struct {
	Name             string
	MaxContentLength int
	HashtagLimit     int
}

// Config is the full startup configuration. Values are read once at
// load time; nothing re-reads the environment afterwards.
type Config struct {
	Platform string

	MaxIterations   int
	TimeoutSeconds  int
	MonitorInterval int // seconds between continuous-monitoring cycles

	BrandVoice domain.BrandVoice

	Agents    map[string]AgentConfig
	Platforms map[string]PlatformConfig

	// API key placeholders, empty unless set in the environment.
	OpenAIAPIKey    string
	TwitterAPIKey   string
	AnthropicAPIKey string

	UseMockLLM bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Load reads .env files if present, then builds the config from the
// environment with hardcoded fallbacks.
func Load() *Config {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Overload(file)
		}
	}

	cfg := &Config{
		Platform: getEnv("PULSE_PLATFORM", "twitter"),

		MaxIterations:   getIntEnv("PULSE_MAX_ITERATIONS", 10),
		TimeoutSeconds:  getIntEnv("PULSE_TIMEOUT_SECONDS", 300),
		MonitorInterval: getIntEnv("PULSE_MONITOR_INTERVAL_SECONDS", 3600),

		BrandVoice: domain.BrandVoice{
			Tone:   getEnv("BRAND_TONE", "professional"),
			Style:  getEnv("BRAND_STYLE", "conversational"),
			Values: getEnv("BRAND_VALUES", "innovation, transparency, excellence"),
		},

		Agents: map[string]AgentConfig{
			"trend_monitor": {
				Name:        "TrendMonitor",
				Enabled:     true,
				ModelName:   getEnv("PULSE_MODEL_NAME", "gpt-4"),
				Temperature: 0.7,
				MaxTokens:   2048,
			},
			"content_generator": {
				Name:        "ContentGenerator",
				Enabled:     true,
				ModelName:   getEnv("PULSE_MODEL_NAME", "gpt-4"),
				Temperature: 0.8, // higher creativity
				MaxTokens:   2048,
			},
			"engagement_tracker": {
				Name:        "EngagementTracker",
				Enabled:     true,
				ModelName:   getEnv("PULSE_MODEL_NAME", "gpt-4"),
				Temperature: 0.3, // lower randomness for metrics
				MaxTokens:   2048,
			},
		},

		Platforms: map[string]PlatformConfig{
			"twitter":   {Name: "twitter", MaxContentLength: 280, HashtagLimit: 10},
			"tiktok":    {Name: "tiktok", MaxContentLength: 2200, HashtagLimit: 10},
			"instagram": {Name: "instagram", MaxContentLength: 2200, HashtagLimit: 10},
		},

		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		TwitterAPIKey:   getEnv("TWITTER_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),

		UseMockLLM: getBoolEnv("PULSE_USE_MOCK_LLM", true),
	}

	return cfg
}

// AgentConfig returns the settings for a named agent.
func (c *Config) AgentConfig(name string) (AgentConfig, bool) {
	ac, ok := c.Agents[name]
	return ac, ok
}

// PlatformConfig returns the settings for a named platform.
func (c *Config) PlatformConfig(name string) (PlatformConfig, bool) {
	pc, ok := c.Platforms[name]
	return pc, ok
}

// Validate performs the temperature sanity check on every agent config.
func (c *Config) Validate() error {
	for name, ac := range c.Agents {
		if ac.Temperature < 0 || ac.Temperature > 2 {
			return fmt.Errorf("invalid temperature %.2f for agent %s", ac.Temperature, name)
		}
	}
	return nil
}
