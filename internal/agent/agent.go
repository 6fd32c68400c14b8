package agent

import (
	"context"
	"time"

	"github.com/socialpulse/pulse-agent/internal/config"
)

// Agent is the contract every workflow agent implements. Execute takes
// and returns generic maps so agents stay permissive about input
// shape: missing keys default to zero values instead of failing.
type Agent interface {
	Name() string
	Description() string

	// Execute runs the agent's primary unit of work.
	Execute(ctx context.Context, input map[string]any) (map[string]any, error)

	// Process is a single-message convenience wrapper over Execute.
	Process(ctx context.Context, message string) (string, error)

	Memory() *Memory
	State() State
}

// State is a point-in-time snapshot of an agent.
type State struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
	MemorySize  int                `json:"memory_size"`
	Config      config.AgentConfig `json:"config"`
}

// Base carries the identity and memory every agent shares. Concrete
// agents embed it; there is no dispatch through Base itself.
type Base struct {
	name        string
	description string
	cfg         config.AgentConfig
	memory      *Memory
	createdAt   time.Time
}

func NewBase(name, description string, cfg config.AgentConfig) Base {
	return Base{
		name:        name,
		description: description,
		cfg:         cfg,
		memory:      NewMemory(),
		createdAt:   time.Now(),
	}
}

func (b *Base) Name() string        { return b.name }
func (b *Base) Description() string { return b.description }
func (b *Base) Memory() *Memory     { return b.memory }

func (b *Base) State() State {
	return State{
		Name:        b.name,
		Description: b.description,
		CreatedAt:   b.createdAt,
		MemorySize:  b.memory.Len(),
		Config:      b.cfg,
	}
}

// --- permissive input helpers --- //

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getStrings(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}

	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func getNumber(m map[string]any, key string, def float64) float64 {
	if m == nil {
		return def
	}

	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}
