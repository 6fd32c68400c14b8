package agent

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// MemoryEntry is one record in an agent's memory log. Entries are
// immutable once appended.
type MemoryEntry struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
}

// idNode generates unique IDs for memory entries.
var idNode = func() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}()

// Memory is an append-only, order-preserving message log. It grows
// without bound; eviction is a caller concern, not ours.
type Memory struct {
	mu      sync.RWMutex
	entries []MemoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// Add appends an entry. Insertion order is retrieval order.
func (m *Memory) Add(role, content string, metadata map[string]any) {
	if metadata == nil {
		metadata = map[string]any{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, MemoryEntry{
		ID:        idNode.Generate().Int64(),
		Timestamp: m.now(),
		Role:      role,
		Content:   content,
		Metadata:  metadata,
	})
}

// Entries returns the log in insertion order. A positive limit returns
// only the last limit entries.
func (m *Memory) Entries(limit int) []MemoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := m.entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	out := make([]MemoryEntry, len(entries))
	copy(out, entries)
	return out
}

// Clear drops every entry.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}

// Len reports the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
