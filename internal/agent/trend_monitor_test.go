package agent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/pulse-agent/internal/agent"
	"github.com/socialpulse/pulse-agent/internal/config"
	"github.com/socialpulse/pulse-agent/internal/domain"
)

func newTrendMonitor() *agent.TrendMonitorAgent {
	return agent.NewTrendMonitorAgent("twitter", config.AgentConfig{Name: "TrendMonitor", Temperature: 0.7})
}

func TestTrendMonitorExecute(t *testing.T) {
	ctx := context.Background()
	monitor := newTrendMonitor()

	result, err := monitor.Execute(ctx, map[string]any{"query": "AI trends"})
	require.NoError(t, err)
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "twitter", result["platform"])

	trends, ok := result["trends"].([]domain.Trend)
	require.True(t, ok)
	require.Len(t, trends, 3)
	assert.Equal(t, "#AIRevolution", trends[0].Topic)
	assert.Equal(t, 1, trends[0].Rank)
	assert.Equal(t, domain.MomentumRising, trends[0].Momentum)

	// The data source is a stub: a different query returns the same set.
	again, err := monitor.Execute(ctx, map[string]any{"query": "something else"})
	require.NoError(t, err)
	assert.Equal(t, trends, again["trends"])
}

func TestTrendMonitorAnalysis(t *testing.T) {
	ctx := context.Background()
	monitor := newTrendMonitor()

	result, err := monitor.Execute(ctx, nil)
	require.NoError(t, err)

	analysis, ok := result["analysis"].(domain.TrendAnalysis)
	require.True(t, ok)
	assert.Equal(t, 3, analysis.TotalTrends)
	assert.InDelta(t, 2.0/3.0, analysis.PositiveSentiment, 1e-9)
	assert.InDelta(t, 2.0/3.0, analysis.RisingMomentum, 1e-9)
	assert.InDelta(t, 103333.333333, analysis.AvgVolume, 1e-3)
	assert.Equal(t, "high", analysis.EngagementPotential)
}

func TestTrendMonitorInsights(t *testing.T) {
	ctx := context.Background()
	monitor := newTrendMonitor()

	result, err := monitor.Execute(ctx, nil)
	require.NoError(t, err)

	insights, ok := result["insights"].([]string)
	require.True(t, ok)

	// All three threshold rules trigger on the stub data set.
	require.Len(t, insights, 3)
	assert.Contains(t, insights[0], "positive sentiment")
	assert.Contains(t, insights[1], "rising trends")
	assert.Contains(t, insights[2], "engagement volume")
}

func TestTrendMonitorCachedTrends(t *testing.T) {
	ctx := context.Background()
	monitor := newTrendMonitor()

	assert.Empty(t, monitor.CachedTrends())

	_, err := monitor.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, monitor.CachedTrends(), 3)
}

func TestTrendMonitorProcess(t *testing.T) {
	ctx := context.Background()
	monitor := newTrendMonitor()

	reply, err := monitor.Process(ctx, "AI trends")
	require.NoError(t, err)
	assert.Equal(t, `Trend Analysis for "AI trends": 3 trends identified`, reply)

	// Process records the user message, Execute the result.
	assert.Equal(t, 2, monitor.Memory().Len())
	assert.Equal(t, "user", monitor.Memory().Entries(0)[0].Role)
}

func TestTrendMonitorState(t *testing.T) {
	monitor := newTrendMonitor()

	state := monitor.State()
	assert.Equal(t, "TrendMonitor", state.Name)
	assert.Contains(t, state.Description, "twitter")
	assert.Equal(t, 0, state.MemorySize)
	assert.False(t, state.CreatedAt.IsZero())
}
