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

func newTracker() *agent.EngagementTrackerAgent {
	return agent.NewEngagementTrackerAgent("twitter", config.AgentConfig{Name: "EngagementTracker", Temperature: 0.3})
}

func trackMetrics(t *testing.T, tracker *agent.EngagementTrackerAgent, metrics map[string]any) map[string]any {
	t.Helper()
	result, err := tracker.Execute(context.Background(), map[string]any{"metrics_data": metrics})
	require.NoError(t, err)
	return result
}

func TestEngagementRateComputation(t *testing.T) {
	result := trackMetrics(t, newTracker(), map[string]any{
		"likes":       450,
		"comments":    120,
		"shares":      85,
		"impressions": 12500,
	})

	metrics, ok := result["metrics"].(domain.EngagementMetrics)
	require.True(t, ok)
	assert.Equal(t, 655.0, metrics.TotalInteractions)
	assert.Equal(t, 0.0524, metrics.EngagementRate)
	assert.Equal(t, 5.24, metrics.EngagementRatePercent)
}

func TestEngagementRateZeroImpressionsFloorsDenominator(t *testing.T) {
	// Zero impressions floor the denominator at 1, so the rate equals
	// the interaction total. Documented behavior, not a bug.
	result := trackMetrics(t, newTracker(), map[string]any{
		"likes":       5,
		"impressions": 0,
	})

	metrics := result["metrics"].(domain.EngagementMetrics)
	assert.Equal(t, 1.0, metrics.Impressions)
	assert.Equal(t, 5.0, metrics.EngagementRate)
}

func TestEngagementMissingFieldsDefaultToZero(t *testing.T) {
	result := trackMetrics(t, newTracker(), map[string]any{})

	metrics := result["metrics"].(domain.EngagementMetrics)
	assert.Zero(t, metrics.Likes)
	assert.Zero(t, metrics.TotalInteractions)
	assert.Zero(t, metrics.EngagementRate)

	analysis := result["analysis"].(domain.EngagementAnalysis)
	assert.Equal(t, domain.StatusNeedsImprovement, analysis.Status)
}

func TestPerformanceStatusLadder(t *testing.T) {
	cases := []struct {
		likes  float64
		status domain.PerformanceStatus
	}{
		{100, domain.StatusExcellent},       // rate 0.10
		{60, domain.StatusGood},             // rate 0.06
		{40, domain.StatusAverage},          // rate 0.04
		{10, domain.StatusNeedsImprovement}, // rate 0.01
	}

	for _, tc := range cases {
		result := trackMetrics(t, newTracker(), map[string]any{
			"likes":       tc.likes,
			"impressions": 1000,
		})
		analysis := result["analysis"].(domain.EngagementAnalysis)
		assert.Equal(t, tc.status, analysis.Status, "likes=%v", tc.likes)
	}
}

func TestAggregatedMetricsAccumulate(t *testing.T) {
	tracker := newTracker()

	trackMetrics(t, tracker, map[string]any{"likes": 10, "impressions": 100})
	trackMetrics(t, tracker, map[string]any{"likes": 5, "impressions": 100})

	aggregated := tracker.AggregatedMetrics()
	assert.Equal(t, 15.0, aggregated["likes"])
	assert.Equal(t, 200.0, aggregated["impressions"])

	tracker.ResetAggregates()
	assert.Empty(t, tracker.AggregatedMetrics())
	// History survives an aggregate reset.
	assert.Len(t, tracker.HistoricalData(0), 2)
}

func TestRecommendations(t *testing.T) {
	// Excellent performance with a healthy breakdown gets exactly the
	// status recommendation.
	result := trackMetrics(t, newTracker(), map[string]any{
		"likes":       55,
		"comments":    30,
		"shares":      15,
		"impressions": 1000,
	})
	recs := result["recommendations"].([]string)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Excellent engagement")

	// Low comment and share shares add the two conditional follow-ups.
	result = trackMetrics(t, newTracker(), map[string]any{
		"likes":       100,
		"impressions": 1000,
	})
	recs = result["recommendations"].([]string)
	require.Len(t, recs, 3)
	assert.Contains(t, recs[1], "discussion-prompting")
	assert.Contains(t, recs[2], "Encourage sharing")
}

func TestHistoricalDataLimit(t *testing.T) {
	tracker := newTracker()
	for i := 0; i < 5; i++ {
		trackMetrics(t, tracker, map[string]any{"likes": i, "impressions": 100})
	}

	assert.Len(t, tracker.HistoricalData(0), 5)
	assert.Len(t, tracker.HistoricalData(2), 2)
}

func TestTrendAnalysis(t *testing.T) {
	tracker := newTracker()

	empty := tracker.TrendAnalysis()
	assert.Equal(t, "no_data", empty["status"])

	for i := 0; i < 9; i++ {
		trackMetrics(t, tracker, map[string]any{"likes": 1, "impressions": 100})
	}

	analysis := tracker.TrendAnalysis()
	assert.Equal(t, "data_available", analysis["status"])
	// Only the last 7 records are inspected.
	assert.Equal(t, 7, analysis["period_analyzed"])
	assert.Contains(t, analysis["metrics_tracked"], "likes")
	assert.Contains(t, analysis["metrics_tracked"], "engagement_rate")
}

func TestTrackerProcess(t *testing.T) {
	tracker := newTracker()

	reply, err := tracker.Process(context.Background(), "how are we doing?")
	require.NoError(t, err)
	assert.Equal(t, "Engagement Analysis Complete: good performance", reply)
}
