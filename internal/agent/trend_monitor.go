package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/socialpulse/pulse-agent/internal/config"
	"github.com/socialpulse/pulse-agent/internal/domain"
	"github.com/socialpulse/pulse-agent/internal/observability"
)

// TrendMonitorAgent reports trending topics for a platform and derives
// aggregate statistics from them. The collection step is a static stub
// standing in for a platform API integration.
type TrendMonitorAgent struct {
	Base

	platform string

	mu          sync.RWMutex
	trendsCache []domain.Trend
}

func NewTrendMonitorAgent(platform string, cfg config.AgentConfig) *TrendMonitorAgent {
	return &TrendMonitorAgent{
		Base:     NewBase("TrendMonitor", fmt.Sprintf("Monitors and analyzes trends on %s", platform), cfg),
		platform: platform,
	}
}

// Execute collects trends for input keys "query" and "time_range",
// then analyzes them. Both keys are accepted but do not change the
// stubbed data set.
func (a *TrendMonitorAgent) Execute(ctx context.Context, input map[string]any) (map[string]any, error) {
	query := getString(input, "query")
	timeRange := getString(input, "time_range")
	if timeRange == "" {
		timeRange = "24h"
	}

	log := observability.LoggerFromContext(ctx).With("agent", a.Name())
	log.Info("collecting trends", "query", query, "time_range", timeRange)

	trends := a.collectTrends(query, timeRange)
	analysis := analyzeTrends(trends)
	insights := generateInsights(analysis)

	result := map[string]any{
		"status":    "success",
		"platform":  a.platform,
		"trends":    trends,
		"analysis":  analysis,
		"insights":  insights,
		"timestamp": time.Now(),
	}

	payload, _ := json.Marshal(result)
	a.Memory().Add(string(domain.RoleAssistant), string(payload), nil)

	return result, nil
}

// Process answers a free-form trend query with a one-line summary.
func (a *TrendMonitorAgent) Process(ctx context.Context, message string) (string, error) {
	a.Memory().Add(string(domain.RoleUser), message, nil)

	result, err := a.Execute(ctx, map[string]any{"query": message})
	if err != nil {
		return "", err
	}

	trends, _ := result["trends"].([]domain.Trend)
	return fmt.Sprintf("Trend Analysis for %q: %d trends identified", message, len(trends)), nil
}

// CachedTrends returns the trends from the last collection without
// triggering a new one.
func (a *TrendMonitorAgent) CachedTrends() []domain.Trend {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Trend, len(a.trendsCache))
	copy(out, a.trendsCache)
	return out
}

// collectTrends is a stub over the platform trend API: it always
// returns the same three records regardless of query or time range.
func (a *TrendMonitorAgent) collectTrends(query, timeRange string) []domain.Trend {
	trends := []domain.Trend{
		{Rank: 1, Topic: "#AIRevolution", Volume: 125000, Sentiment: domain.SentimentPositive, Momentum: domain.MomentumRising},
		{Rank: 2, Topic: "#GenerativeAI", Volume: 98000, Sentiment: domain.SentimentMixed, Momentum: domain.MomentumStable},
		{Rank: 3, Topic: "#TechInnovation", Volume: 87000, Sentiment: domain.SentimentPositive, Momentum: domain.MomentumRising},
	}

	a.mu.Lock()
	a.trendsCache = trends
	a.mu.Unlock()

	return trends
}

func analyzeTrends(trends []domain.Trend) domain.TrendAnalysis {
	if len(trends) == 0 {
		return domain.TrendAnalysis{EngagementPotential: "medium"}
	}

	var positive, rising, volume int
	for _, t := range trends {
		if t.Sentiment == domain.SentimentPositive {
			positive++
		}
		if t.Momentum == domain.MomentumRising {
			rising++
		}
		volume += t.Volume
	}

	potential := "medium"
	if float64(rising) > float64(len(trends))*0.5 {
		potential = "high"
	}

	return domain.TrendAnalysis{
		TotalTrends:         len(trends),
		PositiveSentiment:   float64(positive) / float64(len(trends)),
		RisingMomentum:      float64(rising) / float64(len(trends)),
		AvgVolume:           float64(volume) / float64(len(trends)),
		EngagementPotential: potential,
	}
}

func generateInsights(analysis domain.TrendAnalysis) []string {
	var insights []string

	if analysis.PositiveSentiment > 0.6 {
		insights = append(insights, "Strong positive sentiment detected - optimal for brand promotion")
	}
	if analysis.RisingMomentum > 0.5 {
		insights = append(insights, "Multiple rising trends identified - recommend content alignment")
	}
	if analysis.AvgVolume > 90000 {
		insights = append(insights, "High engagement volume detected - prioritize relevant content")
	}

	if len(insights) == 0 {
		insights = append(insights, "Monitor trends closely for emerging opportunities")
	}

	return insights
}
