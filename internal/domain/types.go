package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Sentiment classifies the overall mood around a trend.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentMixed    Sentiment = "mixed"
	SentimentNegative Sentiment = "negative"
)

// Momentum describes where a trend's volume is heading.
type Momentum string

const (
	MomentumRising  Momentum = "rising"
	MomentumStable  Momentum = "stable"
	MomentumFalling Momentum = "falling"
)

// Trend is a single trending topic as reported by the monitor agent.
type Trend struct {
	Rank      int       `json:"rank"`
	Topic     string    `json:"topic"`
	Volume    int       `json:"volume"`
	Sentiment Sentiment `json:"sentiment"`
	Momentum  Momentum  `json:"momentum"`
}

// TrendAnalysis aggregates a batch of trends.
type TrendAnalysis struct {
	TotalTrends         int     `json:"total_trends"`
	PositiveSentiment   float64 `json:"positive_sentiment"`
	RisingMomentum      float64 `json:"rising_momentum"`
	AvgVolume           float64 `json:"avg_volume"`
	EngagementPotential string  `json:"engagement_potential"`
}

// ContentResult is one rendered piece of platform content.
type ContentResult struct {
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	Topic     string    `json:"topic"`
	Tone      string    `json:"tone"`
	Style     string    `json:"style"`
	Length    int       `json:"length"`
	Timestamp time.Time `json:"timestamp"`
}

// EngagementMetrics holds raw counts plus the ratios derived from them.
type EngagementMetrics struct {
	Likes                 float64 `json:"likes"`
	Comments              float64 `json:"comments"`
	Shares                float64 `json:"shares"`
	Impressions           float64 `json:"impressions"`
	TotalInteractions     float64 `json:"total_interactions"`
	EngagementRate        float64 `json:"engagement_rate"`
	EngagementRatePercent float64 `json:"engagement_rate_percent"`
}

// PerformanceStatus buckets an engagement rate.
type PerformanceStatus string

const (
	StatusExcellent        PerformanceStatus = "excellent"
	StatusGood             PerformanceStatus = "good"
	StatusAverage          PerformanceStatus = "average"
	StatusNeedsImprovement PerformanceStatus = "needs_improvement"
)

// EngagementBreakdown splits interactions by type, in percent of the total.
type EngagementBreakdown struct {
	LikesPercent    float64 `json:"likes_percent"`
	CommentsPercent float64 `json:"comments_percent"`
	SharesPercent   float64 `json:"shares_percent"`
}

// EngagementAnalysis is the tracker agent's verdict on one metrics batch.
type EngagementAnalysis struct {
	Status         PerformanceStatus   `json:"status"`
	EngagementRate float64             `json:"engagement_rate"`
	Breakdown      EngagementBreakdown `json:"engagement_breakdown"`
	Reach          float64             `json:"reach"`
}

type WorkflowStatus string

const (
	WorkflowSuccess WorkflowStatus = "success"
	WorkflowError   WorkflowStatus = "error"
)

// WorkflowResult is the outcome of one orchestrated pass through the agents.
type WorkflowResult struct {
	WorkflowID         string             `json:"workflow_id"`
	Status             WorkflowStatus     `json:"status"`
	Error              string             `json:"error,omitempty"`
	Timestamp          time.Time          `json:"timestamp"`
	Trends             []Trend            `json:"trends,omitempty"`
	Content            string             `json:"content,omitempty"`
	EngagementAnalysis EngagementAnalysis `json:"engagement_analysis"`
	Recommendations    []string           `json:"recommendations,omitempty"`
}
