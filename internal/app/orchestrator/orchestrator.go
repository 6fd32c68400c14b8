package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/socialpulse/pulse-agent/internal/agent"
	"github.com/socialpulse/pulse-agent/internal/config"
	"github.com/socialpulse/pulse-agent/internal/domain"
	"github.com/socialpulse/pulse-agent/internal/observability"
)

// Agent names as registered by the orchestrator.
const (
	AgentTrendMonitor      = "trend_monitor"
	AgentContentGenerator  = "content_generator"
	AgentEngagementTracker = "engagement_tracker"
)

// WorkflowParams are the caller-supplied inputs for one workflow pass.
// Every field is optional; zero values fall back to agent defaults.
type WorkflowParams struct {
	Query    string
	Topic    string // overrides the first trend's topic when set
	Tone     string
	Hashtags []string
	Metrics  map[string]any
}

// State is the shared mutable state accumulated across workflow runs.
type State struct {
	Trends            []domain.Trend            `json:"trends"`
	GeneratedContent  []domain.ContentResult    `json:"generated_content"`
	EngagementMetrics domain.EngagementAnalysis `json:"engagement_metrics"`
}

// Snapshot describes the orchestrator at a point in time.
type Snapshot struct {
	State             State                  `json:"state"`
	AgentsInitialized []string               `json:"agents_initialized"`
	ExecutionCount    int                    `json:"execution_count"`
	LastExecution     *domain.WorkflowResult `json:"last_execution,omitempty"`
}

// Orchestrator runs the trend -> content -> engagement agents in
// sequence, threading the output of one into the input of the next.
// Each pass fully completes one agent before starting the next; there
// is no branching, no parallelism and no retry.
type Orchestrator struct {
	cfg *config.Config

	mu      sync.RWMutex
	agents  map[string]agent.Agent
	state   State
	history []domain.WorkflowResult

	now func() time.Time
}

// Option adjusts construction, mostly for tests.
type Option func(*Orchestrator)

// WithAgent replaces a named agent with a custom implementation.
func WithAgent(name string, ag agent.Agent) Option {
	return func(o *Orchestrator) {
		o.agents[name] = ag
	}
}

// WithLLM attaches a model client to the content generator.
func WithLLM(client domain.LLMClient) Option {
	return func(o *Orchestrator) {
		acfg, _ := o.cfg.AgentConfig(AgentContentGenerator)
		o.agents[AgentContentGenerator] = agent.NewContentGeneratorAgent(
			o.cfg.Platform, o.cfg.BrandVoice, acfg, agent.WithLLM(client),
		)
	}
}

// New builds an orchestrator with the three standard agents for the
// configured platform.
func New(cfg *config.Config, opts ...Option) *Orchestrator {
	trendCfg, _ := cfg.AgentConfig(AgentTrendMonitor)
	contentCfg, _ := cfg.AgentConfig(AgentContentGenerator)
	trackerCfg, _ := cfg.AgentConfig(AgentEngagementTracker)

	o := &Orchestrator{
		cfg: cfg,
		agents: map[string]agent.Agent{
			AgentTrendMonitor:      agent.NewTrendMonitorAgent(cfg.Platform, trendCfg),
			AgentContentGenerator:  agent.NewContentGeneratorAgent(cfg.Platform, cfg.BrandVoice, contentCfg),
			AgentEngagementTracker: agent.NewEngagementTrackerAgent(cfg.Platform, trackerCfg),
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ExecuteWorkflow runs one sequential pass through the agents. It
// never returns an error: any sub-agent failure is converted into an
// error-status result, and callers must inspect Status.
func (o *Orchestrator) ExecuteWorkflow(ctx context.Context, params WorkflowParams) *domain.WorkflowResult {
	workflowID := o.now().Format("20060102150405.000000000")
	ctx = observability.WithRunID(ctx, uuid.NewString())

	log := observability.LoggerFromContext(ctx).With("workflow_id", workflowID)
	log.Info("workflow started", "query", params.Query)

	result, err := o.runSteps(ctx, workflowID, params)
	if err != nil {
		log.Error("workflow failed", "error", err)
		return &domain.WorkflowResult{
			WorkflowID: workflowID,
			Status:     domain.WorkflowError,
			Error:      err.Error(),
			Timestamp:  o.now(),
		}
	}

	o.mu.Lock()
	o.history = append(o.history, *result)
	o.mu.Unlock()

	log.Info("workflow completed", "status", result.Status)
	return result
}

func (o *Orchestrator) runSteps(ctx context.Context, workflowID string, params WorkflowParams) (*domain.WorkflowResult, error) {
	log := observability.LoggerFromContext(ctx)

	// Step 1: monitor trends.
	log.Info("agent run start", "agent", AgentTrendMonitor)
	trendOut, err := o.agents[AgentTrendMonitor].Execute(ctx, map[string]any{
		"query": params.Query,
	})
	if err != nil {
		return nil, err
	}

	trends, _ := trendOut["trends"].([]domain.Trend)
	o.mu.Lock()
	o.state.Trends = trends
	o.mu.Unlock()

	// Step 2: generate content. An explicit topic wins over the first
	// trend's topic.
	topic := params.Topic
	if topic == "" && len(trends) > 0 {
		topic = trends[0].Topic
	}

	log.Info("agent run start", "agent", AgentContentGenerator, "topic", topic)
	contentOut, err := o.agents[AgentContentGenerator].Execute(ctx, map[string]any{
		"topic":    topic,
		"tone":     params.Tone,
		"hashtags": params.Hashtags,
	})
	if err != nil {
		return nil, err
	}

	contentResult := contentResultFrom(contentOut)
	o.mu.Lock()
	o.state.GeneratedContent = append(o.state.GeneratedContent, contentResult)
	o.mu.Unlock()

	// Step 3: track engagement on caller-supplied metrics.
	log.Info("agent run start", "agent", AgentEngagementTracker)
	engagementOut, err := o.agents[AgentEngagementTracker].Execute(ctx, map[string]any{
		"metrics_data": params.Metrics,
	})
	if err != nil {
		return nil, err
	}

	analysis, _ := engagementOut["analysis"].(domain.EngagementAnalysis)
	recommendations, _ := engagementOut["recommendations"].([]string)

	o.mu.Lock()
	o.state.EngagementMetrics = analysis
	o.mu.Unlock()

	return &domain.WorkflowResult{
		WorkflowID:         workflowID,
		Status:             domain.WorkflowSuccess,
		Timestamp:          o.now(),
		Trends:             trends,
		Content:            contentResult.Content,
		EngagementAnalysis: analysis,
		Recommendations:    recommendations,
	}, nil
}

// ContinuousMonitoring runs the workflow on a fixed query, sleeping
// interval between cycles. Per-cycle failures are logged and
// swallowed; the loop only stops when ctx is cancelled.
func (o *Orchestrator) ContinuousMonitoring(ctx context.Context, interval time.Duration) error {
	log := observability.LoggerFromContext(ctx)
	log.Info("continuous monitoring started", "interval", interval.String())

	for {
		result := o.ExecuteWorkflow(ctx, WorkflowParams{Query: "trending topics"})
		if result.Status == domain.WorkflowError {
			log.Error("monitoring cycle failed", "error", result.Error)
		} else {
			log.Info("monitoring cycle complete", "workflow_id", result.WorkflowID)
		}

		select {
		case <-ctx.Done():
			log.Info("continuous monitoring stopped")
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Agent returns a named agent, or nil when unknown.
func (o *Orchestrator) Agent(name string) agent.Agent {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.agents[name]
}

// Agents returns all registered agents keyed by name.
func (o *Orchestrator) Agents() map[string]agent.Agent {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make(map[string]agent.Agent, len(o.agents))
	for name, ag := range o.agents {
		out[name] = ag
	}
	return out
}

// ExecutionHistory returns past workflow results, newest last. A
// positive limit returns only the last limit records.
func (o *Orchestrator) ExecutionHistory(limit int) []domain.WorkflowResult {
	o.mu.RLock()
	defer o.mu.RUnlock()

	records := o.history
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	out := make([]domain.WorkflowResult, len(records))
	copy(out, records)
	return out
}

// CurrentState snapshots the orchestrator.
func (o *Orchestrator) CurrentState() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()

	names := make([]string, 0, len(o.agents))
	for name := range o.agents {
		names = append(names, name)
	}

	snap := Snapshot{
		State:             o.state,
		AgentsInitialized: names,
		ExecutionCount:    len(o.history),
	}
	if len(o.history) > 0 {
		last := o.history[len(o.history)-1]
		snap.LastExecution = &last
	}
	return snap
}

// SetState replaces the shared state wholesale.
func (o *Orchestrator) SetState(state State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = state
}

// ResetState clears the shared state. Execution history is kept.
func (o *Orchestrator) ResetState() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = State{}
	observability.Logger().Info("orchestrator state reset")
}

func contentResultFrom(out map[string]any) domain.ContentResult {
	result := domain.ContentResult{}
	if v, ok := out["platform"].(string); ok {
		result.Platform = v
	}
	if v, ok := out["content"].(string); ok {
		result.Content = v
	}
	if v, ok := out["topic"].(string); ok {
		result.Topic = v
	}
	if v, ok := out["tone"].(string); ok {
		result.Tone = v
	}
	if v, ok := out["style"].(string); ok {
		result.Style = v
	}
	if v, ok := out["length"].(int); ok {
		result.Length = v
	}
	if v, ok := out["timestamp"].(time.Time); ok {
		result.Timestamp = v
	}
	return result
}
