package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/socialpulse/pulse-agent/internal/adapters/llm"
	"github.com/socialpulse/pulse-agent/internal/app/orchestrator"
	"github.com/socialpulse/pulse-agent/internal/config"
	"github.com/socialpulse/pulse-agent/internal/domain"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	// Choose between mock and OpenAI by ENV (useful for dev).
	var opts []orchestrator.Option
	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK LLM client")
	} else {
		log.Println("[LLM] Using OpenAI LLM client")
		acfg, _ := cfg.AgentConfig(orchestrator.AgentContentGenerator)
		client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, acfg.ModelName, acfg.Temperature)
		if err != nil {
			log.Fatalf("error initializing OpenAI LLM client: %v", err)
		}
		opts = append(opts, orchestrator.WithLLM(client))
	}

	orch := orchestrator.New(cfg, opts...)

	if os.Getenv("PULSE_CONTINUOUS") == "true" {
		runContinuous(ctx, orch, cfg)
		return
	}

	result := orch.ExecuteWorkflow(ctx, orchestrator.WorkflowParams{
		Query:    "AI and technology trends",
		Topic:    "Artificial Intelligence Innovation",
		Tone:     "professional",
		Hashtags: []string{"#AI", "#Innovation"},
	})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("error encoding result: %v", err)
	}
	fmt.Println(string(out))

	if result.Status == domain.WorkflowError {
		os.Exit(1)
	}
}

func runContinuous(ctx context.Context, orch *orchestrator.Orchestrator, cfg *config.Config) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(cfg.MonitorInterval) * time.Second
	log.Printf("starting continuous monitoring (interval: %s)", interval)

	if err := orch.ContinuousMonitoring(ctx, interval); err != nil && ctx.Err() == nil {
		log.Fatalf("continuous monitoring stopped: %v", err)
	}
}
