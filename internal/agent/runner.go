// Package agent executes single agent tasks against the provider gateway.
package agent

import (
	"context"
	"log"
	"time"

	"github.com/jukeyman/jams-api/internal/cost"
	"github.com/jukeyman/jams-api/internal/provider"
	"github.com/jukeyman/jams-api/pkg/models"
)

// FallbackModel is used when neither the request nor the deployment
// configures a model.
const FallbackModel = "deepseek/deepseek-chat"

const defaultPersona = "a music production assistant"

// RunError carries the provider that was resolved before the call failed,
// so the API layer can report it alongside the underlying cause.
type RunError struct {
	Provider models.LLMProvider
	Err      error
}

func (e *RunError) Error() string { return e.Err.Error() }

func (e *RunError) Unwrap() error { return e.Err }

// Runner resolves a task to a provider call and records its cost.
type Runner struct {
	registry     *provider.Registry
	tracker      *cost.Tracker
	defaultModel string
}

// NewRunner creates a runner. defaultModel may be empty, in which case the
// hard-coded fallback model applies.
func NewRunner(registry *provider.Registry, tracker *cost.Tracker, defaultModel string) *Runner {
	return &Runner{
		registry:     registry,
		tracker:      tracker,
		defaultModel: defaultModel,
	}
}

// ResolveModel picks the model for a request: explicit request model, then
// the configured default, then the fallback.
func (r *Runner) ResolveModel(requested string) string {
	if requested != "" {
		return requested
	}
	if r.defaultModel != "" {
		return r.defaultModel
	}
	return FallbackModel
}

// Run executes one agent task. The caller validates that task is non-empty.
// On adapter failure the returned RunError names the resolved provider.
// Cost recording is best-effort; its failure never fails the run.
func (r *Runner) Run(ctx context.Context, agentName, task, modelID string) (*models.AgentRunResult, error) {
	selectedModel := r.ResolveModel(modelID)
	tag := provider.Classify(selectedModel)

	persona := agentName
	if persona == "" {
		persona = defaultPersona
	}

	messages := []provider.ChatMessage{
		{
			Role:    provider.RoleSystem,
			Content: "You are " + persona + ". Provide expert guidance and execute tasks efficiently.",
		},
		{Role: provider.RoleUser, Content: task},
	}

	resp, err := r.registry.For(tag).Call(ctx, selectedModel, messages)
	if err != nil {
		return nil, &RunError{Provider: tag, Err: err}
	}

	if len(resp.Usage) > 0 {
		if trackErr := r.tracker.Record(ctx, resp.Usage, selectedModel); trackErr != nil {
			log.Printf("agent: cost tracking failed for %s: %v", selectedModel, trackErr)
		}
	}

	displayName := agentName
	if displayName == "" {
		displayName = "Unknown"
	}

	return &models.AgentRunResult{
		Success:   true,
		Agent:     displayName,
		Model:     selectedModel,
		Provider:  tag,
		Result:    resp.ExtractContent(),
		Usage:     resp.Usage,
		Timestamp: time.Now().UTC(),
	}, nil
}
