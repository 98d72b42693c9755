// Package workflow drives stored agent graphs through the agent runner.
//
// Execution is deliberately sequential: nodes run one after another in
// stored order, and a failing node is recorded in its result entry without
// aborting the remaining nodes. This trades throughput for per-node error
// isolation without coordination primitives.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jukeyman/jams-api/internal/agent"
	"github.com/jukeyman/jams-api/pkg/models"
)

// Graph is the persisted workflow document.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one vertex of a workflow graph. Only "agent" nodes with a task
// are executed; everything else is ignored.
type Node struct {
	ID   string   `json:"id"`
	Type string   `json:"type"`
	Data NodeData `json:"data"`
}

// NodeData carries the agent parameters attached to a node.
type NodeData struct {
	Label string `json:"label"`
	Task  string `json:"task"`
	Model string `json:"model"`
}

// Edge connects two nodes. Edges are stored but not interpreted; node
// order in the document is execution order.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodeResult is the per-node outcome collected during a run.
type NodeResult struct {
	Node    string `json:"node"`
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Result is the overall outcome of a workflow execution.
type Result struct {
	Success     bool         `json:"success"`
	ExecutionID string       `json:"execution_id"`
	WorkflowID  string       `json:"workflow_id"`
	Results     []NodeResult `json:"results"`
}

// ExecutionStore persists execution records. *database.DB satisfies it.
type ExecutionStore interface {
	InsertExecution(ctx context.Context, e *models.Execution) error
	FinishExecution(ctx context.Context, id, status string, result []byte, finishedAt time.Time) error
}

// Executor replays the agent-run contract over each agent node of a graph.
type Executor struct {
	runner *agent.Runner
	store  ExecutionStore
}

// NewExecutor creates a workflow executor.
func NewExecutor(runner *agent.Runner, store ExecutionStore) *Executor {
	return &Executor{runner: runner, store: store}
}

// Execute runs every agent node of the workflow in sequence and persists an
// execution record around the run. One node's failure does not abort the
// remaining nodes.
func (e *Executor) Execute(ctx context.Context, wf *models.Workflow) (*Result, error) {
	var graph Graph
	if len(wf.GraphJSON) > 0 {
		if err := json.Unmarshal(wf.GraphJSON, &graph); err != nil {
			return nil, fmt.Errorf("parsing workflow graph: %w", err)
		}
	}

	executionID := uuid.New().String()
	now := time.Now().UTC()

	exec := &models.Execution{
		ID:         executionID,
		WorkflowID: wf.ID,
		ProjectID:  wf.ProjectID,
		AgentName:  "Workflow Execution",
		ModelID:    agent.FallbackModel,
		Task:       "Execute workflow: " + wf.Name,
		Status:     "running",
		StartedAt:  now,
		CreatedAt:  now,
	}
	if err := e.store.InsertExecution(ctx, exec); err != nil {
		return nil, fmt.Errorf("recording execution start: %w", err)
	}

	results := make([]NodeResult, 0, len(graph.Nodes))
	for _, node := range graph.Nodes {
		if node.Type != "agent" || node.Data.Task == "" {
			continue
		}

		label := node.Data.Label
		if label == "" {
			label = "Agent"
		}
		model := node.Data.Model
		if model == "" {
			model = agent.FallbackModel
		}

		runResult, err := e.runner.Run(ctx, label, node.Data.Task, model)
		if err != nil {
			log.Printf("workflow %s: node %s failed: %v", wf.ID, node.ID, err)
			results = append(results, NodeResult{Node: node.ID, Success: false, Error: err.Error()})
			continue
		}
		results = append(results, NodeResult{Node: node.ID, Success: runResult.Success, Result: runResult.Result})
	}

	resultDoc, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("encoding execution results: %w", err)
	}
	if err := e.store.FinishExecution(ctx, executionID, "completed", resultDoc, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("recording execution finish: %w", err)
	}

	return &Result{
		Success:     true,
		ExecutionID: executionID,
		WorkflowID:  wf.ID,
		Results:     results,
	}, nil
}
