// Package models defines the core data structures used across the JAMS API.
package models

import (
	"encoding/json"
	"time"
)

// LLMProvider identifies which upstream vendor a model routes to.
type LLMProvider string

const (
	ProviderOpenRouter LLMProvider = "openrouter"
	ProviderMiniMax    LLMProvider = "minimax"
	ProviderChutes     LLMProvider = "chutes"
)

// AgentRunResult is the response envelope for a single agent invocation.
// Usage is the provider-reported usage object, passed through verbatim.
type AgentRunResult struct {
	Success   bool                   `json:"success"`
	Agent     string                 `json:"agent"`
	Model     string                 `json:"model"`
	Provider  LLMProvider            `json:"provider"`
	Result    string                 `json:"result"`
	Usage     map[string]interface{} `json:"usage"`
	Timestamp time.Time              `json:"timestamp"`
}

// Project is a top-level container for workflows and audio files.
type Project struct {
	ID          string    `json:"id" db:"id"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Workflow is a persisted directed graph of agent nodes.
// GraphJSON holds the raw node/edge document supplied by the client.
type Workflow struct {
	ID          string          `json:"id" db:"id"`
	ProjectID   string          `json:"project_id,omitempty" db:"project_id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description,omitempty" db:"description"`
	GraphJSON   json.RawMessage `json:"graph_json" db:"graph_json"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Execution records one run of a workflow (or a standalone agent task).
type Execution struct {
	ID         string          `json:"id" db:"id"`
	WorkflowID string          `json:"workflow_id,omitempty" db:"workflow_id"`
	ProjectID  string          `json:"project_id,omitempty" db:"project_id"`
	AgentName  string          `json:"agent_name" db:"agent_name"`
	ModelID    string          `json:"model_id" db:"model_id"`
	Task       string          `json:"task" db:"task"`
	Status     string          `json:"status" db:"status"`
	Result     json.RawMessage `json:"result,omitempty" db:"result"`
	StartedAt  time.Time       `json:"started_at" db:"started_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty" db:"finished_at"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// ExecutionLog is a single log line emitted during an execution.
type ExecutionLog struct {
	ID          string    `json:"id" db:"id"`
	ExecutionID string    `json:"execution_id" db:"execution_id"`
	Level       string    `json:"level" db:"level"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// AudioFile holds library metadata for a stored audio blob. The bytes
// themselves live in the blob storage backend under StorageKey.
type AudioFile struct {
	ID         string    `json:"id" db:"id"`
	ProjectID  string    `json:"project_id,omitempty" db:"project_id"`
	StorageKey string    `json:"storage_key" db:"storage_key"`
	Filename   string    `json:"filename" db:"filename"`
	FileType   string    `json:"file_type" db:"file_type"`
	SizeBytes  int64     `json:"size_bytes" db:"size_bytes"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Notification is a user-facing event message.
type Notification struct {
	ID        string    `json:"id" db:"id"`
	Kind      string    `json:"kind" db:"kind"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body,omitempty" db:"body"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Setting is a single key with an arbitrary JSON value.
type Setting struct {
	ID        string          `json:"id" db:"id"`
	Key       string          `json:"key" db:"key"`
	ValueJSON json.RawMessage `json:"value_json" db:"value_json"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Agent describes one member of the static production roster.
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities,omitempty"`
}
