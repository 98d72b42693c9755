// Package api implements the REST endpoints of the JAMS Studio API.
//
// Optional dependencies degrade rather than fail: without a database, list
// endpoints return empty collections and writes return 503; without a
// counter store, cost tracking reports zeros with an explanatory message.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jukeyman/jams-api/internal/agent"
	"github.com/jukeyman/jams-api/internal/catalog"
	"github.com/jukeyman/jams-api/internal/config"
	"github.com/jukeyman/jams-api/internal/cost"
	"github.com/jukeyman/jams-api/internal/database"
	"github.com/jukeyman/jams-api/internal/storage"
	"github.com/jukeyman/jams-api/internal/workflow"
)

// Handlers provides the REST endpoint handlers.
type Handlers struct {
	cfg      *config.Config
	db       *database.DB // nil when the database is not provisioned
	runner   *agent.Runner
	executor *workflow.Executor
	tracker  *cost.Tracker
	blobs    storage.Backend // nil when blob storage is not provisioned
}

// NewHandlers creates a Handlers instance. db and blobs may be nil.
func NewHandlers(cfg *config.Config, db *database.DB, runner *agent.Runner, executor *workflow.Executor, tracker *cost.Tracker, blobs storage.Backend) *Handlers {
	return &Handlers{
		cfg:      cfg,
		db:       db,
		runner:   runner,
		executor: executor,
		tracker:  tracker,
		blobs:    blobs,
	}
}

// requireDB returns true if the database is available, or sends a 503 and
// returns false.
func (h *Handlers) requireDB(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
		return false
	}
	return true
}

// HealthCheck reports service status and which optional features are live.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     "Jukeyman AGI Music Studio (JAMS) API",
		"version":     "1.0.0",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Environment,
		"features": gin.H{
			"audio_storage":     h.blobs != nil,
			"kv_cache":          h.tracker.Available(),
			"agents":            h.cfg.MaxAgents,
			"cost_optimization": true,
		},
	})
}

// agentRunRequest is the body for POST /api/v1/agent/run.
type agentRunRequest struct {
	AgentName string `json:"agent_name"`
	Task      string `json:"task"`
	Model     string `json:"model"`
	Stream    bool   `json:"stream"`
}

// AgentRun executes a single agent task against the resolved provider.
func (h *Handlers) AgentRun(c *gin.Context) {
	var req agentRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if req.Task == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task required"})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), req.AgentName, req.Task, req.Model)
	if err != nil {
		var runErr *agent.RunError
		provider := ""
		if errors.As(err, &runErr) {
			provider = string(runErr.Provider)
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":  false,
			"error":    "Agent execution failed",
			"message":  err.Error(),
			"provider": provider,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AgentsList returns the static production roster.
func (h *Handlers) AgentsList(c *gin.Context) {
	agents := agent.Roster()
	c.JSON(http.StatusOK, gin.H{
		"agents": agents,
		"total":  len(agents),
	})
}

// AgentGet returns a descriptor for one agent id.
func (h *Handlers) AgentGet(c *gin.Context) {
	c.JSON(http.StatusOK, agent.Lookup(c.Param("id")))
}

// CostSummary reports the accumulated cost for the current UTC date.
func (h *Handlers) CostSummary(c *gin.Context) {
	if !h.tracker.Available() {
		c.JSON(http.StatusOK, gin.H{
			"total":   0,
			"today":   0,
			"message": "Cost tracking not available",
		})
		return
	}

	today, err := h.tracker.Today(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cost lookup failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    today,
		"today":    today,
		"currency": "USD",
	})
}

// ModelsList returns the static model catalog.
func (h *Handlers) ModelsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": catalog.All()})
}

// NotFound is the catch-all for unmatched routes.
func (h *Handlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
}
