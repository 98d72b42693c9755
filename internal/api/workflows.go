package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jukeyman/jams-api/pkg/models"
)

// WorkflowsList returns non-archived workflows, or an empty list without a
// database.
func (h *Handlers) WorkflowsList(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"workflows": []models.Workflow{}, "total": 0})
		return
	}

	workflows, err := h.db.ListWorkflows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workflows", "message": err.Error()})
		return
	}
	if workflows == nil {
		workflows = []models.Workflow{}
	}
	c.JSON(http.StatusOK, gin.H{"workflows": workflows, "total": len(workflows)})
}

type createWorkflowRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ProjectID   string          `json:"project_id"`
	GraphJSON   json.RawMessage `json:"graph_json"`
}

// WorkflowCreate stores a new workflow graph.
func (h *Handlers) WorkflowCreate(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req createWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || len(req.GraphJSON) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and graph_json required"})
		return
	}

	now := time.Now().UTC()
	w := &models.Workflow{
		ID:          uuid.New().String(),
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		GraphJSON:   req.GraphJSON,
		Status:      "draft",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.db.CreateWorkflow(c.Request.Context(), w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workflow", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, w)
}

// WorkflowGet returns one workflow by id.
func (h *Handlers) WorkflowGet(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	w, err := h.db.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not found"})
		return
	}
	c.JSON(http.StatusOK, w)
}

type updateWorkflowRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	GraphJSON   json.RawMessage `json:"graph_json"`
}

// WorkflowUpdate applies a partial update. Absent fields are left unchanged.
func (h *Handlers) WorkflowUpdate(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req updateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.db.UpdateWorkflow(c.Request.Context(), id, req.Name, req.Description, req.Status, req.GraphJSON); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workflow", "message": err.Error()})
		return
	}

	w, err := h.db.GetWorkflow(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not found"})
		return
	}
	c.JSON(http.StatusOK, w)
}

// WorkflowDelete archives a workflow.
func (h *Handlers) WorkflowDelete(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	if err := h.db.ArchiveWorkflow(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workflow", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Workflow deleted"})
}

// WorkflowExecute runs every agent node of a stored workflow in sequence.
// Node failures are recorded per node and do not abort the run.
func (h *Handlers) WorkflowExecute(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	w, err := h.db.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not found"})
		return
	}

	result, err := h.executor.Execute(c.Request.Context(), w)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute workflow", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
