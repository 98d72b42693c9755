package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jukeyman/jams-api/pkg/models"
)

// ExecutionsList returns the most recent workflow runs.
func (h *Handlers) ExecutionsList(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"executions": []models.Execution{}, "total": 0})
		return
	}

	executions, err := h.db.ListExecutions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list executions", "message": err.Error()})
		return
	}
	if executions == nil {
		executions = []models.Execution{}
	}
	c.JSON(http.StatusOK, gin.H{"executions": executions, "total": len(executions)})
}

// ExecutionGet returns one execution by id.
func (h *Handlers) ExecutionGet(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	e, err := h.db.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Execution not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// ExecutionLogsList returns log lines for one execution, oldest first.
func (h *Handlers) ExecutionLogsList(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"logs": []models.ExecutionLog{}, "total": 0})
		return
	}

	logs, err := h.db.ListExecutionLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list execution logs", "message": err.Error()})
		return
	}
	if logs == nil {
		logs = []models.ExecutionLog{}
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": len(logs)})
}
