package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jukeyman/jams-api/pkg/models"
)

// ProjectsList returns active projects, or an empty list without a database.
func (h *Handlers) ProjectsList(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"projects": []models.Project{}, "total": 0})
		return
	}

	projects, err := h.db.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects", "message": err.Error()})
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

// ProjectCreate creates a new project.
func (h *Handlers) ProjectCreate(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name required"})
		return
	}

	now := time.Now().UTC()
	p := &models.Project{
		ID:          uuid.New().String(),
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.OwnerID == "" {
		p.OwnerID = "default"
	}

	if err := h.db.CreateProject(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ProjectGet returns one project by id.
func (h *Handlers) ProjectGet(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	p, err := h.db.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ProjectUpdate applies a partial update. Absent fields are left unchanged.
func (h *Handlers) ProjectUpdate(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.db.UpdateProject(c.Request.Context(), id, req.Name, req.Description, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project", "message": err.Error()})
		return
	}

	p, err := h.db.GetProject(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ProjectDelete soft-deletes a project.
func (h *Handlers) ProjectDelete(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	if err := h.db.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}
