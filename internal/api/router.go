package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine with middleware and the full route table.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", h.HealthCheck)
	r.GET("/api/health", h.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/agent/run", h.AgentRun)
		v1.GET("/agents", h.AgentsList)
		v1.GET("/agents/:id", h.AgentGet)

		v1.GET("/models/list", h.ModelsList)
		v1.GET("/cost/summary", h.CostSummary)

		v1.GET("/projects", h.ProjectsList)
		v1.POST("/projects", h.ProjectCreate)
		v1.GET("/projects/:id", h.ProjectGet)
		v1.PUT("/projects/:id", h.ProjectUpdate)
		v1.DELETE("/projects/:id", h.ProjectDelete)

		v1.GET("/workflows", h.WorkflowsList)
		v1.POST("/workflows", h.WorkflowCreate)
		v1.GET("/workflows/:id", h.WorkflowGet)
		v1.PUT("/workflows/:id", h.WorkflowUpdate)
		v1.DELETE("/workflows/:id", h.WorkflowDelete)
		v1.POST("/workflows/:id/execute", h.WorkflowExecute)

		v1.GET("/executions", h.ExecutionsList)
		v1.GET("/executions/:id", h.ExecutionGet)
		v1.GET("/executions/:id/logs", h.ExecutionLogsList)

		v1.GET("/storage", h.LibraryList)
		v1.POST("/storage", h.LibraryUpload)
		v1.GET("/storage/:id", h.LibraryGet)
		v1.GET("/storage/:id/download", h.LibraryDownload)
		v1.DELETE("/storage/:id", h.LibraryDelete)

		v1.GET("/notifications", h.NotificationsList)
		v1.POST("/notifications/read", h.NotificationsMarkRead)

		v1.GET("/settings", h.SettingsList)
		v1.PUT("/settings", h.SettingUpsert)
	}

	r.NoRoute(h.NotFound)
	return r
}
