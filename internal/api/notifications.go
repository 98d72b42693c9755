package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jukeyman/jams-api/pkg/models"
)

// NotificationsList returns the most recent notifications.
func (h *Handlers) NotificationsList(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"notifications": []models.Notification{}, "total": 0})
		return
	}

	notifications, err := h.db.ListNotifications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications", "message": err.Error()})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "total": len(notifications)})
}

type markReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
}

// NotificationsMarkRead flags the given notification ids as read.
func (h *Handlers) NotificationsMarkRead(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NotificationIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "notification_ids array required"})
		return
	}

	if err := h.db.MarkNotificationsRead(c.Request.Context(), req.NotificationIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notifications marked as read"})
}

// SettingsList returns all settings as a key-to-value object.
func (h *Handlers) SettingsList(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"settings": gin.H{}})
		return
	}

	rows, err := h.db.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list settings", "message": err.Error()})
		return
	}

	settings := make(map[string]json.RawMessage, len(rows))
	for _, s := range rows {
		settings[s.Key] = s.ValueJSON
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type upsertSettingRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// SettingUpsert creates or replaces a settings key.
func (h *Handlers) SettingUpsert(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req upsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key required"})
		return
	}

	s := &models.Setting{
		ID:        uuid.New().String(),
		Key:       req.Key,
		ValueJSON: req.Value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.db.UpsertSetting(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "key": req.Key, "value": req.Value})
}
