package api

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jukeyman/jams-api/internal/storage"
	"github.com/jukeyman/jams-api/pkg/models"
)

// audioContentType maps a filename extension to a served MIME type.
func audioContentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}

// LibraryList returns active audio library entries, newest first.
func (h *Handlers) LibraryList(c *gin.Context) {
	if h.db == nil || h.blobs == nil {
		c.JSON(http.StatusOK, gin.H{"files": []models.AudioFile{}, "total": 0})
		return
	}

	files, err := h.db.ListAudioFiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audio files", "message": err.Error()})
		return
	}
	if files == nil {
		files = []models.AudioFile{}
	}
	c.JSON(http.StatusOK, gin.H{"files": files, "total": len(files)})
}

// LibraryUpload accepts a multipart audio upload, stores the blob, and
// records its metadata.
func (h *Handlers) LibraryUpload(c *gin.Context) {
	if h.db == nil || h.blobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not available"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload", "message": err.Error()})
		return
	}
	defer src.Close()

	projectID := c.PostForm("project_id")
	fileID := uuid.New().String()
	key := storage.AudioKey(projectID, fileID, fileHeader.Filename)

	size, err := h.blobs.Write(c.Request.Context(), key, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "message": err.Error()})
		return
	}

	now := time.Now().UTC()
	f := &models.AudioFile{
		ID:         fileID,
		ProjectID:  projectID,
		StorageKey: key,
		Filename:   fileHeader.Filename,
		FileType:   audioContentType(fileHeader.Filename),
		SizeBytes:  size,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.db.InsertAudioFile(c.Request.Context(), f); err != nil {
		// Keep storage consistent with the metadata table.
		_ = h.blobs.Delete(c.Request.Context(), key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record file", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"file":    f,
		"url":     h.cfg.StoragePublicURL + "/" + key,
	})
}

// LibraryGet returns the metadata and public URL for one library entry.
func (h *Handlers) LibraryGet(c *gin.Context) {
	if h.db == nil || h.blobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not available"})
		return
	}

	f, err := h.db.GetAudioFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file": f,
		"url":  h.cfg.StoragePublicURL + "/" + f.StorageKey,
	})
}

// LibraryDownload streams the stored bytes for one library entry.
func (h *Handlers) LibraryDownload(c *gin.Context) {
	if h.db == nil || h.blobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not available"})
		return
	}

	f, err := h.db.GetAudioFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	data, err := h.blobs.Read(c.Request.Context(), f.StorageKey)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+f.Filename+`"`)
	c.Data(http.StatusOK, f.FileType, data)
}

// LibraryDelete removes the blob and soft-deletes the metadata.
func (h *Handlers) LibraryDelete(c *gin.Context) {
	if h.db == nil || h.blobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not available"})
		return
	}

	f, err := h.db.GetAudioFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if err := h.blobs.Delete(c.Request.Context(), f.StorageKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file", "message": err.Error()})
		return
	}
	if err := h.db.DeleteAudioFile(c.Request.Context(), f.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted"})
}
