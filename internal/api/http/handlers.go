package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/mfdash/internal/infrastructure/logging"
)

// Handlers contains all dashboard HTTP handlers
type Handlers struct {
	store          *Store
	screenshotPath string
	logger         *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(store *Store, screenshotPath string, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		store:          store,
		screenshotPath: screenshotPath,
		logger:         logger,
	}
}

// Data serves the current document
func (h *Handlers) Data(c *gin.Context) {
	snap, err := h.store.Get()
	if snap == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no dataset available"})
		return
	}
	if err != nil {
		h.logger.Warn("Serving demo dataset", zap.Error(err))
	}

	c.Header("X-Data-Source", snap.Source)
	c.Header("ETag", snap.ETag)
	c.Header("Cache-Control", "no-cache")
	if c.GetHeader("If-None-Match") == snap.ETag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", snap.Body)
}

// Refresh forces a reload from disk and reports what is now served
func (h *Handlers) Refresh(c *gin.Context) {
	snap, err := h.store.Reload()
	if snap == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"source":     snap.Source,
		"updated_at": snap.Document.UpdatedAt,
		"summary":    snap.Document.Summary,
	}
	if err != nil {
		resp["warning"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// Screenshot serves the last failure screenshot
func (h *Handlers) Screenshot(c *gin.Context) {
	data, err := os.ReadFile(h.screenshotPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no failure screenshot"})
		return
	}
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}

// Health reports liveness and dataset freshness
func (h *Handlers) Health(c *gin.Context) {
	snap, _ := h.store.Get()
	resp := gin.H{"status": "healthy"}
	if snap != nil {
		resp["source"] = snap.Source
		if snap.Source == SourceFile {
			resp["age_seconds"] = int64(time.Since(snap.Document.UpdatedAt).Seconds())
		}
	}
	c.JSON(http.StatusOK, resp)
}
