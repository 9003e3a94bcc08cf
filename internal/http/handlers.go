package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/planarkit/planarkit/internal/logging"
	"github.com/planarkit/planarkit/internal/monitoring"
	"github.com/planarkit/planarkit/internal/service"
	"github.com/planarkit/planarkit/internal/types"
	"github.com/planarkit/planarkit/vec2"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "planarkit",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"default_system":   vec2.Default().Name(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req struct {
		Intent string `json:"intent" binding:"required"`
		Limit  int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	services := h.registry.Discover(req.Intent, req.Limit)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// ExecuteService runs a tool and returns its result
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req struct {
		ToolID  string                 `json:"tool_id" binding:"required"`
		Params  map[string]interface{} `json:"params"`
		Context *types.Context         `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID, systemName(req.Params))
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, req.Context)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError(req.ToolID, "not_found")
		h.logger.Warn("tool execution rejected",
			zap.String("tool_id", req.ToolID),
			zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
		h.metrics.RecordToolError(req.ToolID, "tool_failure")
		h.logger.Debug("tool returned failure",
			zap.String("tool_id", req.ToolID),
			zap.Stringp("error", result.Error))
	}

	c.JSON(http.StatusOK, result)
}

// systemName extracts the requested operator system name for metric labels.
func systemName(params map[string]interface{}) string {
	if params != nil {
		if name, ok := params["system"].(string); ok {
			if _, known := vec2.LookupSystem(name); known {
				return name
			}
		}
	}
	return vec2.Default().Name()
}
