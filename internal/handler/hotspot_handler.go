package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotspotnav/traffic-backend-go/internal/models"
	"github.com/hotspotnav/traffic-backend-go/internal/service"
	"github.com/hotspotnav/traffic-backend-go/pkg/response"
)

// HotspotHandler handles HTTP requests for hotspots
type HotspotHandler struct {
	hotspotService *service.HotspotService
}

// NewHotspotHandler creates a new hotspot handler
func NewHotspotHandler(hotspotService *service.HotspotService) *HotspotHandler {
	return &HotspotHandler{
		hotspotService: hotspotService,
	}
}

// List handles GET /api/v1/hotspots
func (h *HotspotHandler) List(c *gin.Context) {
	var filter models.HotspotFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.hotspotService.List(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetByID handles GET /api/v1/hotspots/:id
func (h *HotspotHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hotspot ID")
		return
	}

	hotspot, err := h.hotspotService.GetByID(id)
	if err != nil {
		response.NotFound(c, "Hotspot not found")
		return
	}

	response.Success(c, hotspot)
}

// Reseed handles POST /api/v1/hotspots/reseed
func (h *HotspotHandler) Reseed(c *gin.Context) {
	count, err := h.hotspotService.Reseed()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"count": count})
}

// GetStatistics handles GET /api/v1/hotspots/stats
func (h *HotspotHandler) GetStatistics(c *gin.Context) {
	previewStr := c.DefaultQuery("preview", "5")
	preview, err := strconv.Atoi(previewStr)
	if err != nil {
		response.BadRequest(c, "Invalid preview parameter")
		return
	}

	stats, err := h.hotspotService.GetStatistics(preview)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, stats)
}
