package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hotspotnav/traffic-backend-go/internal/geocode"
	"github.com/hotspotnav/traffic-backend-go/internal/models"
	"github.com/hotspotnav/traffic-backend-go/internal/service"
	"github.com/hotspotnav/traffic-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for route risk queries
type RouteHandler struct {
	routeService *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeService *service.RouteService) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
	}
}

// Query handles POST /api/v1/routes/query
func (h *RouteHandler) Query(c *gin.Context) {
	var req models.RouteQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "start_address and end_address are required")
		return
	}

	result, err := h.routeService.QueryRoute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			response.UnprocessableEntity(c, "找不到地點，請嘗試輸入更完整的名稱 (例如：台中火車站、逢甲大學)")
			return
		}
		if errors.Is(err, service.ErrGeocodeUnavailable) {
			response.BadGateway(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// History handles GET /api/v1/routes/history
func (h *RouteHandler) History(c *gin.Context) {
	var filter models.RouteHistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.routeService.History(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
