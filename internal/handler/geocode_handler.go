package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hotspotnav/traffic-backend-go/internal/geocode"
	"github.com/hotspotnav/traffic-backend-go/internal/service"
	"github.com/hotspotnav/traffic-backend-go/pkg/response"
)

// GeocodeHandler handles HTTP requests for address geocoding
type GeocodeHandler struct {
	geocoder service.Geocoder
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(geocoder service.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Geocode handles GET /api/v1/geocode?address=
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		response.BadRequest(c, "address parameter is required")
		return
	}

	loc, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			response.NotFound(c, "No results for address")
			return
		}
		response.BadGateway(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"address":      address,
		"display_name": loc.DisplayName,
		"latitude":     loc.Latitude,
		"longitude":    loc.Longitude,
	})
}
