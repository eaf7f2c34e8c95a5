package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hotspotnav/traffic-backend-go/internal/config"
	"github.com/hotspotnav/traffic-backend-go/internal/handler"
	"github.com/hotspotnav/traffic-backend-go/internal/middleware"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Hotspots *handler.HotspotHandler
	Routes   *handler.RouteHandler
	Geocode  *handler.GeocodeHandler
}

// SetupRouter builds the gin engine: API under /api/v1, the map client at /
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Traffic Hotspot API is running",
		})
	})

	// Static single-page map client
	r.StaticFile("/", cfg.WebRoot+"/index.html")

	// Nominatim allows at most 1 request/second; both geocoding routes
	// share one limiter
	geocodeLimit := middleware.RateLimit(1, time.Second)

	api := r.Group("/api/v1")
	{
		hotspots := api.Group("/hotspots")
		{
			hotspots.GET("", h.Hotspots.List)
			hotspots.GET("/stats", h.Hotspots.GetStatistics)
			hotspots.GET("/:id", h.Hotspots.GetByID)
			hotspots.POST("/reseed", h.Hotspots.Reseed)
		}

		api.GET("/geocode", geocodeLimit, h.Geocode.Geocode)

		routes := api.Group("/routes")
		{
			routes.POST("/query", geocodeLimit, h.Routes.Query)
			routes.GET("/history", h.Routes.History)
		}
	}

	return r
}
