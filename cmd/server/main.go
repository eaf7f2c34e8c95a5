package main

import (
	"log"
	"time"

	"github.com/hotspotnav/traffic-backend-go/internal/api"
	"github.com/hotspotnav/traffic-backend-go/internal/config"
	"github.com/hotspotnav/traffic-backend-go/internal/database"
	"github.com/hotspotnav/traffic-backend-go/internal/geocode"
	"github.com/hotspotnav/traffic-backend-go/internal/handler"
	"github.com/hotspotnav/traffic-backend-go/internal/repository"
	"github.com/hotspotnav/traffic-backend-go/internal/service"
	"github.com/hotspotnav/traffic-backend-go/internal/spatial"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()

	hotspotRepo := repository.NewHotspotRepository(db)
	routeRepo := repository.NewRouteRepository(db)

	index := spatial.NewIndex()
	hotspotService := service.NewHotspotService(hotspotRepo, index, service.SeedOptions{
		BaseLat: cfg.BaseLat,
		BaseLon: cfg.BaseLon,
		Jitter:  cfg.JitterDegree,
		Count:   cfg.HotspotCount,
	})
	if err := hotspotService.EnsureSeeded(); err != nil {
		log.Fatal("Failed to seed hotspots:", err)
	}

	geocoder := geocode.NewClient(
		cfg.NominatimBaseURL,
		cfg.NominatimUserAgent,
		cfg.CityBias,
		time.Duration(cfg.GeocodeTimeoutSec)*time.Second,
	)
	routeService := service.NewRouteService(geocoder, hotspotService, routeRepo, cfg.BoxMarginDegrees)

	// 初始化路由
	router := api.SetupRouter(cfg, api.Handlers{
		Hotspots: handler.NewHotspotHandler(hotspotService),
		Routes:   handler.NewRouteHandler(routeService),
		Geocode:  handler.NewGeocodeHandler(geocoder),
	})

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
