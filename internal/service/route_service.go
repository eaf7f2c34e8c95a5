package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/hotspotnav/traffic-backend-go/internal/geocode"
	"github.com/hotspotnav/traffic-backend-go/internal/models"
	"github.com/hotspotnav/traffic-backend-go/internal/repository"
	"github.com/hotspotnav/traffic-backend-go/internal/spatial"
)

// DefaultBoxMarginDegrees pads the endpoint bounding box before filtering
const DefaultBoxMarginDegrees = 0.01

// ErrGeocodeUnavailable marks geocoder failures other than "no results"
var ErrGeocodeUnavailable = errors.New("geocoder unavailable")

// Geocoder resolves an address to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geocode.Location, error)
}

// RouteService handles route risk queries. The "path" is always the straight
// line between the geocoded endpoints, never a computed route.
type RouteService struct {
	geocoder  Geocoder
	hotspots  *HotspotService
	routeRepo *repository.RouteRepository
	margin    float64
}

// NewRouteService creates a new route service
func NewRouteService(geocoder Geocoder, hotspots *HotspotService, routeRepo *repository.RouteRepository, margin float64) *RouteService {
	if margin <= 0 {
		margin = DefaultBoxMarginDegrees
	}
	return &RouteService{
		geocoder:  geocoder,
		hotspots:  hotspots,
		routeRepo: routeRepo,
		margin:    margin,
	}
}

// QueryRoute geocodes both addresses, filters hotspots inside the padded
// bounding box of the endpoints and records the query
func (s *RouteService) QueryRoute(ctx context.Context, req models.RouteQueryRequest) (*models.RouteQueryResponse, error) {
	startAddr := strings.TrimSpace(req.StartAddress)
	endAddr := strings.TrimSpace(req.EndAddress)
	if startAddr == "" || endAddr == "" {
		return nil, fmt.Errorf("start and end addresses are required")
	}

	start, err := s.geocode(ctx, startAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode start address %q: %w", startAddr, err)
	}

	end, err := s.geocode(ctx, endAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode end address %q: %w", endAddr, err)
	}

	box := spatial.BoundingBoxFromPoints(
		start.Latitude, start.Longitude,
		end.Latitude, end.Longitude,
	).Expand(s.margin)

	nearby := s.hotspots.FindWithin(box)

	highRisk := 0
	for _, h := range nearby {
		if h.IsHighRisk() {
			highRisk++
		}
	}

	distance := spatial.HaversineDistance(
		start.Latitude, start.Longitude,
		end.Latitude, end.Longitude,
	)

	record := &models.RouteQuery{
		ID:             uuid.NewString(),
		StartAddress:   startAddr,
		EndAddress:     endAddr,
		StartLat:       start.Latitude,
		StartLon:       start.Longitude,
		EndLat:         end.Latitude,
		EndLon:         end.Longitude,
		DistanceMeters: distance,
		NearbyCount:    len(nearby),
		HighRiskCount:  highRisk,
	}
	if err := s.routeRepo.Insert(record); err != nil {
		return nil, fmt.Errorf("failed to record route query: %w", err)
	}

	return &models.RouteQueryResponse{
		ID: record.ID,
		Start: models.Endpoint{
			Address:     startAddr,
			DisplayName: start.DisplayName,
			Latitude:    start.Latitude,
			Longitude:   start.Longitude,
		},
		End: models.Endpoint{
			Address:     endAddr,
			DisplayName: end.DisplayName,
			Latitude:    end.Latitude,
			Longitude:   end.Longitude,
		},
		Path: []models.Coordinate{
			{Latitude: start.Latitude, Longitude: start.Longitude},
			{Latitude: end.Latitude, Longitude: end.Longitude},
		},
		Bounds: models.Bounds{
			MinLat: box.MinLat,
			MaxLat: box.MaxLat,
			MinLon: box.MinLon,
			MaxLon: box.MaxLon,
		},
		DistanceMeters: distance,
		NearbyCount:    len(nearby),
		HighRiskCount:  highRisk,
		Hotspots:       nearby,
	}, nil
}

// geocode delegates to the geocoder, tagging failures that are not
// "no results" so callers can report an upstream problem
func (s *RouteService) geocode(ctx context.Context, address string) (geocode.Location, error) {
	loc, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			return geocode.Location{}, err
		}
		return geocode.Location{}, fmt.Errorf("%w: %v", ErrGeocodeUnavailable, err)
	}
	return loc, nil
}

// History retrieves past route queries with pagination
func (s *RouteService) History(filter models.RouteHistoryFilter) (*models.RouteHistoryResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 200 {
		filter.PageSize = 200
	}

	queries, total, err := s.routeRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list route history: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.RouteHistoryResponse{
		Data:       queries,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}
