package service

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hotspotnav/traffic-backend-go/internal/models"
	"github.com/hotspotnav/traffic-backend-go/internal/repository"
	"github.com/hotspotnav/traffic-backend-go/internal/simulate"
	"github.com/hotspotnav/traffic-backend-go/internal/spatial"
)

// SeedOptions controls the simulated hotspot table
type SeedOptions struct {
	BaseLat float64
	BaseLon float64
	Jitter  float64 // Uniform jitter in degrees on each axis
	Count   int
}

// HotspotService handles business logic for hotspots
type HotspotService struct {
	repo  *repository.HotspotRepository
	index *spatial.Index
	opts  SeedOptions
}

// NewHotspotService creates a new hotspot service
func NewHotspotService(repo *repository.HotspotRepository, index *spatial.Index, opts SeedOptions) *HotspotService {
	if opts.Count <= 0 {
		opts.Count = simulate.DefaultCount
	}
	if opts.Jitter <= 0 {
		opts.Jitter = simulate.DefaultJitterDegree
	}
	return &HotspotService{
		repo:  repo,
		index: index,
		opts:  opts,
	}
}

// EnsureSeeded seeds the hotspot table on first start and builds the
// spatial index from whatever the table holds
func (s *HotspotService) EnsureSeeded() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check hotspot table: %w", err)
	}

	if count == 0 {
		n, err := s.Reseed()
		if err != nil {
			return err
		}
		log.Printf("Seeded %d simulated hotspots", n)
		return nil
	}

	hotspots, err := s.repo.All()
	if err != nil {
		return fmt.Errorf("failed to load hotspots: %w", err)
	}
	s.index.Rebuild(hotspots)

	return nil
}

// Reseed regenerates the simulated table and rebuilds the spatial index
func (s *HotspotService) Reseed() (int, error) {
	gen := simulate.NewGenerator(s.opts.BaseLat, s.opts.BaseLon, s.opts.Jitter, time.Now().UnixNano())
	hotspots := gen.Generate(s.opts.Count)

	if err := s.repo.ReplaceAll(hotspots); err != nil {
		return 0, fmt.Errorf("failed to store hotspots: %w", err)
	}

	// Re-read so indexed entries carry their assigned IDs
	stored, err := s.repo.All()
	if err != nil {
		return 0, fmt.Errorf("failed to reload hotspots: %w", err)
	}
	s.index.Rebuild(stored)

	return len(stored), nil
}

// List retrieves hotspots with filtering and pagination
func (s *HotspotService) List(filter models.HotspotFilter) (*models.HotspotsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	hotspots, total, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotspots: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.HotspotsResponse{
		Data:       hotspots,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetByID retrieves a single hotspot
func (s *HotspotService) GetByID(id int64) (*models.Hotspot, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get hotspot: %w", err)
	}
	if h == nil {
		return nil, fmt.Errorf("hotspot not found")
	}
	return h, nil
}

// GetStatistics returns the risk distribution plus a preview of the raw table
func (s *HotspotService) GetStatistics(previewSize int) (*models.HotspotStatistics, error) {
	if previewSize < 1 {
		previewSize = 5
	}
	if previewSize > 50 {
		previewSize = 50
	}

	stats, err := s.repo.GetStatistics()
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	preview, _, err := s.repo.List(models.HotspotFilter{Page: 1, PageSize: previewSize})
	if err != nil {
		return nil, fmt.Errorf("failed to get preview: %w", err)
	}
	stats.Preview = preview

	return stats, nil
}

// FindWithin returns the hotspots inside the box, served from the spatial index
func (s *HotspotService) FindWithin(box spatial.BoundingBox) []models.Hotspot {
	return s.index.Search(box)
}
