package spatial

import (
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/hotspotnav/traffic-backend-go/internal/models"
)

// pointTolerance gives point entries a tiny non-zero envelope,
// required by the R-tree
const pointTolerance = 1e-6

type indexedHotspot struct {
	hotspot  models.Hotspot
	envelope rtreego.Rect
}

func (ih *indexedHotspot) Bounds() rtreego.Rect {
	return ih.envelope
}

// Index is an in-memory R-tree over the hotspot table. It is rebuilt
// whenever the table is reseeded.
type Index struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
	size int
}

// NewIndex creates an empty hotspot index
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(2, 25, 50)}
}

// Rebuild replaces the index contents with the given hotspots
func (idx *Index) Rebuild(hotspots []models.Hotspot) {
	tree := rtreego.NewTree(2, 25, 50)
	for _, h := range hotspots {
		rect, err := rtreego.NewRect(
			rtreego.Point{h.Latitude, h.Longitude},
			[]float64{pointTolerance, pointTolerance})
		if err != nil {
			continue
		}
		tree.Insert(&indexedHotspot{hotspot: h, envelope: rect})
	}

	idx.mu.Lock()
	idx.tree = tree
	idx.size = len(hotspots)
	idx.mu.Unlock()
}

// Search returns the hotspots inside the box, edges inclusive
func (idx *Index) Search(box BoundingBox) []models.Hotspot {
	idx.mu.RLock()
	tree := idx.tree
	idx.mu.RUnlock()

	latSpan := box.MaxLat - box.MinLat
	lonSpan := box.MaxLon - box.MinLon
	if latSpan <= 0 {
		latSpan = pointTolerance
	}
	if lonSpan <= 0 {
		lonSpan = pointTolerance
	}

	rect, err := rtreego.NewRect(
		rtreego.Point{box.MinLat, box.MinLon},
		[]float64{latSpan, lonSpan})
	if err != nil {
		return nil
	}

	var results []models.Hotspot
	for _, item := range tree.SearchIntersect(rect) {
		ih := item.(*indexedHotspot)
		if box.Contains(ih.hotspot.Latitude, ih.hotspot.Longitude) {
			results = append(results, ih.hotspot)
		}
	}
	return results
}

// Size returns the number of indexed hotspots
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}
