package simulate

import (
	"math/rand"

	"github.com/hotspotnav/traffic-backend-go/internal/models"
)

// Defaults for the simulated dataset: points jittered around
// Taichung Station (台中車站)
const (
	DefaultBaseLat      = 24.1477
	DefaultBaseLon      = 120.6733
	DefaultJitterDegree = 0.05
	DefaultCount        = 100
)

// weightedChoice pairs an incident count with its sampling weight
type weightedChoice struct {
	Count  int
	Weight float64
}

// incidentChoices models how often hotspots of each severity appear
var incidentChoices = []weightedChoice{
	{Count: 1, Weight: 0.5},
	{Count: 3, Weight: 0.3},
	{Count: 6, Weight: 0.2},
}

// Generator produces simulated hotspots around a base coordinate
type Generator struct {
	rng     *rand.Rand
	baseLat float64
	baseLon float64
	jitter  float64
}

// NewGenerator creates a generator seeded for reproducibility
func NewGenerator(baseLat, baseLon, jitter float64, seed int64) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		baseLat: baseLat,
		baseLon: baseLon,
		jitter:  jitter,
	}
}

// Generate produces n hotspots with classified risk fields
func (g *Generator) Generate(n int) []models.Hotspot {
	hotspots := make([]models.Hotspot, 0, n)
	for i := 0; i < n; i++ {
		h := models.Hotspot{
			Latitude:      g.baseLat + g.uniform(-g.jitter, g.jitter),
			Longitude:     g.baseLon + g.uniform(-g.jitter, g.jitter),
			IncidentCount: g.sampleIncidentCount(),
		}
		h.Classify()
		hotspots = append(hotspots, h)
	}
	return hotspots
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// sampleIncidentCount draws an incident count with the configured weights
func (g *Generator) sampleIncidentCount() int {
	var total float64
	for _, c := range incidentChoices {
		total += c.Weight
	}

	r := g.rng.Float64() * total
	for _, c := range incidentChoices {
		if r < c.Weight {
			return c.Count
		}
		r -= c.Weight
	}
	return incidentChoices[len(incidentChoices)-1].Count
}
