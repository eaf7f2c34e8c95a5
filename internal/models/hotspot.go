package models

import "time"

// Risk levels for hotspot classification
const (
	RiskLevelHigh   = "HIGH"
	RiskLevelMedium = "MEDIUM"
	RiskLevelLow    = "LOW"
)

// Incident count thresholds for classification
const (
	HighRiskMinIncidents   = 5 // 5 or more incidents
	MediumRiskMinIncidents = 2 // 2-4 incidents
)

// Marker colors by risk level (orange reads better than yellow on the map)
const (
	ColorHigh   = "red"
	ColorMedium = "orange"
	ColorLow    = "green"
)

// Risk labels shown in marker popups
const (
	RiskLabelHigh   = "高危險 (5次以上)"
	RiskLabelMedium = "注意 (2-4次)"
	RiskLabelLow    = "曾經發生 (1次)"
)

// Hotspot represents a simulated traffic-accident hotspot
type Hotspot struct {
	ID            int64     `json:"id" db:"id"`
	Latitude      float64   `json:"latitude" db:"latitude"`
	Longitude     float64   `json:"longitude" db:"longitude"`
	IncidentCount int       `json:"incident_count" db:"incident_count"`
	RiskLevel     string    `json:"risk_level" db:"risk_level"`
	RiskLabel     string    `json:"risk_label" db:"risk_label"`
	Color         string    `json:"color" db:"color"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ClassifyIncidentCount maps a historical incident count to a risk level,
// marker color and popup label
func ClassifyIncidentCount(count int) (level, color, label string) {
	switch {
	case count >= HighRiskMinIncidents:
		return RiskLevelHigh, ColorHigh, RiskLabelHigh
	case count >= MediumRiskMinIncidents:
		return RiskLevelMedium, ColorMedium, RiskLabelMedium
	default:
		return RiskLevelLow, ColorLow, RiskLabelLow
	}
}

// Classify fills the derived risk fields from IncidentCount
func (h *Hotspot) Classify() {
	h.RiskLevel, h.Color, h.RiskLabel = ClassifyIncidentCount(h.IncidentCount)
}

// IsHighRisk reports whether the hotspot is in the highest risk bucket
func (h *Hotspot) IsHighRisk() bool {
	return h.IncidentCount >= HighRiskMinIncidents
}

// HotspotsResponse represents a paginated response of hotspots
type HotspotsResponse struct {
	Data       []Hotspot `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
