package models

// HotspotFilter represents filter parameters for querying hotspots
type HotspotFilter struct {
	MinLat       float64 `form:"minLat"`
	MaxLat       float64 `form:"maxLat"`
	MinLon       float64 `form:"minLon"`
	MaxLon       float64 `form:"maxLon"`
	RiskLevel    string  `form:"riskLevel"`    // HIGH, MEDIUM, LOW
	MinIncidents int     `form:"minIncidents"` // Minimum incident count
	Page         int     `form:"page"`
	PageSize     int     `form:"pageSize"`
}

// HasBounds reports whether the filter carries a bounding box
func (f HotspotFilter) HasBounds() bool {
	return f.MinLat != 0 || f.MaxLat != 0 || f.MinLon != 0 || f.MaxLon != 0
}

// RouteHistoryFilter represents filter parameters for querying past route queries
type RouteHistoryFilter struct {
	StartAddress string `form:"startAddress"`
	EndAddress   string `form:"endAddress"`
	Page         int    `form:"page"`
	PageSize     int    `form:"pageSize"`
}
