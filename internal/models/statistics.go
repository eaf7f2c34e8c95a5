package models

// RiskBucket is one bar of the risk distribution chart
type RiskBucket struct {
	RiskLevel string `json:"risk_level"`
	RiskLabel string `json:"risk_label"`
	Color     string `json:"color"`
	Count     int    `json:"count"`
}

// HotspotStatistics represents the hotspot overview returned by the stats endpoint
type HotspotStatistics struct {
	Total          int          `json:"total"`
	Distribution   []RiskBucket `json:"distribution"`
	TotalIncidents int          `json:"total_incidents"`
	MaxIncidents   int          `json:"max_incidents"`
	Preview        []Hotspot    `json:"preview"` // First few rows of the raw table
}
