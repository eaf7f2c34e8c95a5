package models

import "time"

// Coordinate is a latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bounds is a latitude/longitude rectangle, used for fitting the map viewport
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// RouteQueryRequest represents a route risk query between two addresses
type RouteQueryRequest struct {
	StartAddress string `json:"start_address" binding:"required"`
	EndAddress   string `json:"end_address" binding:"required"`
}

// Endpoint is a geocoded route endpoint
type Endpoint struct {
	Address     string  `json:"address"`
	DisplayName string  `json:"display_name,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// RouteQueryResponse represents the result of a route risk query.
// Path is the straight line between the two endpoints, not a computed route.
type RouteQueryResponse struct {
	ID             string       `json:"id"`
	Start          Endpoint     `json:"start"`
	End            Endpoint     `json:"end"`
	Path           []Coordinate `json:"path"`
	Bounds         Bounds       `json:"bounds"`
	DistanceMeters float64      `json:"distance_meters"`
	NearbyCount    int          `json:"nearby_count"`
	HighRiskCount  int          `json:"high_risk_count"`
	Hotspots       []Hotspot    `json:"hotspots"`
}

// RouteQuery is a persisted record of a route risk query
type RouteQuery struct {
	ID             string    `json:"id" db:"id"` // UUID
	StartAddress   string    `json:"start_address" db:"start_address"`
	EndAddress     string    `json:"end_address" db:"end_address"`
	StartLat       float64   `json:"start_lat" db:"start_lat"`
	StartLon       float64   `json:"start_lon" db:"start_lon"`
	EndLat         float64   `json:"end_lat" db:"end_lat"`
	EndLon         float64   `json:"end_lon" db:"end_lon"`
	DistanceMeters float64   `json:"distance_meters" db:"distance_meters"`
	NearbyCount    int       `json:"nearby_count" db:"nearby_count"`
	HighRiskCount  int       `json:"high_risk_count" db:"high_risk_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// RouteHistoryResponse represents a paginated response of past route queries
type RouteHistoryResponse struct {
	Data       []RouteQuery `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
