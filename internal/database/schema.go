package database

import (
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL for all tables
var schema = []string{
	`CREATE TABLE IF NOT EXISTS hotspots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		incident_count INTEGER NOT NULL,
		risk_level TEXT NOT NULL,
		risk_label TEXT NOT NULL,
		color TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hotspots_coords ON hotspots(latitude, longitude)`,
	`CREATE INDEX IF NOT EXISTS idx_hotspots_risk ON hotspots(risk_level)`,
	`CREATE TABLE IF NOT EXISTS route_queries (
		id TEXT PRIMARY KEY,
		start_address TEXT NOT NULL,
		end_address TEXT NOT NULL,
		start_lat REAL NOT NULL,
		start_lon REAL NOT NULL,
		end_lat REAL NOT NULL,
		end_lon REAL NOT NULL,
		distance_meters REAL NOT NULL,
		nearby_count INTEGER NOT NULL,
		high_risk_count INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_route_queries_created ON route_queries(created_at)`,
}

// Migrate creates the schema if it does not exist yet
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
