package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hotspotnav/traffic-backend-go/internal/models"
)

// RouteRepository handles database operations for route query history
type RouteRepository struct {
	db *sql.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Insert records a completed route query
func (r *RouteRepository) Insert(q *models.RouteQuery) error {
	_, err := r.db.Exec(`INSERT INTO route_queries
		(id, start_address, end_address, start_lat, start_lon, end_lat, end_lon,
		distance_meters, nearby_count, high_risk_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.StartAddress, q.EndAddress,
		q.StartLat, q.StartLon, q.EndLat, q.EndLon,
		q.DistanceMeters, q.NearbyCount, q.HighRiskCount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route query: %w", err)
	}
	return nil
}

// List retrieves past route queries, newest first
func (r *RouteRepository) List(filter models.RouteHistoryFilter) ([]models.RouteQuery, int64, error) {
	query := `SELECT id, start_address, end_address, start_lat, start_lon,
		end_lat, end_lon, distance_meters, nearby_count, high_risk_count, created_at
		FROM route_queries`

	var conditions []string
	var args []interface{}

	if filter.StartAddress != "" {
		conditions = append(conditions, "start_address = ?")
		args = append(args, filter.StartAddress)
	}
	if filter.EndAddress != "" {
		conditions = append(conditions, "end_address = ?")
		args = append(args, filter.EndAddress)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM route_queries"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count route queries: %w", err)
	}

	query += " ORDER BY created_at DESC, id DESC"
	query += " LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query route history: %w", err)
	}
	defer rows.Close()

	var queries []models.RouteQuery
	for rows.Next() {
		var q models.RouteQuery
		if err := rows.Scan(
			&q.ID, &q.StartAddress, &q.EndAddress,
			&q.StartLat, &q.StartLon, &q.EndLat, &q.EndLon,
			&q.DistanceMeters, &q.NearbyCount, &q.HighRiskCount, &q.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan route query: %w", err)
		}
		queries = append(queries, q)
	}

	return queries, total, rows.Err()
}
