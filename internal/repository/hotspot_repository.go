package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hotspotnav/traffic-backend-go/internal/database"
	"github.com/hotspotnav/traffic-backend-go/internal/models"
)

// HotspotRepository handles database operations for hotspots
type HotspotRepository struct {
	db *sql.DB
}

// NewHotspotRepository creates a new hotspot repository
func NewHotspotRepository(db *sql.DB) *HotspotRepository {
	return &HotspotRepository{db: db}
}

const hotspotColumns = `id, latitude, longitude, incident_count, risk_level, risk_label, color, created_at`

// List retrieves hotspots with filtering and pagination
func (r *HotspotRepository) List(filter models.HotspotFilter) ([]models.Hotspot, int64, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots`

	var conditions []string
	var args []interface{}

	if filter.MinLat != 0 {
		conditions = append(conditions, "latitude >= ?")
		args = append(args, filter.MinLat)
	}
	if filter.MaxLat != 0 {
		conditions = append(conditions, "latitude <= ?")
		args = append(args, filter.MaxLat)
	}
	if filter.MinLon != 0 {
		conditions = append(conditions, "longitude >= ?")
		args = append(args, filter.MinLon)
	}
	if filter.MaxLon != 0 {
		conditions = append(conditions, "longitude <= ?")
		args = append(args, filter.MaxLon)
	}
	if filter.RiskLevel != "" {
		conditions = append(conditions, "risk_level = ?")
		args = append(args, filter.RiskLevel)
	}
	if filter.MinIncidents > 0 {
		conditions = append(conditions, "incident_count >= ?")
		args = append(args, filter.MinIncidents)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM hotspots"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count hotspots: %w", err)
	}

	// Most severe first, stable within a severity bucket
	query += " ORDER BY incident_count DESC, id ASC"
	query += " LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query hotspots: %w", err)
	}
	defer rows.Close()

	hotspots, err := scanHotspots(rows)
	if err != nil {
		return nil, 0, err
	}

	return hotspots, total, nil
}

// GetByID retrieves a single hotspot
func (r *HotspotRepository) GetByID(id int64) (*models.Hotspot, error) {
	query := `SELECT ` + hotspotColumns + ` FROM hotspots WHERE id = ?`

	var h models.Hotspot
	err := r.db.QueryRow(query, id).Scan(
		&h.ID, &h.Latitude, &h.Longitude, &h.IncidentCount,
		&h.RiskLevel, &h.RiskLabel, &h.Color, &h.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hotspot: %w", err)
	}

	return &h, nil
}

// All retrieves every hotspot, used to rebuild the spatial index
func (r *HotspotRepository) All() ([]models.Hotspot, error) {
	rows, err := r.db.Query(`SELECT ` + hotspotColumns + ` FROM hotspots ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotspots: %w", err)
	}
	defer rows.Close()

	return scanHotspots(rows)
}

// Count returns the number of stored hotspots
func (r *HotspotRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM hotspots").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count hotspots: %w", err)
	}
	return total, nil
}

// ReplaceAll wipes the table and inserts the given hotspots in one transaction
func (r *HotspotRepository) ReplaceAll(hotspots []models.Hotspot) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM hotspots"); err != nil {
			return fmt.Errorf("failed to clear hotspots: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO hotspots
			(latitude, longitude, incident_count, risk_level, risk_label, color)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, h := range hotspots {
			if _, err := stmt.Exec(
				h.Latitude, h.Longitude, h.IncidentCount,
				h.RiskLevel, h.RiskLabel, h.Color,
			); err != nil {
				return fmt.Errorf("failed to insert hotspot: %w", err)
			}
		}

		return nil
	})
}

// GetStatistics aggregates the risk distribution over the whole table
func (r *HotspotRepository) GetStatistics() (*models.HotspotStatistics, error) {
	stats := &models.HotspotStatistics{}

	err := r.db.QueryRow(`SELECT COUNT(*),
		COALESCE(SUM(incident_count), 0),
		COALESCE(MAX(incident_count), 0)
		FROM hotspots`).Scan(&stats.Total, &stats.TotalIncidents, &stats.MaxIncidents)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate hotspots: %w", err)
	}

	counts := make(map[string]int)
	rows, err := r.db.Query(`SELECT risk_level, COUNT(*) FROM hotspots GROUP BY risk_level`)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan risk bucket: %w", err)
		}
		counts[level] = count
	}

	// Fixed bucket order: high, medium, low
	for _, level := range []string{models.RiskLevelHigh, models.RiskLevelMedium, models.RiskLevelLow} {
		_, color, label := bucketAttributes(level)
		stats.Distribution = append(stats.Distribution, models.RiskBucket{
			RiskLevel: level,
			RiskLabel: label,
			Color:     color,
			Count:     counts[level],
		})
	}

	return stats, nil
}

func bucketAttributes(level string) (string, string, string) {
	switch level {
	case models.RiskLevelHigh:
		return level, models.ColorHigh, models.RiskLabelHigh
	case models.RiskLevelMedium:
		return level, models.ColorMedium, models.RiskLabelMedium
	default:
		return level, models.ColorLow, models.RiskLabelLow
	}
}

func scanHotspots(rows *sql.Rows) ([]models.Hotspot, error) {
	var hotspots []models.Hotspot
	for rows.Next() {
		var h models.Hotspot
		if err := rows.Scan(
			&h.ID, &h.Latitude, &h.Longitude, &h.IncidentCount,
			&h.RiskLevel, &h.RiskLabel, &h.Color, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hotspot: %w", err)
		}
		hotspots = append(hotspots, h)
	}
	return hotspots, rows.Err()
}
