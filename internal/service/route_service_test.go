package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hotspotnav/traffic-backend-go/internal/database"
	"github.com/hotspotnav/traffic-backend-go/internal/geocode"
	"github.com/hotspotnav/traffic-backend-go/internal/models"
	"github.com/hotspotnav/traffic-backend-go/internal/repository"
	"github.com/hotspotnav/traffic-backend-go/internal/spatial"
)

type fakeGeocoder struct {
	locations map[string]geocode.Location
	err       error
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (geocode.Location, error) {
	if f.err != nil {
		return geocode.Location{}, f.err
	}
	loc, ok := f.locations[address]
	if !ok {
		return geocode.Location{}, geocode.ErrNotFound
	}
	return loc, nil
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// newTestHotspotService stores the given hotspots and builds the index
func newTestHotspotService(t *testing.T, db *sql.DB, hotspots []models.Hotspot) *HotspotService {
	t.Helper()

	repo := repository.NewHotspotRepository(db)
	for i := range hotspots {
		hotspots[i].Classify()
	}
	require.NoError(t, repo.ReplaceAll(hotspots))

	svc := NewHotspotService(repo, spatial.NewIndex(), SeedOptions{
		BaseLat: 24.1477, BaseLon: 120.6733,
	})
	require.NoError(t, svc.EnsureSeeded())
	return svc
}

func TestQueryRoute(t *testing.T) {
	db := openTestDB(t)

	hotspotSvc := newTestHotspotService(t, db, []models.Hotspot{
		{Latitude: 24.150, Longitude: 120.670, IncidentCount: 6}, // inside box, high risk
		{Latitude: 24.160, Longitude: 120.680, IncidentCount: 3}, // inside box
		{Latitude: 24.145, Longitude: 120.689, IncidentCount: 1}, // inside only via margin
		{Latitude: 24.500, Longitude: 121.000, IncidentCount: 6}, // far away
	})

	geocoder := &fakeGeocoder{locations: map[string]geocode.Location{
		"台中火車站": {Latitude: 24.1369, Longitude: 120.6869, DisplayName: "台中車站"},
		"逢甲大學":  {Latitude: 24.1793, Longitude: 120.6466, DisplayName: "逢甲大學"},
	}}

	routeRepo := repository.NewRouteRepository(db)
	svc := NewRouteService(geocoder, hotspotSvc, routeRepo, 0.01)

	result, err := svc.QueryRoute(context.Background(), models.RouteQueryRequest{
		StartAddress: "台中火車站",
		EndAddress:   "逢甲大學",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.NearbyCount)
	assert.Equal(t, 1, result.HighRiskCount)
	assert.Len(t, result.Hotspots, 3)

	// Straight line: exactly the two endpoints
	require.Len(t, result.Path, 2)
	assert.Equal(t, 24.1369, result.Path[0].Latitude)
	assert.Equal(t, 24.1793, result.Path[1].Latitude)

	// Bounds are the endpoint box padded by the margin
	assert.InDelta(t, 24.1369-0.01, result.Bounds.MinLat, 1e-9)
	assert.InDelta(t, 24.1793+0.01, result.Bounds.MaxLat, 1e-9)
	assert.InDelta(t, 120.6466-0.01, result.Bounds.MinLon, 1e-9)
	assert.InDelta(t, 120.6869+0.01, result.Bounds.MaxLon, 1e-9)

	assert.Greater(t, result.DistanceMeters, 1000.0)
	assert.NotEmpty(t, result.ID)

	// Query recorded in history
	history, err := svc.History(models.RouteHistoryFilter{})
	require.NoError(t, err)
	require.Len(t, history.Data, 1)
	assert.Equal(t, result.ID, history.Data[0].ID)
	assert.Equal(t, 3, history.Data[0].NearbyCount)
}

func TestQueryRouteAddressNotFound(t *testing.T) {
	db := openTestDB(t)
	hotspotSvc := newTestHotspotService(t, db, nil)

	geocoder := &fakeGeocoder{locations: map[string]geocode.Location{
		"台中火車站": {Latitude: 24.1369, Longitude: 120.6869},
	}}
	svc := NewRouteService(geocoder, hotspotSvc, repository.NewRouteRepository(db), 0.01)

	_, err := svc.QueryRoute(context.Background(), models.RouteQueryRequest{
		StartAddress: "台中火車站",
		EndAddress:   "不存在的地方",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, geocode.ErrNotFound))

	// Failed queries are not recorded
	history, err := svc.History(models.RouteHistoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, history.Data)
}

func TestQueryRouteGeocoderUnavailable(t *testing.T) {
	db := openTestDB(t)
	hotspotSvc := newTestHotspotService(t, db, nil)

	geocoder := &fakeGeocoder{err: fmt.Errorf("connection refused")}
	svc := NewRouteService(geocoder, hotspotSvc, repository.NewRouteRepository(db), 0.01)

	_, err := svc.QueryRoute(context.Background(), models.RouteQueryRequest{
		StartAddress: "A",
		EndAddress:   "B",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeocodeUnavailable))
	assert.False(t, errors.Is(err, geocode.ErrNotFound))
}

func TestQueryRouteBlankAddresses(t *testing.T) {
	db := openTestDB(t)
	hotspotSvc := newTestHotspotService(t, db, nil)
	svc := NewRouteService(&fakeGeocoder{}, hotspotSvc, repository.NewRouteRepository(db), 0.01)

	_, err := svc.QueryRoute(context.Background(), models.RouteQueryRequest{
		StartAddress: "  ",
		EndAddress:   "B",
	})
	assert.Error(t, err)
}
