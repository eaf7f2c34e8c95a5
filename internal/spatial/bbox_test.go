package spatial

import "testing"

func TestBoundingBoxFromPoints(t *testing.T) {
	// Endpoints given in either order span the same box
	a := BoundingBoxFromPoints(24.14, 120.68, 24.18, 120.64)
	b := BoundingBoxFromPoints(24.18, 120.64, 24.14, 120.68)

	if a != b {
		t.Errorf("box depends on endpoint order: %+v vs %+v", a, b)
	}
	if a.MinLat != 24.14 || a.MaxLat != 24.18 || a.MinLon != 120.64 || a.MaxLon != 120.68 {
		t.Errorf("unexpected box: %+v", a)
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	box := BoundingBox{MinLat: 24.14, MaxLat: 24.18, MinLon: 120.64, MaxLon: 120.68}
	expanded := box.Expand(0.01)

	want := BoundingBox{MinLat: 24.13, MaxLat: 24.19, MinLon: 120.63, MaxLon: 120.69}
	if expanded != want {
		t.Errorf("Expand(0.01) = %+v, want %+v", expanded, want)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{MinLat: 24.0, MaxLat: 25.0, MinLon: 120.0, MaxLon: 121.0}

	cases := []struct {
		lat, lon float64
		want     bool
	}{
		{24.5, 120.5, true},
		{24.0, 120.0, true}, // edges are inclusive
		{25.0, 121.0, true},
		{23.999, 120.5, false},
		{24.5, 121.001, false},
	}

	for _, tc := range cases {
		if got := box.Contains(tc.lat, tc.lon); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	box := BoundingBox{MinLat: 24.0, MaxLat: 25.0, MinLon: 120.0, MaxLon: 121.0}
	lat, lon := box.Center()
	if lat != 24.5 || lon != 120.5 {
		t.Errorf("Center() = (%v, %v), want (24.5, 120.5)", lat, lon)
	}
}
