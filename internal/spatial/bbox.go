package spatial

// BoundingBox is a latitude/longitude rectangle used as a coarse proximity filter
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundingBoxFromPoints builds the box spanning two coordinates
func BoundingBoxFromPoints(lat1, lon1, lat2, lon2 float64) BoundingBox {
	box := BoundingBox{
		MinLat: lat1, MaxLat: lat2,
		MinLon: lon1, MaxLon: lon2,
	}
	if lat2 < lat1 {
		box.MinLat, box.MaxLat = lat2, lat1
	}
	if lon2 < lon1 {
		box.MinLon, box.MaxLon = lon2, lon1
	}
	return box
}

// Expand grows the box by margin degrees on every side
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
	}
}

// Contains reports whether the point lies inside the box, edges inclusive
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Center returns the geometric center of the box
func (b BoundingBox) Center() (float64, float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}
