// Package geo provides the pure geometric helpers the planner needs: linear
// interpolation along a decoded polyline, and a thin wrapper around a
// polyline-decoding library.
package geo

import "math"

// coordinate mirrors domain.Coordinate without importing internal/domain, so
// this package stays a leaf with no dependency on the route model.
type coordinate interface {
	Lon() float64
	Lat() float64
}

// PointAlongLine returns the point exactly targetM meters along coords,
// treated as straight line segments in coordinate space (planar, not great-
// circle — matching the source's use of shapely's LineString.interpolate).
// If targetM exceeds the polyline's total length, the final vertex is
// returned. Coords must be non-empty; behavior is undefined otherwise.
func PointAlongLine[C coordinate](coords []C, targetM float64) [2]float64 {
	if len(coords) == 1 {
		return [2]float64{coords[0].Lon(), coords[0].Lat()}
	}

	remaining := targetM
	for i := 0; i < len(coords)-1; i++ {
		a, b := coords[i], coords[i+1]
		segLen := planarDistance(a.Lon(), a.Lat(), b.Lon(), b.Lat())
		if remaining <= segLen || i == len(coords)-2 {
			if segLen == 0 {
				return [2]float64{a.Lon(), a.Lat()}
			}
			frac := remaining / segLen
			if frac > 1 {
				frac = 1
			}
			if frac < 0 {
				frac = 0
			}
			return [2]float64{
				a.Lon() + (b.Lon()-a.Lon())*frac,
				a.Lat() + (b.Lat()-a.Lat())*frac,
			}
		}
		remaining -= segLen
	}

	last := coords[len(coords)-1]
	return [2]float64{last.Lon(), last.Lat()}
}

func planarDistance(lon1, lat1, lon2, lat2 float64) float64 {
	dLon := lon2 - lon1
	dLat := lat2 - lat1
	return math.Hypot(dLon, dLat)
}
