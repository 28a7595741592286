package geo

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// DecodedCoordinate is a concrete [lon, lat] point satisfying the
// coordinate constraint used by PointAlongLine.
type DecodedCoordinate [2]float64

func (c DecodedCoordinate) Lon() float64 { return c[0] }
func (c DecodedCoordinate) Lat() float64 { return c[1] }

// DecodePolyline decodes an encoded polyline string into an ordered list of
// [lon, lat] points. Decoding itself is treated as a library concern (spec
// out of scope); go-polyline returns [lat, lon] pairs, so this flips them to
// match the [lon, lat] convention the rest of the core uses.
func DecodePolyline(encoded string) ([]DecodedCoordinate, error) {
	if encoded == "" {
		return nil, fmt.Errorf("geo: empty encoded geometry")
	}

	latLngs, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("geo: decode polyline: %w", err)
	}

	out := make([]DecodedCoordinate, len(latLngs))
	for i, pair := range latLngs {
		out[i] = DecodedCoordinate{pair[1], pair[0]}
	}
	return out, nil
}
