package geo

import "testing"

func TestPointAlongLineMidSegment(t *testing.T) {
	coords := []DecodedCoordinate{{0, 0}, {1, 0}, {2, 0}}

	got := PointAlongLine(coords, 0.5)
	want := [2]float64{0.5, 0}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPointAlongLineClampsPastEnd(t *testing.T) {
	coords := []DecodedCoordinate{{0, 0}, {1, 0}}

	got := PointAlongLine(coords, 10)
	want := [2]float64{1, 0}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPointAlongLineSinglePoint(t *testing.T) {
	coords := []DecodedCoordinate{{3, 4}}

	got := PointAlongLine(coords, 5)
	want := [2]float64{3, 4}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPointAlongLineCrossesSegmentBoundary(t *testing.T) {
	coords := []DecodedCoordinate{{0, 0}, {1, 0}, {1, 1}}

	got := PointAlongLine(coords, 1.5)
	want := [2]float64{1, 0.5}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPointAlongLineZeroLengthSegment(t *testing.T) {
	coords := []DecodedCoordinate{{0, 0}, {0, 0}, {2, 0}}

	got := PointAlongLine(coords, 1)
	want := [2]float64{1, 0}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
