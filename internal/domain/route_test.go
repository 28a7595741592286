package domain

import "testing"

func TestCoordinateRounded(t *testing.T) {
	c := Coordinate{-122.4194123456, 37.7749123456}
	got := c.Rounded()
	want := Coordinate{-122.419412, 37.774912}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRouteCloneDoesNotAliasSlices(t *testing.T) {
	r := Route{
		Segments: []Segment{{Steps: []Step{{Distance: 1}}}},
		Coordinates: []Coordinate{{0, 0}},
		WayPoints:   []int{0, 1},
		BBox:        []float64{0, 0, 1, 1},
	}

	clone := r.Clone()
	clone.Segments[0].Steps[0].Distance = 99
	clone.Coordinates[0] = Coordinate{9, 9}
	clone.WayPoints[0] = 99
	clone.BBox[0] = 99

	if r.Segments[0].Steps[0].Distance == 99 {
		t.Fatal("mutating clone's steps mutated the original")
	}
	if r.Coordinates[0] == (Coordinate{9, 9}) {
		t.Fatal("mutating clone's coordinates mutated the original")
	}
	if r.WayPoints[0] == 99 {
		t.Fatal("mutating clone's way_points mutated the original")
	}
	if r.BBox[0] == 99 {
		t.Fatal("mutating clone's bbox mutated the original")
	}
}
