package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Point2D struct {
	x float64
	y float64
}

type Segment struct {
	start Point2D
	end   Point2D
}

func (p Point2D) DistanceTo(q Point2D) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return math.Sqrt(dx*dx + dy*dy)
}

func (s Segment) Midpoint() Point2D {
	return Point2D{(s.start.x + s.end.x) / 2, (s.start.y + s.end.y) / 2}
}

// DistanceToPoint gives the distance from p to the finite segment: project p
// onto the segment's line, clamp the projection parameter to [0,1], and
// measure from the clamped point.
func (s Segment) DistanceToPoint(p Point2D) float64 {
	dx := s.end.x - s.start.x
	dy := s.end.y - s.start.y

	norm := dx*dx + dy*dy
	if norm == 0 {
		// zero-length segment: both endpoints coincide
		return p.DistanceTo(s.start)
	}

	u := ((p.x-s.start.x)*dx + (p.y-s.start.y)*dy) / norm
	if u > 1 {
		u = 1
	} else if u < 0 {
		u = 0
	}

	return p.DistanceTo(Point2D{s.start.x + u*dx, s.start.y + u*dy})
}

// nearestWallDistance gives the distance from the midpoint of probe to the
// nearest segment in walls. An empty wall set means no wall is known yet and
// reads as infinitely far.
func nearestWallDistance(probe Segment, walls []Segment) float64 {
	if len(walls) == 0 {
		return math.Inf(1)
	}

	mid := probe.Midpoint()
	dists := make([]float64, len(walls))
	for i := range walls {
		dists[i] = walls[i].DistanceToPoint(mid)
	}

	return floats.Min(dists)
}
