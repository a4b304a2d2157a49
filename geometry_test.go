package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentDistanceToPoint(t *testing.T) {
	seg := Segment{Point2D{0, 0}, Point2D{10, 0}}

	// perpendicular from the middle
	assert.InDelta(t, 5, seg.DistanceToPoint(Point2D{5, 5}), 1e-9)

	// beyond either end the projection clamps to the endpoint
	assert.InDelta(t, 5, seg.DistanceToPoint(Point2D{15, 0}), 1e-9)
	assert.InDelta(t, 5, seg.DistanceToPoint(Point2D{-5, 0}), 1e-9)
	assert.InDelta(t, math.Sqrt(2), seg.DistanceToPoint(Point2D{11, 1}), 1e-9)

	// a point on the segment
	assert.InDelta(t, 0, seg.DistanceToPoint(Point2D{3, 0}), 1e-9)
}

func TestDegenerateSegmentDistance(t *testing.T) {
	seg := Segment{Point2D{3, 4}, Point2D{3, 4}}

	assert.InDelta(t, 5, seg.DistanceToPoint(Point2D{0, 0}), 1e-9)
	assert.InDelta(t, 0, seg.DistanceToPoint(Point2D{3, 4}), 1e-9)
}

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 5, Point2D{0, 0}.DistanceTo(Point2D{3, 4}), 1e-9)
	assert.InDelta(t, 0, Point2D{1, 2}.DistanceTo(Point2D{1, 2}), 1e-9)
}

func TestMidpoint(t *testing.T) {
	mid := Segment{Point2D{0, 0}, Point2D{10, 4}}.Midpoint()
	assert.InDelta(t, 5, mid.x, 1e-9)
	assert.InDelta(t, 2, mid.y, 1e-9)
}

func TestNearestWallDistance(t *testing.T) {
	walls := []Segment{
		{Point2D{0, 0}, Point2D{0, 10}},
		{Point2D{20, 0}, Point2D{20, 10}},
	}

	// probe midpoint is (5,5): 5 from the left wall, 15 from the right
	probe := Segment{Point2D{4, 5}, Point2D{6, 5}}
	assert.InDelta(t, 5, nearestWallDistance(probe, walls), 1e-9)

	// an empty wall index reads as infinitely far, not a crash
	assert.True(t, math.IsInf(nearestWallDistance(probe, nil), 1))
	assert.True(t, math.IsInf(nearestWallDistance(probe, []Segment{}), 1))
}
