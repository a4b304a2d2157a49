package main

import (
	"fmt"
)

// extrusionPerMm is the filament feed per millimetre of travel used to
// re-accumulate E across the synthetic steps of a graded move. Flow is not
// graded, only the feed rate; this constant is fixed.
const extrusionPerMm = 0.006584

type feedState struct {
	rate float64
	set  bool
}

// gradedMove is one fill move about to be rewritten: the cursor position it
// starts from, the target it moves to, the absolute extrusion value it must
// land on, and the feed rate in effect.
type gradedMove struct {
	line    string
	from    Point2D
	to      Point2D
	eTarget float64
	feed    feedState

	// whether the original line carried its own F token
	ownFeed bool
}

// Expand rewrites the move as a run of uniform-length steps whose feed rates
// ramp near the ends, closed by a line that lands exactly on the original
// target coordinates and extrusion value. Moves shorter than two steps are
// left alone apart from rounding the extrusion field. The second return is
// true when the wall index was empty at grading time.
func (m gradedMove) Expand(walls []Segment, opt *Options) ([]string, bool) {
	stepLength := opt.StepLength()
	fullLength := m.from.DistanceTo(m.to)

	steps := 0.0
	if fullLength > 0 {
		steps = fullLength / stepLength
	}

	if steps < 2 {
		return []string{rewriteExtrusion(m.line, m.eTarget)}, false
	}

	n := int(steps)
	dE := extrusionPerMm * fullLength / steps
	eAcc := m.eTarget - dE*steps
	stepVector := Point2D{
		(m.to.x - m.from.x) / fullLength * stepLength,
		(m.to.y - m.from.y) / fullLength * stepLength,
	}

	out := make([]string, 0, n+2)
	if m.ownFeed && m.feed.set {
		out = append(out, "G1 F"+trimFloat(m.feed.rate, 3))
	}

	emptyWalls := len(walls) == 0
	divisions := float64(opt.divisions)
	deficit := 0.0
	if m.feed.set {
		deficit = (m.feed.rate*opt.maxSpeedFactor + m.feed.rate*opt.minSpeedFactor) / divisions
	}
	trailing := 0

	cursor := m.from
	for i := 0; i < n; i++ {
		stepEnd := Point2D{cursor.x + stepVector.x, cursor.y + stepVector.y}
		eAcc += dE

		nearest := nearestWallDistance(Segment{cursor, stepEnd}, walls)

		line := formatMove(stepEnd, eAcc)
		if m.feed.set {
			feed := m.feed.rate * opt.minSpeedFactor
			if nearest < opt.gradientSpan {
				feed = m.feed.rate
			}
			if opt.gradeSpeed {
				// ordered rules, last match wins: the trailing ramp takes
				// over from the lead ramp and the plateau on short moves
				if float64(i) < divisions {
					feed = m.feed.rate*opt.minSpeedFactor + deficit*float64(i)
				}
				if float64(i) >= divisions {
					feed = m.feed.rate * opt.maxSpeedFactor
				}
				if float64(i) >= steps-divisions {
					feed = m.feed.rate*opt.maxSpeedFactor - deficit*float64(trailing)
					trailing++
				}
				line += fmt.Sprintf(" F%d", int(feed))
			}
		}

		out = append(out, line)
		cursor = stepEnd
	}

	// land exactly on the original target and extrusion value, cancelling
	// whatever drift the synthetic steps accumulated
	closing := formatMove(m.to, m.eTarget)
	if m.feed.set {
		closing += fmt.Sprintf(" F%d", int(m.feed.rate*opt.minSpeedFactor))
	}
	out = append(out, closing)

	return out, emptyWalls
}
