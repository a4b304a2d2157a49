package main

import (
	"fmt"
	"os"
	"strings"
)

// cursor is the state threaded through every line of the program in order:
// where the tool currently is, which section the scan is inside, and the
// last feed rate seen on a fill move. Layers depend on the cursor carried
// out of earlier layers, so layers cannot be processed independently.
type cursor struct {
	pos     Point2D
	section Section
	feed    feedState
}

type Job struct {
	options *Options
	layers  []string

	rejectReason string

	// wall segments of the layer being scanned, reset at each layer marker
	walls []Segment

	layerCount  int
	gradedMoves int
	warnings    int
}

func NewJob(program string, opt *Options) (*Job, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	j := &Job{
		options: opt,
		layers:  SplitLayers(program),
	}

	if err := CheckInfillEligible(opt.infillPattern, opt.connectInfill); err != nil {
		j.rejectReason = err.Error()
	}

	if !opt.quiet {
		fmt.Fprintf(os.Stderr, "extruder %d infill: %s. Gradient span %g mm in %d steps of %g mm.\n",
			opt.extruderIndex+1, opt.infillPattern, opt.gradientSpan, opt.divisions, opt.StepLength())
	}

	return j, nil
}

// RejectReason is non-empty when the infill settings ruled grading out and
// Gcode will return the input unchanged.
func (j *Job) RejectReason() string { return j.rejectReason }

func (j *Job) Gcode() (string, error) {
	if j.rejectReason != "" {
		return strings.Join(j.layers, "\n"), nil
	}

	// the tool starts somewhere far outside any real build volume
	cur := cursor{pos: Point2D{-10000, -10000}, section: SectionNone}

	out := make([]string, len(j.layers))
	for i, layer := range j.layers {
		transformed, next, err := j.transformLayer(layer, cur)
		if err != nil {
			return "", err
		}
		out[i] = transformed
		cur = next
	}

	if !j.options.quiet {
		fmt.Fprintf(os.Stderr, "%d layers, %d fill moves rewritten.\n", j.layerCount, j.gradedMoves)
	}

	return strings.Join(out, "\n"), nil
}

// transformLayer scans one layer's lines in order, replacing each line's
// slot in place: the fill marker is dropped, graded fill moves expand to
// several lines, everything else passes through byte for byte.
func (j *Job) transformLayer(layer string, cur cursor) (string, cursor, error) {
	lines := strings.Split(layer, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		cmd := parseCommand(line)

		emit := true
		var expanded []string

		switch {
		case isLayerStart(line):
			j.walls = j.walls[:0]
			j.layerCount++

		case isInnerWallStart(line):
			cur.section = SectionInnerWall

		case isOuterWallStart(line):
			cur.section = SectionOuterWall

		case isFillStart(line):
			cur.section = SectionFill
			emit = false // the expanded moves stand in for the marker

		case cur.section == SectionInnerWall:
			if cmd.word == "G1" && cmd.Has('X') && cmd.Has('Y') && cmd.Has('E') {
				p, err := cmd.XY()
				if err != nil {
					return "", cur, fmt.Errorf("gcode parsing error for line %q: %w", line, err)
				}
				// each wall stroke runs from where the tool was to where
				// this line sends it
				j.walls = append(j.walls, Segment{p, cur.pos})
			}

		case cur.section == SectionFill:
			var err error
			expanded, cur, err = j.transformFillLine(line, cmd, cur)
			if err != nil {
				return "", cur, err
			}
		}

		// any move carrying both axes records the tool position, whatever
		// the section
		if cmd.IsMove() && cmd.Has('X') && cmd.Has('Y') {
			p, err := cmd.XY()
			if err != nil {
				return "", cur, fmt.Errorf("gcode parsing error for line %q: %w", line, err)
			}
			cur.pos = p
		}

		if expanded != nil {
			out = append(out, expanded...)
		} else if emit {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n"), cur, nil
}

// transformFillLine handles one line inside a fill section. A nil first
// return means the line passes through unchanged.
func (j *Job) transformFillLine(line string, cmd Command, cur cursor) ([]string, cursor, error) {
	if cmd.word == "G1" && cmd.Has('F') {
		if v, err := cmd.Field('F'); err == nil {
			cur.feed = feedState{rate: v, set: true}
		}
	}

	if cmd.word == "G1" && cmd.Has('X') && cmd.Has('Y') && cmd.Has('E') {
		to, err := cmd.XY()
		if err != nil {
			return nil, cur, fmt.Errorf("gcode parsing error for line %q: %w", line, err)
		}
		eTarget, err := cmd.Field('E')
		if err != nil {
			// a malformed extrusion value is left for the printer to reject
			return nil, cur, nil
		}

		move := gradedMove{
			line:    line,
			from:    cur.pos,
			to:      to,
			eTarget: eTarget,
			feed:    cur.feed,
			ownFeed: cmd.Has('F'),
		}
		expanded, emptyWalls := move.Expand(j.walls, j.options)
		if emptyWalls {
			j.warnings++
			fmt.Fprintf(os.Stderr, "warning: fill before any inner wall on this layer, grading as far: %s\n", line)
		}
		j.gradedMoves++

		return expanded, cur, nil
	}

	// a comment that isn't a move ends the fill region (;MESH:..., etc)
	if strings.ContainsRune(line, ';') && !cmd.IsMove() {
		cur.section = SectionNone
	}

	return nil, cur, nil
}
