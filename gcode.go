package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	layerMarker     = ";LAYER:"
	innerWallMarker = ";TYPE:WALL-INNER"
	outerWallMarker = ";TYPE:WALL-OUTER"
	fillMarker      = ";TYPE:FILL"
)

type Section int

const (
	SectionNone Section = iota
	SectionInnerWall
	SectionOuterWall
	SectionFill
)

func isLayerStart(line string) bool     { return strings.HasPrefix(line, layerMarker) }
func isInnerWallStart(line string) bool { return strings.HasPrefix(line, innerWallMarker) }
func isOuterWallStart(line string) bool { return strings.HasPrefix(line, outerWallMarker) }
func isFillStart(line string) bool      { return strings.HasPrefix(line, fillMarker) }

// Command is one gcode line broken into a command word and its fields. A
// field is any token of the form letter+number; the number part is kept raw
// so that a malformed value can be told apart from an absent field.
type Command struct {
	word   string
	fields map[byte]string
}

func parseCommand(line string) Command {
	tokens := strings.Fields(line)

	c := Command{}
	if len(tokens) == 0 {
		return c
	}
	c.word = tokens[0]

	for _, tok := range tokens[1:] {
		letter := tok[0]
		if letter < 'A' || letter > 'Z' {
			continue
		}
		if c.fields == nil {
			c.fields = make(map[byte]string)
		}
		c.fields[letter] = tok[1:]
	}

	return c
}

func (c Command) IsMove() bool { return c.word == "G0" || c.word == "G1" }

func (c Command) Has(letter byte) bool {
	_, ok := c.fields[letter]
	return ok
}

func (c Command) Field(letter byte) (float64, error) {
	raw, ok := c.fields[letter]
	if !ok {
		return 0, fmt.Errorf("no %c field", letter)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %c field %q", letter, raw)
	}
	return v, nil
}

// XY extracts both axis coordinates. Failing here is fatal for the run:
// the geometry downstream has no sensible default for a missing axis.
func (c Command) XY() (Point2D, error) {
	x, err := c.Field('X')
	if err != nil {
		return Point2D{}, err
	}
	y, err := c.Field('Y')
	if err != nil {
		return Point2D{}, err
	}
	return Point2D{x, y}, nil
}

// trimFloat formats v rounded to the given number of decimals, with
// trailing zeroes dropped.
func trimFloat(v float64, decimals int) string {
	pow := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(v*pow)/pow, 'f', -1, 64)
}

// formatMove renders a printing move the way the slicer does: coordinates
// to 3 decimals, extrusion to 5.
func formatMove(p Point2D, extrusion float64) string {
	return "G1 X" + trimFloat(p.x, 3) + " Y" + trimFloat(p.y, 3) + " E" + trimFloat(extrusion, 5)
}

// rewriteExtrusion replaces the E field of a move line with the given value
// rounded to 5 decimals, leaving every other token as it was.
func rewriteExtrusion(line string, extrusion float64) string {
	tokens := strings.Fields(line)
	for i, tok := range tokens {
		if tok[0] == 'E' {
			tokens[i] = "E" + trimFloat(extrusion, 5)
		}
	}
	return strings.Join(tokens, " ")
}

// SplitLayers chunks a program at layer markers: chunk 0 is everything
// before the first ;LAYER: line, each later chunk starts with one. Joining
// the chunks back with "\n" reproduces the input byte for byte.
func SplitLayers(program string) []string {
	lines := strings.Split(program, "\n")

	layers := []string{}
	start := 0
	for i := 1; i < len(lines); i++ {
		if isLayerStart(lines[i]) {
			layers = append(layers, strings.Join(lines[start:i], "\n"))
			start = i
		}
	}
	layers = append(layers, strings.Join(lines[start:], "\n"))

	return layers
}
