package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	c := parseCommand("G1 F1200 X10.5 Y-3.25 E0.01234")
	assert.Equal(t, "G1", c.word)
	assert.True(t, c.IsMove())

	x, err := c.Field('X')
	require.NoError(t, err)
	assert.InDelta(t, 10.5, x, 1e-9)

	y, err := c.Field('Y')
	require.NoError(t, err)
	assert.InDelta(t, -3.25, y, 1e-9)

	e, err := c.Field('E')
	require.NoError(t, err)
	assert.InDelta(t, 0.01234, e, 1e-9)

	f, err := c.Field('F')
	require.NoError(t, err)
	assert.InDelta(t, 1200, f, 1e-9)
}

func TestParseCommandFieldOrder(t *testing.T) {
	c := parseCommand("G1 E5 Y2 X1")
	p, err := c.XY()
	require.NoError(t, err)
	assert.Equal(t, Point2D{1, 2}, p)
}

func TestParseCommandMissingAxis(t *testing.T) {
	c := parseCommand("G1 X10 E0.5")
	assert.False(t, c.Has('Y'))
	_, err := c.XY()
	assert.Error(t, err)

	// a bare field letter is present but has no usable value
	c = parseCommand("G1 X10 Y E0.5")
	assert.True(t, c.Has('Y'))
	_, err = c.XY()
	assert.Error(t, err)
}

func TestParseCommandNonMove(t *testing.T) {
	assert.False(t, parseCommand(";TYPE:FILL").IsMove())
	assert.False(t, parseCommand("M104 S200").IsMove())
	assert.False(t, parseCommand("").IsMove())
	assert.True(t, parseCommand("G0 X1 Y1").IsMove())
}

func TestMarkers(t *testing.T) {
	assert.True(t, isLayerStart(";LAYER:12"))
	assert.True(t, isInnerWallStart(";TYPE:WALL-INNER"))
	assert.True(t, isOuterWallStart(";TYPE:WALL-OUTER"))
	assert.True(t, isFillStart(";TYPE:FILL"))

	assert.False(t, isLayerStart(";LAYER_COUNT:12"))
	assert.False(t, isFillStart("G1 X1 Y1 E1"))
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "1.235", trimFloat(1.23456, 3))
	assert.Equal(t, "2", trimFloat(2.00001, 3))
	assert.Equal(t, "0.12346", trimFloat(0.123456789, 5))
	assert.Equal(t, "-4.5", trimFloat(-4.5, 5))
}

func TestFormatMove(t *testing.T) {
	got := formatMove(Point2D{1.23456, 2}, 0.123456789)
	assert.Equal(t, "G1 X1.235 Y2 E0.12346", got)
}

func TestRewriteExtrusion(t *testing.T) {
	got := rewriteExtrusion("G1 X20 Y0 E5.000001 F1200", 5)
	assert.Equal(t, "G1 X20 Y0 E5 F1200", got)

	got = rewriteExtrusion("G1 E0.1234567 X20 Y0", 0.1234567)
	assert.Equal(t, "G1 E0.12346 X20 Y0", got)
}

func TestSplitLayers(t *testing.T) {
	program := strings.Join([]string{
		"M104 S200",
		"G28",
		";LAYER:0",
		"G1 X1 Y1 E0.1",
		";LAYER:1",
		"G1 X2 Y2 E0.2",
		"M107",
	}, "\n")

	layers := SplitLayers(program)
	require.Len(t, layers, 3)
	assert.Equal(t, "M104 S200\nG28", layers[0])
	assert.True(t, strings.HasPrefix(layers[1], ";LAYER:0"))
	assert.True(t, strings.HasPrefix(layers[2], ";LAYER:1"))

	// joining the chunks reproduces the input exactly
	assert.Equal(t, program, strings.Join(layers, "\n"))
}

func TestSplitLayersNoMarkers(t *testing.T) {
	program := "G28\nM104 S200"
	layers := SplitLayers(program)
	require.Len(t, layers, 1)
	assert.Equal(t, program, layers[0])
}
