package main

import "fmt"

// Patterns whose infill is printed as independent straight strokes. Anything
// else (concentric, gyroid, zigzag, ...) can't be regraded stroke by stroke.
var linearInfillPatterns = map[string]bool{
	"grid":          true,
	"lines":         true,
	"triangles":     true,
	"trihexagon":    true,
	"cubic":         true,
	"tetrahedral":   true,
	"quarter_cubic": true,
}

// CheckInfillEligible reports whether gcode sliced with the given infill
// settings can be graded at all. A non-nil error is the reason it can't be;
// callers pass the input through unchanged in that case.
func CheckInfillEligible(pattern string, connectLines bool) error {
	if connectLines {
		return fmt.Errorf("gcode must be sliced without connected infill lines")
	}
	if !linearInfillPatterns[pattern] {
		return fmt.Errorf("unsupported infill pattern: %s", pattern)
	}
	return nil
}
