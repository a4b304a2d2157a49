package main

import (
	"fmt"
)

type Options struct {
	gradientSpan   float64
	divisions      int
	gradeSpeed     bool
	maxSpeedFactor float64
	minSpeedFactor float64
	extruderIndex  int

	infillPattern string
	connectInfill bool

	quiet bool
}

func (opt *Options) Validate() error {
	if opt.gradientSpan <= 0 {
		return fmt.Errorf("gradient span must be positive, got %g", opt.gradientSpan)
	}
	if opt.divisions < 1 {
		return fmt.Errorf("divisions must be at least 1, got %d", opt.divisions)
	}
	if opt.maxSpeedFactor <= 0 {
		return fmt.Errorf("max speed factor must be positive, got %g", opt.maxSpeedFactor)
	}
	if opt.minSpeedFactor <= 0 {
		return fmt.Errorf("min speed factor must be positive, got %g", opt.minSpeedFactor)
	}
	if opt.extruderIndex < 0 {
		return fmt.Errorf("extruder number must be at least 1")
	}
	return nil
}

// StepLength is the length of one synthetic subsegment of a graded move:
// the feed ramp spans the gradient in steps of this length.
func (opt *Options) StepLength() float64 {
	return opt.gradientSpan / float64(opt.divisions)
}
