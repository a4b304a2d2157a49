package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
)

func main() {
	span := flag.Float64("span", 6, "Set the gradient span in mm: the distance from a wall over which the feed rate transitions.")
	divisions := flag.Int("divisions", 4, "Set the number of ramp steps at each end of the gradient. The subsegment length is span/divisions; use sensible values to not overload the printer with tiny moves.")
	gradeSpeed := flag.Bool("grade-speed", false, "Ramp the feed rate across each fill line instead of leaving it constant.")
	maxSpeed := flag.Int("max-speed-factor", 200, "Set the maximum feed rate factor in percent.")
	minSpeed := flag.Int("min-speed-factor", 60, "Set the minimum feed rate factor in percent.")
	extruder := flag.Int("extruder", 1, "Set the extruder number whose material settings -pattern and -connect-infill describe, in case of multiple extruders.")
	pattern := flag.String("pattern", "lines", "Set the infill pattern the file was sliced with.")
	connectInfill := flag.Bool("connect-infill", false, "Set whether the slicer connected the infill lines. Connected infill can't be graded.")
	outputPath := flag.String("output", "", "Write output to this file instead of stdout.")
	quiet := flag.Bool("quiet", false, "Suppress output of parameters and the run summary.")

	cpuProfile := flag.String("cpuprofile", "", "Write CPU profile to file.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: varinfill [options] GCODEFILE\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: varinfill GCODEFILE (use - for stdin)\n")
		os.Exit(1)
	}

	var program []byte
	var err error
	if args[0] == "-" {
		program, err = io.ReadAll(os.Stdin)
	} else {
		program, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	opt := Options{
		gradientSpan:   *span,
		divisions:      *divisions,
		gradeSpeed:     *gradeSpeed,
		maxSpeedFactor: float64(*maxSpeed) / 100,
		minSpeedFactor: float64(*minSpeed) / 100,
		extruderIndex:  *extruder - 1,

		infillPattern: *pattern,
		connectInfill: *connectInfill,

		quiet: *quiet,
	}

	job, err := NewJob(string(program), &opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if reason := job.RejectReason(); reason != "" {
		fmt.Fprintf(os.Stderr, "leaving gcode unchanged: %s\n", reason)
	}

	gcode, err := job.Gcode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outputPath != "" {
		out, err = os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer out.Close()
	}
	out.WriteString(gcode)
}
