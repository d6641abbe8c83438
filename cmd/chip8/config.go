package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Program       string // Path to the ROM file to load.
	ScaleFactor   int    // Amount by which each pixel is scaled (virtual resolution).
	Cycles        int    // Instructions executed per 60 Hz timer tick.
	Fullscreen    bool   // Run in fullscreen?
	PrintTrace    bool   // Print instruction trace data?
	IgnoreInvalid bool   // Treat invalid opcodes as no-ops instead of halting?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.ScaleFactor = 10
	c.Cycles = 10
	c.Fullscreen = false
	c.PrintTrace = false

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the display.")
	flag.IntVar(&c.Cycles, "cycles", c.Cycles, "Instructions executed per 60 Hz timer tick.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")
	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")
	flag.BoolVar(&c.IgnoreInvalid, "ignore-invalid", c.IgnoreInvalid,
		"Log invalid opcodes and continue instead of halting.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Program = flag.Arg(0)
	return &c
}
