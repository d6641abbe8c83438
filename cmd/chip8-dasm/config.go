package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Program string // Path to the ROM file to disassemble.
}

// parseArgs parses command line arguments as applicable.
// If an error occurred, this exits the program with an appropriate message.
func parseArgs() *Config {
	var c Config

	flag.Usage = func() {
		fmt.Printf("%s <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

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
