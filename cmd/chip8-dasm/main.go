package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hexaflex/chip8"
	"github.com/hexaflex/chip8/arch"
)

func main() {
	config := parseArgs()

	rom, err := os.ReadFile(config.Program)
	if err != nil {
		log.Fatal(err)
	}

	if len(rom) > chip8.MaxProgramSize {
		log.Fatalf("%s: %d bytes exceeds the maximum program size of %d",
			config.Program, len(rom), chip8.MaxProgramSize)
	}

	disassemble(os.Stdout, rom)
}

// disassemble prints one line per instruction word: the load address,
// the raw word and its assembly form. Words that do not decode are
// emitted as data directives; ROMs routinely mix sprite data in with
// code, so this is not an error.
func disassemble(w *os.File, rom []byte) {
	var pc int
	for ; pc+1 < len(rom); pc += 2 {
		word := uint16(rom[pc])<<8 | uint16(rom[pc+1])
		addr := chip8.ProgramStart + pc

		if instr, ok := arch.Decode(word); ok {
			fmt.Fprintf(w, "%03x  %04x  %s\n", addr, word, instr)
		} else {
			fmt.Fprintf(w, "%03x  %04x  .dw 0x%04X\n", addr, word, word)
		}
	}

	if pc < len(rom) {
		fmt.Fprintf(w, "%03x  %02x    .db 0x%02X\n", chip8.ProgramStart+pc, rom[pc], rom[pc])
	}
}
