// Command sm83trace runs a flat binary image through the CPU core and
// emits a compressed, hashed step-by-step trace.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fennelabs/sm83/internal/bus"
	"github.com/fennelabs/sm83/internal/cpu"
	"github.com/fennelabs/sm83/internal/trace"
)

func main() {
	imagePath := flag.String("image", "", "flat binary image to load at address 0x0000")
	outPath := flag.String("out", "trace.jsonl.br", "path to write the compressed trace to")
	steps := flag.Int("steps", 1000, "number of Step calls to trace")
	startPC := flag.Uint("pc", 0x0100, "initial program counter")
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "sm83trace: -image is required")
		os.Exit(1)
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sm83trace: %s\n", err)
		os.Exit(1)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sm83trace: %s\n", err)
		os.Exit(1)
	}
	defer out.Close()

	b := bus.NewFlatMemory()
	b.LoadAt(0, image)
	c := cpu.NewCPU(b, cpu.WithPC(uint16(*startPC)))

	w := trace.NewWriter(out)
	for i := 0; i < *steps; i++ {
		pc := c.PC
		opcode := b.Read8(pc)
		cycles := c.Step()
		if err := w.Record(pc, opcode, cycles, c.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "sm83trace: writing entry %d: %s\n", i, err)
			os.Exit(1)
		}
	}

	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "sm83trace: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("sm83trace: wrote %d steps to %s\n", *steps, *outPath)
}
