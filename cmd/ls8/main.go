// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/logger"
)

func main() {
	var assemble bool
	var image string
	var output string
	var verbose bool
	var ticks int

	flag.BoolVar(&assemble, "a", false, "Program is assembler source")
	flag.StringVar(&image, "S", "", "Write binary image to file, do not execute")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&ticks, "t", 0, "Maximum instructions to execute (0 is unlimited)")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [flags] program", os.Args[0], os.Args[0])
	}

	logger.SetVerbose(verbose)

	source := flag.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	var prog *cpu.Program
	if assemble {
		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
	} else {
		ld := &cpu.Loader{Verbose: verbose}
		prog, err = ld.Parse(inf)
	}
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if len(image) != 0 {
		ouf, err := os.Create(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer ouf.Close()

		err = prog.WriteImage(ouf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.MaxTicks = ticks

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			log.Print(emu.Cpu.String())
		}
		log.Fatalf("%v: %v", source, err)
	}
}
