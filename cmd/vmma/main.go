// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/vmma/cpu"
	"github.com/ezrec/vmma/emulator"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %v [-v] [-i INPUT] PROGRAM\n", os.Args[0])
	fmt.Fprintf(out, "       %v [-v] [-i INPUT] -c SOURCE.s\n", os.Args[0])
	fmt.Fprintf(out, "       %v -c SOURCE.s -o PROGRAM\n", os.Args[0])
	flag.PrintDefaults()
}

// assemble parses a source file into a program listing.
func assemble(emu *emulator.Emulator, source string) (prog *cpu.Program, err error) {
	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(inf)

	return
}

// save writes a program listing as an image file.
func save(prog *cpu.Program, output string) (err error) {
	ouf, err := os.Create(output)
	if err != nil {
		return
	}

	err = cpu.WriteImage(ouf, prog.Body())
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

func main() {
	var compile string
	var input string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "", "Save assembled image, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = usage

	flag.Parse()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	switch {
	case len(compile) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		prog, err := assemble(emu, compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if len(output) != 0 {
			err = save(prog, output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			return
		}

		emu.Program = prog
		err = emu.Reset()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case flag.NArg() == 1:
		if len(output) != 0 {
			log.Fatalf("%v: -o requires -c", os.Args[0])
		}

		path := flag.Arg(0)
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		err = emu.Load(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	default:
		flag.Usage()
		os.Exit(emulator.EXIT_HALT)
	}

	if input == "-" {
		emu.Terminal.Stdin = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		emu.Terminal.Stdin = inf
	}
	emu.Terminal.Stdout = os.Stdout
	emu.Terminal.Stderr = os.Stderr

	status, err := emu.Run()
	if err != nil {
		log.Print(err)
	}

	os.Exit(status)
}
