// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	goio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/vmma/cpu"
	"github.com/ezrec/vmma/internal"
	"github.com/ezrec/vmma/io"
)

const (
	EXIT_HALT = 1 // Exit status when the engine halts on a fault.
)

var _emulator_defines = map[string]string{
	"EXIT_HALT": fmt.Sprintf("%v", EXIT_HALT),
}

// Emulator state. CPU + terminal + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Program listing, if assembled from source.
	Image    []byte       // Program body, if loaded from an image.

	Terminal io.Terminal // Console for the running program.

	ExitCode int // Status of the last explicit exit.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Terminal)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Load reads a program image, replacing any program listing, and resets
// the emulator to run it.
func (emu *Emulator) Load(input goio.Reader) (err error) {
	body, err := cpu.ReadImage(input)
	if err != nil {
		return
	}

	emu.Image = body
	emu.Program = &cpu.Program{}

	err = emu.Reset()

	return
}

// body returns the program to load; an assembled listing wins over an image.
func (emu *Emulator) body() []byte {
	if len(emu.Program.Opcodes) != 0 {
		return emu.Program.Body()
	}
	return emu.Image
}

// Reset the emulator state, and reload the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.ExitCode = 0
	emu.Terminal.Rewind()

	body := emu.body()
	err = emu.Cpu.Load(body)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("Loaded %d bytes into RAM.", len(body))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Code returns the instruction at the current Pc.
func (emu *Emulator) Code() cpu.Code {
	word, _ := emu.Cpu.Memory.Word(int(emu.Cpu.Pc))
	return cpu.Code(word)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the program has exited, and ExitCode holds its status.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()

	var exit cpu.ErrExit
	if errors.As(err, &exit) {
		emu.ExitCode = int(exit)
		if emu.Verbose {
			log.Printf("exit %d after %d ticks", emu.ExitCode, emu.Ticks())
		}
		err = nil
		done = true
	}

	return
}

// Run ticks the emulator until the program exits, or the engine halts.
// The status is the program's exit code, or EXIT_HALT on a halt.
func (emu *Emulator) Run() (status int, err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			status = EXIT_HALT
			return
		}
		if done {
			status = emu.ExitCode
			return
		}
	}
}
