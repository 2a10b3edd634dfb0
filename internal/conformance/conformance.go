// Package conformance runs single-instruction test vectors against the CPU
// core: each case stages registers and memory on a flat all-RAM bus, runs
// exactly one instruction, and compares the resulting registers and the RAM
// addresses the vector lists. Vector files follow the SingleStepTests JSON
// format, one file per opcode named {opcode-hex-lowercase}.json.
package conformance

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dotmatrix-emu/dotmatrix/internal/bus"
	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// TestCase is a single before/after state pair.
type TestCase struct {
	// Name of the test, conventionally the opcode followed by a number.
	Name string `json:"name"`

	Initial State `json:"initial"`
	Final   State `json:"final"`

	// Cycles lists the per-cycle bus accesses of the reference
	// implementation. Decoded but not validated.
	Cycles []json.RawMessage `json:"cycles"`
}

// State is the register and memory state of the system before or after a
// case. RAM entries are (address, value) pairs; addresses not listed in the
// final state are not checked. The ime/ie fields of the wire format are
// ignored, as there is no interrupt controller to observe them.
type State struct {
	PC  uint16      `json:"pc"`
	SP  uint16      `json:"sp"`
	A   uint8       `json:"a"`
	B   uint8       `json:"b"`
	C   uint8       `json:"c"`
	D   uint8       `json:"d"`
	E   uint8       `json:"e"`
	F   uint8       `json:"f"`
	H   uint8       `json:"h"`
	L   uint8       `json:"l"`
	RAM [][2]uint16 `json:"ram"`
}

// Load reads a vector file.
func Load(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cases []TestCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("conformance: parsing %s: %w", path, err)
	}
	return cases, nil
}

// Stage builds a CPU on a flat bus matching the given state.
func Stage(s State) *cpu.CPU {
	c := cpu.New(bus.NewFlat(), types.DMG)
	c.PC = s.PC
	c.SP = s.SP
	c.SetA(s.A)
	c.SetB(s.B)
	c.SetC(s.C)
	c.SetD(s.D)
	c.SetE(s.E)
	c.SetF(s.F)
	c.SetH(s.H)
	c.SetL(s.L)
	for _, entry := range s.RAM {
		c.Bus().Write(entry[0], uint8(entry[1]))
	}
	return c
}

// Capture reads back the state of a CPU, restricted to the RAM addresses of
// the expected final state so the comparison only covers what the vector
// pins down.
func Capture(c *cpu.CPU, ram [][2]uint16) State {
	s := State{
		PC: c.PC,
		SP: c.SP,
		A:  c.A(),
		B:  c.B(),
		C:  c.C(),
		D:  c.D(),
		E:  c.E(),
		F:  c.F(),
		H:  c.H(),
		L:  c.L(),
	}
	for _, entry := range ram {
		s.RAM = append(s.RAM, [2]uint16{entry[0], uint16(c.Bus().Read(entry[0]))})
	}
	return s
}

// Run executes one test case and reports the first mismatch, or "" if the
// case passes.
func Run(tc TestCase) string {
	c := Stage(tc.Initial)
	c.ExecInstruction()

	got := Capture(c, tc.Final.RAM)
	if diff := tc.Final.diff(got); diff != "" {
		return fmt.Sprintf("%s: %s\n  initial: %s\n  expected: %s\n  result: %s",
			tc.Name, diff, tc.Initial, tc.Final, got)
	}
	return ""
}

// diff names the first field that does not match the expected state.
func (s State) diff(got State) string {
	switch {
	case s.PC != got.PC:
		return fmt.Sprintf("pc: want %04X got %04X", s.PC, got.PC)
	case s.SP != got.SP:
		return fmt.Sprintf("sp: want %04X got %04X", s.SP, got.SP)
	case s.A != got.A:
		return fmt.Sprintf("a: want %02X got %02X", s.A, got.A)
	case s.B != got.B:
		return fmt.Sprintf("b: want %02X got %02X", s.B, got.B)
	case s.C != got.C:
		return fmt.Sprintf("c: want %02X got %02X", s.C, got.C)
	case s.D != got.D:
		return fmt.Sprintf("d: want %02X got %02X", s.D, got.D)
	case s.E != got.E:
		return fmt.Sprintf("e: want %02X got %02X", s.E, got.E)
	case s.F != got.F:
		return fmt.Sprintf("f: want %02X got %02X", s.F, got.F)
	case s.H != got.H:
		return fmt.Sprintf("h: want %02X got %02X", s.H, got.H)
	case s.L != got.L:
		return fmt.Sprintf("l: want %02X got %02X", s.L, got.L)
	}
	for i, entry := range s.RAM {
		if got.RAM[i] != entry {
			return fmt.Sprintf("ram[%04X]: want %02X got %02X", entry[0], entry[1], got.RAM[i][1])
		}
	}
	return ""
}

func (s State) String() string {
	var ram []string
	for _, entry := range s.RAM {
		ram = append(ram, fmt.Sprintf("%04X=%02X", entry[0], entry[1]))
	}
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X ram:[%s]",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, strings.Join(ram, " "))
}
