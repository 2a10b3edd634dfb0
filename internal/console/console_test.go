package console

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// testROM builds a 32KiB image with a valid header and the given program at
// the entry point.
func testROM(program ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], program)
	copy(rom[0x134:], "CONSOLE")

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestConsole_New(t *testing.T) {
	c, err := New(testROM(0x00), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	if c.Model() != types.DMG {
		t.Errorf("expected the default model to be DMG, got %s", c.Model())
	}
	if c.Cart.Title() != "CONSOLE" {
		t.Errorf("expected title CONSOLE, got %q", c.Cart.Title())
	}
	if c.CPU.PC != types.BootPC {
		t.Errorf("expected PC %04X, got %04X", types.BootPC, c.CPU.PC)
	}
}

func TestConsole_RejectsBadImage(t *testing.T) {
	if _, err := New([]byte{0x00, 0x01}, WithLogger(quietLogger())); err == nil {
		t.Error("expected a truncated image to be rejected")
	}
}

func TestConsole_WithModel(t *testing.T) {
	c, err := New(testROM(0x00), WithModel(types.CGB), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	if c.Model() != types.CGB {
		t.Errorf("expected CGB, got %s", c.Model())
	}
	if c.CPU.AF() != 0x1180 {
		t.Errorf("expected CGB boot AF 1180, got %04X", c.CPU.AF())
	}
}

func TestConsole_StepInstruction(t *testing.T) {
	// LD A,0x42 ; LD (0xC000),A
	c, err := New(testROM(0x3E, 0x42, 0xEA, 0x00, 0xC0), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	c.StepInstruction()
	if c.CPU.A() != 0x42 {
		t.Errorf("expected A 0x42, got %02X", c.CPU.A())
	}

	c.StepInstruction()
	if got := c.Bus.Read(0xC000); got != 0x42 {
		t.Errorf("expected 0x42 at C000, got %02X", got)
	}
}

func TestConsole_StepCycle(t *testing.T) {
	// LD B,0x10 takes two m-cycles
	c, err := New(testROM(0x06, 0x10, 0x00), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	c.StepCycle()
	if c.CPU.B() == 0x10 {
		t.Error("expected B to still be pending after one cycle")
	}
	c.StepCycle()
	if c.CPU.B() != 0x10 {
		t.Errorf("expected B 0x10 after two cycles, got %02X", c.CPU.B())
	}
}

func TestConsole_ROMIsReadOnly(t *testing.T) {
	c, err := New(testROM(0x00), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	before := c.Bus.Read(0x0100)
	c.Bus.Write(0x0100, ^before)
	if got := c.Bus.Read(0x0100); got != before {
		t.Errorf("expected the ROM write to be ignored, got %02X", got)
	}
}
