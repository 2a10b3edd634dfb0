package cpu

import "testing"

func TestInstr_Load8(t *testing.T) {
	c := newTestCPU()
	load(c, 0x41) // LD B,C
	c.SetB(0x55)
	c.SetC(0x99)
	c.ExecInstruction()
	if c.B() != 0x99 {
		t.Errorf("LD B,C: expected 0x99, got %02X", c.B())
	}

	c = newTestCPU()
	load(c, 0x3E, 0x7F) // LD A,0x7F
	c.ExecInstruction()
	if c.A() != 0x7F {
		t.Errorf("LD A,d8: expected 0x7F, got %02X", c.A())
	}
}

func TestInstr_LoadIndirect(t *testing.T) {
	c := newTestCPU()
	load(c, 0x77) // LD (HL),A
	c.SetA(0xAB)
	c.SetHL(0xC123)
	c.ExecInstruction()
	if got := c.bus.Read(0xC123); got != 0xAB {
		t.Errorf("LD (HL),A: expected 0xAB at C123, got %02X", got)
	}

	c = newTestCPU()
	load(c, 0x46) // LD B,(HL)
	c.SetHL(0xC456)
	c.bus.Write(0xC456, 0x5A)
	c.ExecInstruction()
	if c.B() != 0x5A {
		t.Errorf("LD B,(HL): expected 0x5A, got %02X", c.B())
	}

	c = newTestCPU()
	load(c, 0x0A) // LD A,(BC)
	c.SetBC(0xC789)
	c.bus.Write(0xC789, 0x33)
	c.ExecInstruction()
	if c.A() != 0x33 {
		t.Errorf("LD A,(BC): expected 0x33, got %02X", c.A())
	}

	c = newTestCPU()
	load(c, 0x36, 0x99) // LD (HL),0x99
	c.SetHL(0xC000)
	c.ExecInstruction()
	if got := c.bus.Read(0xC000); got != 0x99 {
		t.Errorf("LD (HL),d8: expected 0x99 at C000, got %02X", got)
	}
}

func TestInstr_LoadIncDec(t *testing.T) {
	c := newTestCPU()
	load(c, 0x22) // LD (HL+),A
	c.SetA(0x11)
	c.SetHL(0xCFFF)
	c.ExecInstruction()
	if got := c.bus.Read(0xCFFF); got != 0x11 {
		t.Errorf("LD (HL+),A: expected 0x11 at CFFF, got %02X", got)
	}
	if c.HL() != 0xD000 {
		t.Errorf("LD (HL+),A: expected HL D000, got %04X", c.HL())
	}

	c = newTestCPU()
	load(c, 0x3A) // LD A,(HL-)
	c.SetHL(0xC000)
	c.bus.Write(0xC000, 0x22)
	c.ExecInstruction()
	if c.A() != 0x22 || c.HL() != 0xBFFF {
		t.Errorf("LD A,(HL-): expected A:22 HL:BFFF, got A:%02X HL:%04X", c.A(), c.HL())
	}
}

func TestInstr_LoadHigh(t *testing.T) {
	c := newTestCPU()
	load(c, 0xE0, 0x80) // LDH (0x80),A
	c.SetA(0x42)
	c.ExecInstruction()
	if got := c.bus.Read(0xFF80); got != 0x42 {
		t.Errorf("LDH (a8),A: expected 0x42 at FF80, got %02X", got)
	}

	c = newTestCPU()
	load(c, 0xF0, 0x81) // LDH A,(0x81)
	c.bus.Write(0xFF81, 0x24)
	c.ExecInstruction()
	if c.A() != 0x24 {
		t.Errorf("LDH A,(a8): expected 0x24, got %02X", c.A())
	}

	c = newTestCPU()
	load(c, 0xE2) // LD (C),A
	c.SetA(0x77)
	c.SetC(0x90)
	c.ExecInstruction()
	if got := c.bus.Read(0xFF90); got != 0x77 {
		t.Errorf("LD (C),A: expected 0x77 at FF90, got %02X", got)
	}

	c = newTestCPU()
	load(c, 0xF2) // LD A,(C)
	c.SetC(0x91)
	c.bus.Write(0xFF91, 0x66)
	c.ExecInstruction()
	if c.A() != 0x66 {
		t.Errorf("LD A,(C): expected 0x66, got %02X", c.A())
	}
}

func TestInstr_LoadAbsolute(t *testing.T) {
	c := newTestCPU()
	load(c, 0xEA, 0x34, 0xC2) // LD (0xC234),A
	c.SetA(0x9D)
	c.ExecInstruction()
	if got := c.bus.Read(0xC234); got != 0x9D {
		t.Errorf("LD (a16),A: expected 0x9D at C234, got %02X", got)
	}

	c = newTestCPU()
	load(c, 0xFA, 0x34, 0xC2) // LD A,(0xC234)
	c.bus.Write(0xC234, 0xD9)
	c.ExecInstruction()
	if c.A() != 0xD9 {
		t.Errorf("LD A,(a16): expected 0xD9, got %02X", c.A())
	}
}

func TestInstr_Load16(t *testing.T) {
	c := newTestCPU()
	load(c, 0x21, 0xCD, 0xAB) // LD HL,0xABCD
	c.ExecInstruction()
	if c.HL() != 0xABCD {
		t.Errorf("LD HL,d16: expected ABCD, got %04X", c.HL())
	}

	c = newTestCPU()
	load(c, 0x31, 0x00, 0xE0) // LD SP,0xE000
	c.ExecInstruction()
	if c.SP != 0xE000 {
		t.Errorf("LD SP,d16: expected E000, got %04X", c.SP)
	}

	c = newTestCPU()
	load(c, 0xF9) // LD SP,HL
	c.SetHL(0xD123)
	c.ExecInstruction()
	if c.SP != 0xD123 {
		t.Errorf("LD SP,HL: expected D123, got %04X", c.SP)
	}
}

// LD (a16),SP writes the low byte first and the second write wraps around
// the top of the address space.
func TestInstr_StoreSPWraparound(t *testing.T) {
	c := newTestCPU()
	load(c, 0x08, 0xFF, 0xFF) // LD (0xFFFF),SP
	c.SP = 0xABCD
	c.ExecInstruction()
	if got := c.bus.Read(0xFFFF); got != 0xCD {
		t.Errorf("expected low byte 0xCD at FFFF, got %02X", got)
	}
	if got := c.bus.Read(0x0000); got != 0xAB {
		t.Errorf("expected high byte 0xAB at 0000, got %02X", got)
	}
}

func TestInstr_IncDecPair(t *testing.T) {
	c := newTestCPU()
	load(c, 0x03) // INC BC
	c.SetBC(0xFFFF)
	c.SetF(0x00)
	c.ExecInstruction()
	if c.BC() != 0x0000 {
		t.Errorf("INC BC: expected 0000, got %04X", c.BC())
	}
	if c.F() != 0x00 {
		t.Errorf("INC BC: expected flags untouched, got %02X", c.F())
	}

	c = newTestCPU()
	load(c, 0x0B) // DEC BC
	c.SetBC(0x0000)
	c.SetF(0xF0)
	c.ExecInstruction()
	if c.BC() != 0xFFFF {
		t.Errorf("DEC BC: expected FFFF, got %04X", c.BC())
	}
	if c.F() != 0xF0 {
		t.Errorf("DEC BC: expected flags untouched, got %02X", c.F())
	}
}

func TestInstr_IncDecIndirect(t *testing.T) {
	c := newTestCPU()
	load(c, 0x34) // INC (HL)
	c.SetHL(0xC100)
	c.bus.Write(0xC100, 0x0F)
	c.ExecInstruction()
	if got := c.bus.Read(0xC100); got != 0x10 {
		t.Errorf("INC (HL): expected 0x10, got %02X", got)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Error("INC (HL): expected half-carry from 0x0F")
	}

	c = newTestCPU()
	load(c, 0x35) // DEC (HL)
	c.SetHL(0xC100)
	c.bus.Write(0xC100, 0x01)
	c.ExecInstruction()
	if got := c.bus.Read(0xC100); got != 0x00 {
		t.Errorf("DEC (HL): expected 0x00, got %02X", got)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) {
		t.Errorf("DEC (HL): expected Z and N set, got %02X", c.F())
	}
}

func TestInstr_PushPop(t *testing.T) {
	c := newTestCPU()
	load(c, 0xD5, 0xC1) // PUSH DE ; POP BC
	c.SetDE(0x1234)
	c.SP = 0xE000

	c.ExecInstruction()
	if c.SP != 0xDFFE {
		t.Errorf("PUSH DE: expected SP DFFE, got %04X", c.SP)
	}
	if hi, lo := c.bus.Read(0xDFFF), c.bus.Read(0xDFFE); hi != 0x12 || lo != 0x34 {
		t.Errorf("PUSH DE: expected 12 34 on the stack, got %02X %02X", hi, lo)
	}

	c.ExecInstruction()
	if c.BC() != 0x1234 {
		t.Errorf("POP BC: expected 1234, got %04X", c.BC())
	}
	if c.SP != 0xE000 {
		t.Errorf("POP BC: expected SP E000, got %04X", c.SP)
	}
}

// the low nibble of F does not exist in silicon, so POP AF drops it
func TestInstr_PopAFMasksFlags(t *testing.T) {
	c := newTestCPU()
	load(c, 0xF1) // POP AF
	c.SP = 0xC000
	c.bus.Write(0xC000, 0xFF)
	c.bus.Write(0xC001, 0x12)
	c.ExecInstruction()
	if c.A() != 0x12 || c.F() != 0xF0 {
		t.Errorf("POP AF: expected A:12 F:F0, got A:%02X F:%02X", c.A(), c.F())
	}
}

func TestInstr_Jumps(t *testing.T) {
	c := newTestCPU()
	load(c, 0xC3, 0x00, 0xC0) // JP 0xC000
	c.ExecInstruction()
	if c.PC != 0xC000 {
		t.Errorf("JP a16: expected PC C000, got %04X", c.PC)
	}

	c = newTestCPU()
	load(c, 0xE9) // JP HL
	c.SetHL(0xD000)
	c.ExecInstruction()
	if c.PC != 0xD000 {
		t.Errorf("JP HL: expected PC D000, got %04X", c.PC)
	}

	c = newTestCPU()
	load(c, 0x18, 0xFE) // JR -2: loops back onto itself
	c.ExecInstruction()
	if c.PC != 0x0100 {
		t.Errorf("JR r8: expected PC 0100, got %04X", c.PC)
	}

	c = newTestCPU()
	c.SetF(0x00)
	load(c, 0x20, 0x03) // JR NZ,+3 with Z clear: taken
	c.ExecInstruction()
	if c.PC != 0x0105 {
		t.Errorf("JR NZ taken: expected PC 0105, got %04X", c.PC)
	}

	c = newTestCPU()
	c.SetF(FlagZero)
	load(c, 0x20, 0x03) // Z set: fall through
	c.ExecInstruction()
	if c.PC != 0x0102 {
		t.Errorf("JR NZ not taken: expected PC 0102, got %04X", c.PC)
	}
}

func TestInstr_CallRet(t *testing.T) {
	c := newTestCPU()
	load(c, 0xCD, 0x00, 0xC0) // CALL 0xC000
	c.bus.Write(0xC000, 0xC9) // RET
	c.SP = 0xE000

	c.ExecInstruction()
	if c.PC != 0xC000 {
		t.Errorf("CALL: expected PC C000, got %04X", c.PC)
	}
	if c.SP != 0xDFFE {
		t.Errorf("CALL: expected SP DFFE, got %04X", c.SP)
	}
	if hi, lo := c.bus.Read(0xDFFF), c.bus.Read(0xDFFE); hi != 0x01 || lo != 0x03 {
		t.Errorf("CALL: expected return address 0103 on the stack, got %02X%02X", hi, lo)
	}

	c.ExecInstruction()
	if c.PC != 0x0103 {
		t.Errorf("RET: expected PC 0103, got %04X", c.PC)
	}
	if c.SP != 0xE000 {
		t.Errorf("RET: expected SP E000, got %04X", c.SP)
	}
}

func TestInstr_RetConditional(t *testing.T) {
	c := newTestCPU()
	load(c, 0xD0) // RET NC
	c.SetF(0x00)
	c.SP = 0xC000
	c.bus.Write(0xC000, 0x34)
	c.bus.Write(0xC001, 0x12)
	c.ExecInstruction()
	if c.PC != 0x1234 || c.SP != 0xC002 {
		t.Errorf("RET NC taken: expected PC 1234 SP C002, got PC %04X SP %04X", c.PC, c.SP)
	}

	c = newTestCPU()
	load(c, 0xD0)
	c.SetF(FlagCarry)
	c.SP = 0xC000
	c.ExecInstruction()
	if c.PC != 0x0101 || c.SP != 0xC000 {
		t.Errorf("RET NC not taken: expected PC 0101 SP C000, got PC %04X SP %04X", c.PC, c.SP)
	}
}

func TestInstr_RST(t *testing.T) {
	vectors := []uint16{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38}
	for i, vector := range vectors {
		c := newTestCPU()
		load(c, 0xC7|uint8(i)<<3)
		c.SP = 0xE000
		c.ExecInstruction()
		if c.PC != vector {
			t.Errorf("RST %02X: expected PC %04X, got %04X", vector, vector, c.PC)
		}
		if hi, lo := c.bus.Read(0xDFFF), c.bus.Read(0xDFFE); hi != 0x01 || lo != 0x01 {
			t.Errorf("RST %02X: expected return address 0101 on the stack, got %02X%02X", vector, hi, lo)
		}
	}
}

func TestInstr_InterruptLatch(t *testing.T) {
	c := newTestCPU()
	load(c, 0xFB, 0xF3) // EI ; DI
	c.ExecInstruction()
	if !c.ime {
		t.Error("EI: expected the latch to be set")
	}
	c.ExecInstruction()
	if c.ime {
		t.Error("DI: expected the latch to be cleared")
	}

	c = newTestCPU()
	load(c, 0xD9) // RETI
	c.SP = 0xC000
	c.bus.Write(0xC000, 0x00)
	c.bus.Write(0xC001, 0xD0)
	c.ExecInstruction()
	if c.PC != 0xD000 || !c.ime {
		t.Errorf("RETI: expected PC D000 with the latch set, got PC %04X ime %t", c.PC, c.ime)
	}
}

func TestInstr_AddSP(t *testing.T) {
	tests := []struct {
		sp    uint16
		e     uint8
		want  uint16
		flags uint8
	}{
		{0xFFF8, 0x08, 0x0000, FlagCarry | FlagHalfCarry},
		{0x0001, 0xFF, 0x0000, FlagCarry | FlagHalfCarry}, // -1
		{0xC000, 0x02, 0xC002, 0x00},
		{0x000F, 0x01, 0x0010, FlagHalfCarry},
	}
	for _, test := range tests {
		c := newTestCPU()
		load(c, 0xE8, test.e) // ADD SP,e
		c.SP = test.sp
		c.ExecInstruction()
		if c.SP != test.want {
			t.Errorf("ADD SP,%02X: expected %04X, got %04X", test.e, test.want, c.SP)
		}
		if c.F() != test.flags {
			t.Errorf("ADD SP,%02X: expected flags %02X, got %02X", test.e, test.flags, c.F())
		}
	}
}

func TestInstr_LdHLSP(t *testing.T) {
	c := newTestCPU()
	load(c, 0xF8, 0xFE) // LD HL,SP-2
	c.SP = 0xE000
	c.ExecInstruction()
	if c.HL() != 0xDFFE {
		t.Errorf("LD HL,SP+e: expected DFFE, got %04X", c.HL())
	}
	if c.SP != 0xE000 {
		t.Errorf("LD HL,SP+e: expected SP untouched, got %04X", c.SP)
	}
	if c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
		t.Errorf("LD HL,SP+e: expected Z and N clear, got %02X", c.F())
	}
}

func TestInstr_CB(t *testing.T) {
	c := newTestCPU()
	load(c, 0xCB, 0x11) // RL C
	c.SetC(0x80)
	c.SetF(0x00)
	c.ExecInstruction()
	if c.C() != 0x00 {
		t.Errorf("RL C: expected 0x00, got %02X", c.C())
	}
	if c.F() != FlagZero|FlagCarry {
		t.Errorf("RL C: expected Z and C set, got %02X", c.F())
	}
	if c.PC != 0x0102 {
		t.Errorf("RL C: expected PC 0102, got %04X", c.PC)
	}

	c = newTestCPU()
	load(c, 0xCB, 0x37) // SWAP A
	c.SetA(0xF1)
	c.ExecInstruction()
	if c.A() != 0x1F {
		t.Errorf("SWAP A: expected 0x1F, got %02X", c.A())
	}

	c = newTestCPU()
	load(c, 0xCB, 0x86) // RES 0,(HL)
	c.SetHL(0xC200)
	c.bus.Write(0xC200, 0xFF)
	c.ExecInstruction()
	if got := c.bus.Read(0xC200); got != 0xFE {
		t.Errorf("RES 0,(HL): expected 0xFE, got %02X", got)
	}

	c = newTestCPU()
	load(c, 0xCB, 0xFE) // SET 7,(HL)
	c.SetHL(0xC200)
	c.bus.Write(0xC200, 0x00)
	c.ExecInstruction()
	if got := c.bus.Read(0xC200); got != 0x80 {
		t.Errorf("SET 7,(HL): expected 0x80, got %02X", got)
	}

	c = newTestCPU()
	load(c, 0xCB, 0x46) // BIT 0,(HL)
	c.SetHL(0xC200)
	c.bus.Write(0xC200, 0x00)
	c.SetF(FlagCarry)
	c.ExecInstruction()
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Errorf("BIT 0,(HL): expected Z and H set with C preserved, got %02X", c.F())
	}
}

// the prefix byte and its operand are fetched on separate cycles, so a
// register-operand CB instruction takes two m-cycles in total
func TestInstr_CBCycles(t *testing.T) {
	c := newTestCPU()
	load(c, 0xCB, 0x37, 0x00) // SWAP A ; NOP
	c.SetA(0xF1)

	c.ExecMCycle() // prefix cycle
	if c.A() != 0xF1 {
		t.Error("expected SWAP A to still be pending after the prefix cycle")
	}

	c.ExecMCycle() // operation overlaps the next fetch
	if c.A() != 0x1F {
		t.Errorf("expected SWAP A to complete on the second cycle, got %02X", c.A())
	}
	if c.IR != 0x00 {
		t.Errorf("expected NOP to have been fetched, got %s", c.IR)
	}
}
