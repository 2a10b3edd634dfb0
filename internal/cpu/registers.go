package cpu

import "github.com/dotmatrix-emu/dotmatrix/internal/types"

// Bit offset of each 8-bit register within the packed backing value. Each
// pair stores its low register at the lower offset, so the combined 16-bit
// view is simply the two 8-bit fields read as one little-endian-ordered
// field at the same offset.
const (
	shiftF = 0
	shiftA = 8
	shiftC = 16
	shiftB = 24
	shiftE = 32
	shiftD = 40
	shiftL = 48
	shiftH = 56
)

// Flag masks within F. The low nibble of F does not exist in hardware and
// always reads back as zero.
const (
	FlagCarry     uint8 = 0x10
	FlagHalfCarry uint8 = 0x20
	FlagSubtract  uint8 = 0x40
	FlagZero      uint8 = 0x80
)

// Registers packs every CPU-visible 8-bit register, the flag bits and the
// combined 16-bit pairs into a single 64-bit value. The 16-bit views are not
// copies: they alias the same bits as their 8-bit halves, so writing one is
// immediately visible through the other.
type Registers struct {
	bits uint64
}

// initialRegisters returns the register file a given hardware revision boots
// with.
func initialRegisters(model types.Model) Registers {
	var r Registers
	v := types.ModelRegisters[model]
	r.SetA(v[0])
	r.SetF(v[1])
	r.SetB(v[2])
	r.SetC(v[3])
	r.SetD(v[4])
	r.SetE(v[5])
	r.SetH(v[6])
	r.SetL(v[7])
	return r
}

func (r *Registers) get8(shift uint) uint8 {
	return uint8(r.bits >> shift)
}

func (r *Registers) set8(shift uint, v uint8) {
	r.bits = r.bits&^(uint64(0xFF)<<shift) | uint64(v)<<shift
}

func (r *Registers) get16(shift uint) uint16 {
	return uint16(r.bits >> shift)
}

func (r *Registers) set16(shift uint, v uint16) {
	r.bits = r.bits&^(uint64(0xFFFF)<<shift) | uint64(v)<<shift
}

func (r *Registers) A() uint8      { return r.get8(shiftA) }
func (r *Registers) SetA(v uint8)  { r.set8(shiftA, v) }
func (r *Registers) B() uint8      { return r.get8(shiftB) }
func (r *Registers) SetB(v uint8)  { r.set8(shiftB, v) }
func (r *Registers) C() uint8      { return r.get8(shiftC) }
func (r *Registers) SetC(v uint8)  { r.set8(shiftC, v) }
func (r *Registers) D() uint8      { return r.get8(shiftD) }
func (r *Registers) SetD(v uint8)  { r.set8(shiftD, v) }
func (r *Registers) E() uint8      { return r.get8(shiftE) }
func (r *Registers) SetE(v uint8)  { r.set8(shiftE, v) }
func (r *Registers) H() uint8      { return r.get8(shiftH) }
func (r *Registers) SetH(v uint8)  { r.set8(shiftH, v) }
func (r *Registers) L() uint8      { return r.get8(shiftL) }
func (r *Registers) SetL(v uint8)  { r.set8(shiftL, v) }

func (r *Registers) BC() uint16     { return r.get16(shiftC) }
func (r *Registers) SetBC(v uint16) { r.set16(shiftC, v) }
func (r *Registers) DE() uint16     { return r.get16(shiftE) }
func (r *Registers) SetDE(v uint16) { r.set16(shiftE, v) }
func (r *Registers) HL() uint16     { return r.get16(shiftL) }
func (r *Registers) SetHL(v uint16) { r.set16(shiftL, v) }

// F is the virtual flags register. Hardware only ever touches it through AF;
// it is exposed on its own for testing, debugging and logging.
func (r *Registers) F() uint8 {
	return r.get8(shiftF) & 0xF0
}

func (r *Registers) SetF(v uint8) {
	r.set8(shiftF, v&0xF0)
}

// AF combines the accumulator and the flags. The low 4 bits are always zero.
func (r *Registers) AF() uint16 {
	return r.get16(shiftF) & 0xFFF0
}

func (r *Registers) SetAF(v uint16) {
	r.set16(shiftF, v&0xFFF0)
}

func (r *Registers) isFlagSet(flag uint8) bool {
	return r.F()&flag != 0
}

func (r *Registers) setFlag(flag uint8) {
	r.SetF(r.F() | flag)
}

func (r *Registers) clearFlag(flag uint8) {
	r.SetF(r.F() &^ flag)
}

func (r *Registers) setFlagIf(flag uint8, cond bool) {
	if cond {
		r.setFlag(flag)
	} else {
		r.clearFlag(flag)
	}
}

// setFlags replaces the whole flags register in one go.
func (r *Registers) setFlags(zero, subtract, half, carry bool) {
	var f uint8
	if zero {
		f |= FlagZero
	}
	if subtract {
		f |= FlagSubtract
	}
	if half {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	r.SetF(f)
}
