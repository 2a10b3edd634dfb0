package cpu

// ALU operation selectors, in the encoding order of the 0x80-0xBF opcode
// block.
type aluOp uint8

const (
	aluADD aluOp = iota
	aluADC
	aluSUB
	aluSBC
	aluAND
	aluXOR
	aluOR
	aluCP
)

// rotate/shift selectors, in the encoding order of the 0xCB table.
type rotOp uint8

const (
	rotRLC rotOp = iota
	rotRRC
	rotRL
	rotRR
	rotSLA
	rotSRA
	rotSWAP
	rotSRL
)

// execALU applies an 8-bit ALU operation between A and v.
func (c *CPU) execALU(op aluOp, v uint8) {
	a := c.A()

	switch op {
	case aluADD:
		c.SetA(c.add(a, v, false))
	case aluADC:
		c.SetA(c.add(a, v, c.isFlagSet(FlagCarry)))
	case aluSUB:
		c.SetA(c.sub(a, v, false))
	case aluSBC:
		c.SetA(c.sub(a, v, c.isFlagSet(FlagCarry)))
	case aluAND:
		r := a & v
		c.SetA(r)
		c.setFlags(r == 0, false, true, false)
	case aluXOR:
		r := a ^ v
		c.SetA(r)
		c.setFlags(r == 0, false, false, false)
	case aluOR:
		r := a | v
		c.SetA(r)
		c.setFlags(r == 0, false, false, false)
	case aluCP:
		c.sub(a, v, false)
	}
}

func (c *CPU) add(a, b uint8, carry bool) uint8 {
	var cy uint8
	if carry {
		cy = 1
	}

	sum := uint16(a) + uint16(b) + uint16(cy)
	res := uint8(sum)
	c.setFlags(res == 0, false, a&0xF+b&0xF+cy > 0xF, sum > 0xFF)
	return res
}

func (c *CPU) sub(a, b uint8, carry bool) uint8 {
	var cy uint8
	if carry {
		cy = 1
	}

	res := a - b - cy
	c.setFlags(res == 0, true, a&0xF < b&0xF+cy, uint16(a) < uint16(b)+uint16(cy))
	return res
}

// inc8 and dec8 leave the carry flag untouched.
func (c *CPU) inc8(v uint8) uint8 {
	r := v + 1
	c.setFlagIf(FlagZero, r == 0)
	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, v&0xF == 0xF)
	return r
}

func (c *CPU) dec8(v uint8) uint8 {
	r := v - 1
	c.setFlagIf(FlagZero, r == 0)
	c.setFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, v&0xF == 0)
	return r
}

// addHL adds a 16-bit register pair into HL. The zero flag is untouched.
func (c *CPU) addHL(v uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(v)
	c.clearFlag(FlagSubtract)
	c.setFlagIf(FlagHalfCarry, hl&0xFFF+v&0xFFF > 0xFFF)
	c.setFlagIf(FlagCarry, sum > 0xFFFF)
	c.SetHL(uint16(sum))
}

// addSigned adds a sign-extended immediate to a 16-bit value, with the half
// and carry flags computed from the unsigned low byte addition, which is how
// the hardware does ADD SP,e and LD HL,SP+e.
func (c *CPU) addSigned(v uint16, e uint8) uint16 {
	c.setFlags(false, false, v&0xF+uint16(e&0xF) > 0xF, v&0xFF+uint16(e) > 0xFF)
	return v + uint16(int16(int8(e)))
}

// rotate applies one of the 0xCB-table rotate/shift operations. The A-form
// rotates (RLCA and friends) always clear the zero flag; the 0xCB forms set
// it from the result.
func (c *CPU) rotate(op rotOp, v uint8, zeroFlag bool) uint8 {
	var r uint8
	var carry bool

	switch op {
	case rotRLC:
		carry = v&0x80 != 0
		r = v<<1 | v>>7
	case rotRRC:
		carry = v&1 != 0
		r = v>>1 | v<<7
	case rotRL:
		carry = v&0x80 != 0
		r = v << 1
		if c.isFlagSet(FlagCarry) {
			r |= 1
		}
	case rotRR:
		carry = v&1 != 0
		r = v >> 1
		if c.isFlagSet(FlagCarry) {
			r |= 0x80
		}
	case rotSLA:
		carry = v&0x80 != 0
		r = v << 1
	case rotSRA:
		carry = v&1 != 0
		r = v>>1 | v&0x80
	case rotSWAP:
		r = v<<4 | v>>4
	case rotSRL:
		carry = v&1 != 0
		r = v >> 1
	}

	c.setFlags(zeroFlag && r == 0, false, false, carry)
	return r
}

// bitTest sets the zero flag from the complement of the tested bit. The
// carry flag is untouched.
func (c *CPU) bitTest(bit, v uint8) {
	c.setFlagIf(FlagZero, v>>bit&1 == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// daa adjusts A after a BCD addition or subtraction.
func (c *CPU) daa() {
	a := c.A()

	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || a > 0x99 {
			a += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}

	c.SetA(a)
	c.setFlagIf(FlagZero, a == 0)
	c.clearFlag(FlagHalfCarry)
}
