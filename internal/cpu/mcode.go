package cpu

import "fmt"

// mcode is one micro-operation: the unit of work the engine performs within
// a single m-cycle. Instructions are broken down into ordered mcode
// sequences following the per-cycle diagrams in the Game Boy Complete
// Technical Reference; this is not based on any microcode the SM83 may or
// may not have.
type mcode struct {
	kind mcodeKind
	dst  reg8
	src  reg8
	pair reg16
	alu  aluOp
	rot  rotOp
	cond cond
	bit  uint8 // bit index for BIT/RES/SET, target vector for RST
}

type mcodeKind uint8

const (
	kNop         mcodeKind = iota
	kIllegal               // undefined or unimplemented instruction, fatal
	kLdReg                 // dst <- src
	kReadImm               // dst <- [PC]; PC++
	kReadImmCond           // dst <- [PC]; PC++; cond not met: skip to the overlap cycle
	kReadInd               // dst <- [pair]
	kReadIndInc            // dst <- [HL]; HL++
	kReadIndDec            // dst <- [HL]; HL--
	kReadHigh              // dst <- [0xFF00|src]
	kWriteInd              // [pair] <- src
	kWriteIndInc           // [HL] <- src; HL++
	kWriteIndDec           // [HL] <- src; HL--
	kWriteHigh             // [0xFF00|dst] <- src
	kLdPair                // pair <- WZ
	kLdSPHL                // SP <- HL
	kJPHL                  // PC <- HL
	kIncPair               // pair++, no flags
	kDecPair               // pair--, no flags
	kInc                   // dst++, Z N H flags
	kDec                   // dst--, Z N H flags
	kIncWrite              // [HL] <- Z+1, Z N H flags
	kDecWrite              // [HL] <- Z-1, Z N H flags
	kALU                   // A <- A <op> src (CP leaves A untouched)
	kAddHL                 // HL += pair, N H C flags
	kAddSP                 // SP += signed Z, flags from the low byte add
	kLdHLSP                // HL <- SP + signed Z, flags from the low byte add
	kRot                   // dst <- rot(dst), Z flag from result
	kRotA                  // A <- rot(A), Z flag always cleared
	kRotWrite              // [HL] <- rot(Z)
	kBit                   // test bit of src, Z N H flags
	kRes                   // dst <- dst with bit cleared
	kSet                   // dst <- dst with bit set
	kResWrite              // [HL] <- Z with bit cleared
	kSetWrite              // [HL] <- Z with bit set
	kDAA                   // decimal adjust A
	kCPL                   // A <- ^A
	kSCF                   // set carry
	kCCF                   // complement carry
	kJR                    // PC += signed Z
	kCheckCond             // cond not met: skip to the overlap cycle
	kPushHigh              // [SP] <- high(pair); SP--
	kPushLow               // [SP] <- low(pair)
	kPushLowJP             // [SP] <- low(PC); PC <- WZ
	kPushLowRST            // [SP] <- low(PC); PC <- vector
	kPopLow                // Z <- [SP]; SP++
	kPopHigh               // W <- [SP]; SP++
	kWriteSPLow            // [WZ] <- low(SP); WZ++
	kWriteSPHigh           // [WZ] <- high(SP)
	kSetIME                // interrupt master enable latch on
	kClearIME              // interrupt master enable latch off
	kCBPrefix              // read the 0xCB opcode, swap in its expansion
)

// exec performs one m-code against the register file and bus. Dispatch is an
// exhaustive switch: the catalog is closed and compiled in.
func (c *CPU) exec(m mcode) {
	switch m.kind {
	case kNop:
	case kIllegal:
		panic(fmt.Sprintf("illegal instruction encountered: %#02x (%s)", uint8(c.IR), c.IR))
	case kLdReg:
		c.setReg8(m.dst, c.reg8(m.src))
	case kReadImm:
		c.setReg8(m.dst, c.bus.Read(c.PC))
		c.PC++
	case kReadImmCond:
		c.setReg8(m.dst, c.bus.Read(c.PC))
		c.PC++
		if !c.condMet(m.cond) {
			c.skipToOverlap()
		}
	case kReadInd:
		c.setReg8(m.dst, c.bus.Read(c.reg16(m.pair)))
	case kReadIndInc:
		c.setReg8(m.dst, c.bus.Read(c.HL()))
		c.SetHL(c.HL() + 1)
	case kReadIndDec:
		c.setReg8(m.dst, c.bus.Read(c.HL()))
		c.SetHL(c.HL() - 1)
	case kReadHigh:
		c.setReg8(m.dst, c.bus.Read(0xFF00|uint16(c.reg8(m.src))))
	case kWriteInd:
		c.bus.Write(c.reg16(m.pair), c.reg8(m.src))
	case kWriteIndInc:
		c.bus.Write(c.HL(), c.reg8(m.src))
		c.SetHL(c.HL() + 1)
	case kWriteIndDec:
		c.bus.Write(c.HL(), c.reg8(m.src))
		c.SetHL(c.HL() - 1)
	case kWriteHigh:
		c.bus.Write(0xFF00|uint16(c.reg8(m.dst)), c.reg8(m.src))
	case kLdPair:
		c.setReg16(m.pair, c.wz())
	case kLdSPHL:
		c.SP = c.HL()
	case kJPHL:
		c.PC = c.HL()
	case kIncPair:
		c.setReg16(m.pair, c.reg16(m.pair)+1)
	case kDecPair:
		c.setReg16(m.pair, c.reg16(m.pair)-1)
	case kInc:
		c.setReg8(m.dst, c.inc8(c.reg8(m.dst)))
	case kDec:
		c.setReg8(m.dst, c.dec8(c.reg8(m.dst)))
	case kIncWrite:
		c.bus.Write(c.HL(), c.inc8(c.z))
	case kDecWrite:
		c.bus.Write(c.HL(), c.dec8(c.z))
	case kALU:
		c.execALU(m.alu, c.reg8(m.src))
	case kAddHL:
		c.addHL(c.reg16(m.pair))
	case kAddSP:
		c.SP = c.addSigned(c.SP, c.z)
	case kLdHLSP:
		c.SetHL(c.addSigned(c.SP, c.z))
	case kRot:
		c.setReg8(m.dst, c.rotate(m.rot, c.reg8(m.dst), true))
	case kRotA:
		c.SetA(c.rotate(m.rot, c.A(), false))
	case kRotWrite:
		c.bus.Write(c.HL(), c.rotate(m.rot, c.z, true))
	case kBit:
		c.bitTest(m.bit, c.reg8(m.src))
	case kRes:
		c.setReg8(m.dst, c.reg8(m.dst)&^(1<<m.bit))
	case kSet:
		c.setReg8(m.dst, c.reg8(m.dst)|1<<m.bit)
	case kResWrite:
		c.bus.Write(c.HL(), c.z&^(1<<m.bit))
	case kSetWrite:
		c.bus.Write(c.HL(), c.z|1<<m.bit)
	case kDAA:
		c.daa()
	case kCPL:
		c.SetA(^c.A())
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case kSCF:
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	case kCCF:
		c.setFlagIf(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	case kJR:
		c.PC += uint16(int16(int8(c.z)))
	case kCheckCond:
		if !c.condMet(m.cond) {
			c.skipToOverlap()
		}
	case kPushHigh:
		c.bus.Write(c.SP, uint8(c.reg16(m.pair)>>8))
		c.SP--
	case kPushLow:
		c.bus.Write(c.SP, uint8(c.reg16(m.pair)))
	case kPushLowJP:
		c.bus.Write(c.SP, uint8(c.PC))
		c.PC = c.wz()
	case kPushLowRST:
		c.bus.Write(c.SP, uint8(c.PC))
		c.PC = uint16(m.bit)
	case kPopLow:
		c.z = c.bus.Read(c.SP)
		c.SP++
	case kPopHigh:
		c.w = c.bus.Read(c.SP)
		c.SP++
	case kWriteSPLow:
		c.bus.Write(c.wz(), uint8(c.SP))
		c.setReg16(rrWZ, c.wz()+1)
	case kWriteSPHigh:
		c.bus.Write(c.wz(), uint8(c.SP>>8))
	case kSetIME:
		c.ime = true
	case kClearIME:
		c.ime = false
	case kCBPrefix:
		c.execCBPrefix()
	default:
		panic(fmt.Sprintf("unknown mcode kind: %d", m.kind))
	}
}

// skipToOverlap drops the remaining m-codes of a not-taken conditional.
// Every conditional expansion ends with a plain overlap cycle, so the queue
// collapses to a single nop.
func (c *CPU) skipToOverlap() {
	c.queue.clear()
	c.queue.push(nop())
}

// execCBPrefix consumes the second byte of a 0xCB-prefixed instruction and
// replaces the pending placeholder with the decoded expansion.
func (c *CPU) execCBPrefix() {
	op := c.bus.Read(c.PC)
	c.PC++
	c.queue.clear()
	c.queue.push(cbTable[op]...)
}
