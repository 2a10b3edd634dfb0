package cpu

// mcodeTable maps every base opcode to its m-code expansion, one entry per
// m-cycle. The last entry of each expansion executes during the fetch of the
// next instruction. Cycle breakdowns follow the Game Boy Complete Technical
// Reference.
var mcodeTable [256][]mcode

func define(opcode uint8, codes ...mcode) {
	mcodeTable[opcode] = codes
}

func nop() mcode                 { return mcode{kind: kNop} }
func illegal() mcode             { return mcode{kind: kIllegal} }
func op(k mcodeKind) mcode       { return mcode{kind: k} }
func ldReg(dst, src reg8) mcode  { return mcode{kind: kLdReg, dst: dst, src: src} }
func readImm(dst reg8) mcode     { return mcode{kind: kReadImm, dst: dst} }
func readImmCond(dst reg8, cc cond) mcode {
	return mcode{kind: kReadImmCond, dst: dst, cond: cc}
}
func readInd(dst reg8, rr reg16) mcode  { return mcode{kind: kReadInd, dst: dst, pair: rr} }
func readIndInc(dst reg8) mcode         { return mcode{kind: kReadIndInc, dst: dst} }
func readIndDec(dst reg8) mcode         { return mcode{kind: kReadIndDec, dst: dst} }
func readHigh(dst, src reg8) mcode      { return mcode{kind: kReadHigh, dst: dst, src: src} }
func writeInd(rr reg16, src reg8) mcode { return mcode{kind: kWriteInd, pair: rr, src: src} }
func writeIndInc(src reg8) mcode        { return mcode{kind: kWriteIndInc, src: src} }
func writeIndDec(src reg8) mcode        { return mcode{kind: kWriteIndDec, src: src} }
func writeHigh(dst, src reg8) mcode     { return mcode{kind: kWriteHigh, dst: dst, src: src} }
func ldPair(rr reg16) mcode             { return mcode{kind: kLdPair, pair: rr} }
func incPair(rr reg16) mcode            { return mcode{kind: kIncPair, pair: rr} }
func decPair(rr reg16) mcode            { return mcode{kind: kDecPair, pair: rr} }
func inc(r reg8) mcode                  { return mcode{kind: kInc, dst: r} }
func dec(r reg8) mcode                  { return mcode{kind: kDec, dst: r} }
func alu(o aluOp, src reg8) mcode       { return mcode{kind: kALU, alu: o, src: src} }
func addHL(rr reg16) mcode              { return mcode{kind: kAddHL, pair: rr} }
func rot(o rotOp, r reg8) mcode         { return mcode{kind: kRot, rot: o, dst: r} }
func rotA(o rotOp) mcode                { return mcode{kind: kRotA, rot: o} }
func rotWrite(o rotOp) mcode            { return mcode{kind: kRotWrite, rot: o} }
func bitTest(bit uint8, src reg8) mcode { return mcode{kind: kBit, bit: bit, src: src} }
func res(bit uint8, r reg8) mcode       { return mcode{kind: kRes, bit: bit, dst: r} }
func set(bit uint8, r reg8) mcode       { return mcode{kind: kSet, bit: bit, dst: r} }
func resWrite(bit uint8) mcode          { return mcode{kind: kResWrite, bit: bit} }
func setWrite(bit uint8) mcode          { return mcode{kind: kSetWrite, bit: bit} }
func checkCond(cc cond) mcode           { return mcode{kind: kCheckCond, cond: cc} }
func pushHigh(rr reg16) mcode           { return mcode{kind: kPushHigh, pair: rr} }
func pushLow(rr reg16) mcode            { return mcode{kind: kPushLow, pair: rr} }
func pushLowJP() mcode                  { return mcode{kind: kPushLowJP} }
func pushLowRST(vector uint8) mcode     { return mcode{kind: kPushLowRST, bit: vector} }
func popLow() mcode                     { return mcode{kind: kPopLow} }
func popHigh() mcode                    { return mcode{kind: kPopHigh} }

var conds = [4]cond{condNZ, condZ, condNC, condC}

func init() {
	// everything not defined below stays illegal and fails loudly when
	// executed: HALT and STOP (no interrupt or clock hardware to define
	// them against) and the 11 unused opcode slots
	for i := range mcodeTable {
		mcodeTable[i] = []mcode{illegal()}
	}

	define(0x00, nop())

	// 16-bit loads, increments, decrements and ADD HL
	pairs := [4]reg16{rrBC, rrDE, rrHL, rrSP}
	for i, rr := range pairs {
		base := uint8(i) << 4
		define(base|0x01, readImm(rZ), readImm(rW), ldPair(rr))
		define(base|0x03, incPair(rr), nop())
		define(base|0x09, addHL(rr), nop())
		define(base|0x0B, decPair(rr), nop())
	}
	define(0x08, readImm(rZ), readImm(rW), op(kWriteSPLow), op(kWriteSPHigh), nop())

	// indirect accumulator loads and stores
	define(0x02, writeInd(rrBC, rA), nop())
	define(0x12, writeInd(rrDE, rA), nop())
	define(0x22, writeIndInc(rA), nop())
	define(0x32, writeIndDec(rA), nop())
	define(0x0A, readInd(rZ, rrBC), ldReg(rA, rZ))
	define(0x1A, readInd(rZ, rrDE), ldReg(rA, rZ))
	define(0x2A, readIndInc(rZ), ldReg(rA, rZ))
	define(0x3A, readIndDec(rZ), ldReg(rA, rZ))

	// INC r, DEC r and LD r,d8, with the (HL) forms in encoding slot 6
	for i, r := range regOrder {
		hi := uint8(i) << 3
		if r == regNone {
			define(0x34, readInd(rZ, rrHL), op(kIncWrite), nop())
			define(0x35, readInd(rZ, rrHL), op(kDecWrite), nop())
			define(0x36, readImm(rZ), writeInd(rrHL, rZ), nop())
			continue
		}
		define(hi|0x04, inc(r))
		define(hi|0x05, dec(r))
		define(hi|0x06, readImm(rZ), ldReg(r, rZ))
	}

	// accumulator rotates and flag operations
	define(0x07, rotA(rotRLC))
	define(0x0F, rotA(rotRRC))
	define(0x17, rotA(rotRL))
	define(0x1F, rotA(rotRR))
	define(0x27, op(kDAA))
	define(0x2F, op(kCPL))
	define(0x37, op(kSCF))
	define(0x3F, op(kCCF))

	// relative jumps; the condition is checked while the offset is read
	define(0x18, readImm(rZ), op(kJR), nop())
	for i, cc := range conds {
		define(0x20|uint8(i)<<3, readImmCond(rZ, cc), op(kJR), nop())
	}

	// the LD r,r' block; 0x76 stays illegal (HALT)
	for d, dst := range regOrder {
		for s, src := range regOrder {
			opcode := 0x40 | uint8(d)<<3 | uint8(s)
			switch {
			case dst == regNone && src == regNone:
			case dst == regNone:
				define(opcode, writeInd(rrHL, src), nop())
			case src == regNone:
				define(opcode, readInd(rZ, rrHL), ldReg(dst, rZ))
			default:
				define(opcode, ldReg(dst, src))
			}
		}
	}

	// the ALU block and its d8 forms
	for o := aluADD; o <= aluCP; o++ {
		for s, src := range regOrder {
			opcode := 0x80 | uint8(o)<<3 | uint8(s)
			if src == regNone {
				define(opcode, readInd(rZ, rrHL), alu(o, rZ))
			} else {
				define(opcode, alu(o, src))
			}
		}
		define(0xC6|uint8(o)<<3, readImm(rZ), alu(o, rZ))
	}

	// stack operations
	stackPairs := [4]reg16{rrBC, rrDE, rrHL, rrAF}
	for i, rr := range stackPairs {
		base := 0xC0 | uint8(i)<<4
		define(base|0x01, popLow(), popHigh(), ldPair(rr))
		define(base|0x05, decPair(rrSP), pushHigh(rr), pushLow(rr), nop())
	}

	// jumps, calls, returns
	define(0xC3, readImm(rZ), readImm(rW), ldPair(rrPC), nop())
	define(0xE9, op(kJPHL))
	define(0xC9, popLow(), popHigh(), ldPair(rrPC), nop())
	define(0xD9, popLow(), popHigh(), ldPair(rrPC), op(kSetIME))
	define(0xCD, readImm(rZ), readImm(rW), decPair(rrSP), pushHigh(rrPC), pushLowJP(), nop())
	for i, cc := range conds {
		define(0xC0|uint8(i)<<3, checkCond(cc), popLow(), popHigh(), ldPair(rrPC), nop())
		define(0xC2|uint8(i)<<3, readImm(rZ), readImmCond(rW, cc), ldPair(rrPC), nop())
		define(0xC4|uint8(i)<<3, readImm(rZ), readImmCond(rW, cc), decPair(rrSP), pushHigh(rrPC), pushLowJP(), nop())
	}
	for v := uint8(0); v < 8; v++ {
		define(0xC7|v<<3, decPair(rrSP), pushHigh(rrPC), pushLowRST(v*8), nop())
	}

	// high page loads
	define(0xE0, readImm(rZ), writeHigh(rZ, rA), nop())
	define(0xF0, readImm(rZ), readHigh(rZ, rZ), ldReg(rA, rZ))
	define(0xE2, writeHigh(rC, rA), nop())
	define(0xF2, readHigh(rZ, rC), ldReg(rA, rZ))
	define(0xEA, readImm(rZ), readImm(rW), writeInd(rrWZ, rA), nop())
	define(0xFA, readImm(rZ), readImm(rW), readInd(rZ, rrWZ), ldReg(rA, rZ))

	// stack pointer arithmetic and transfers
	define(0xE8, readImm(rZ), op(kAddSP), nop(), nop())
	define(0xF8, readImm(rZ), op(kLdHLSP), nop())
	define(0xF9, op(kLdSPHL), nop())

	// interrupt master enable latch
	define(0xF3, op(kClearIME))
	define(0xFB, op(kSetIME))

	// the 0xCB prefix swaps the placeholder for the extended expansion
	define(0xCB, op(kCBPrefix), nop())
}
