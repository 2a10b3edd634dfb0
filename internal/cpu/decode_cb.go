package cpu

// cbTable maps every 0xCB-prefixed opcode to the m-codes that follow the
// prefix cycle. The extended table is fully regular, so it is computed from
// the opcode bits rather than written out.
var cbTable [256][]mcode

func init() {
	for i := range cbTable {
		opcode := uint8(i)
		r := regOrder[opcode&0x07]
		bit := opcode >> 3 & 0x07

		switch {
		case opcode < 0x40:
			o := rotOp(opcode >> 3)
			if r == regNone {
				cbTable[i] = []mcode{readInd(rZ, rrHL), rotWrite(o), nop()}
			} else {
				cbTable[i] = []mcode{rot(o, r)}
			}
		case opcode < 0x80:
			if r == regNone {
				cbTable[i] = []mcode{readInd(rZ, rrHL), bitTest(bit, rZ)}
			} else {
				cbTable[i] = []mcode{bitTest(bit, r)}
			}
		case opcode < 0xC0:
			if r == regNone {
				cbTable[i] = []mcode{readInd(rZ, rrHL), resWrite(bit), nop()}
			} else {
				cbTable[i] = []mcode{res(bit, r)}
			}
		default:
			if r == regNone {
				cbTable[i] = []mcode{readInd(rZ, rrHL), setWrite(bit), nop()}
			} else {
				cbTable[i] = []mcode{set(bit, r)}
			}
		}
	}
}
