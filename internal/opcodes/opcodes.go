// Package opcodes holds the decode artifacts derived from the declarative
// opcode table in opcodes.json: a closed enumeration of the 256 base opcodes,
// their canonical mnemonics and their byte lengths. The table is produced at
// build time by the generator under gen; the emulator only ever performs
// fixed-cost lookups against it.
package opcodes

import "fmt"

//go:generate go run ./gen

// Decode maps a fetched byte to its Opcode. The opcode space is closed, so
// decoding is total and can never fail.
func Decode(b uint8) Opcode {
	return Opcode(b)
}

func (o Opcode) String() string {
	return names[o]
}

// Length returns the instruction length in bytes, opcode included.
func (o Opcode) Length() uint8 {
	return lengths[o]
}

var (
	cbOps  = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	cbRegs = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
)

// CBName returns the mnemonic of a 0xCB-prefixed opcode. The extended table
// is fully regular, so names are computed rather than tabled.
func CBName(b uint8) string {
	reg := cbRegs[b&0x07]
	bit := b >> 3 & 0x07

	switch {
	case b < 0x40:
		return fmt.Sprintf("%s %s", cbOps[b>>3], reg)
	case b < 0x80:
		return fmt.Sprintf("BIT %d,%s", bit, reg)
	case b < 0xC0:
		return fmt.Sprintf("RES %d,%s", bit, reg)
	default:
		return fmt.Sprintf("SET %d,%s", bit, reg)
	}
}
