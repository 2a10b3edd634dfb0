// Package bus implements the 64KB memory bus as 256 pages of 256 bytes.
// An address splits into a page selector (high byte) and an index within
// the page (low byte); every address resolves to exactly one page, so reads
// and writes never fail.
package bus

import "github.com/dotmatrix-emu/dotmatrix/internal/cartridge"

const (
	// PageSize is the number of bytes in one page.
	PageSize = 0x100

	pageCount = 0x100
)

type pageKind uint8

const (
	pageRAM pageKind = iota
	pageROM
)

// page is one 256-byte chunk of address space. RAM pages own their backing
// array; ROM pages alias a read-only slice of the cartridge image.
type page struct {
	kind pageKind
	ram  [PageSize]uint8
	rom  []uint8
}

func (p *page) read(index uint8) uint8 {
	switch p.kind {
	case pageROM:
		if int(index) < len(p.rom) {
			return p.rom[index]
		}
		return 0xFF
	default:
		return p.ram[index]
	}
}

func (p *page) write(index, value uint8) {
	switch p.kind {
	case pageROM:
		// ROM ignores writes; bank-switching hardware lives on the
		// cartridge, not the bus
	default:
		p.ram[index] = value
	}
}

// Bus is the main system bus. Addresses are 16 bits wide, values 8 bits.
type Bus struct {
	pages [pageCount]page
}

// New creates a Bus with the standard memory map: cartridge ROM mapped
// read-only at 0x0000-0x7FFF, RAM everywhere else.
func New(cart *cartridge.Cartridge) *Bus {
	b := NewFlat()
	if cart == nil {
		return b
	}
	for i := 0; i < 0x80; i++ {
		b.pages[i] = page{kind: pageROM, rom: cart.Bytes(i*PageSize, PageSize)}
	}
	return b
}

// NewFlat creates an all-RAM Bus, used to stage arbitrary register and
// memory state for conformance testing.
func NewFlat() *Bus {
	b := &Bus{}
	for i := range b.pages {
		for j := range b.pages[i].ram {
			// unprogrammed memory reads back 0xFF
			b.pages[i].ram[j] = 0xFF
		}
	}
	return b
}

// Read returns the byte at the given address.
func (b *Bus) Read(address uint16) uint8 {
	return b.pages[address>>8].read(uint8(address))
}

// Write writes a byte to the given address.
func (b *Bus) Write(address uint16, value uint8) {
	b.pages[address>>8].write(uint8(address), value)
}

// Read16 reads a little-endian word. The second byte comes from address+1
// with ordinary 16-bit wraparound, so a read at 0xFFFF spans 0xFFFF and
// 0x0000, matching the real bus.
func (b *Bus) Read16(address uint16) uint16 {
	return uint16(b.Read(address)) | uint16(b.Read(address+1))<<8
}

// Write16 writes a little-endian word, with the same wraparound rule as
// Read16.
func (b *Bus) Write16(address uint16, value uint16) {
	b.Write(address, uint8(value))
	b.Write(address+1, uint8(value>>8))
}
