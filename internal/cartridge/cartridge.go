// Package cartridge provides the read-only ROM container for the emulated
// system. The cartridge is never mutated after construction; owners share
// its bytes by reference rather than copying them.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Cartridge holds a raw ROM image and its parsed header.
type Cartridge struct {
	rom    []byte
	header Header
	hash   uint64
}

// New parses the header of the given ROM image and wraps it in a Cartridge.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < headerEnd {
		return nil, fmt.Errorf("cartridge: image too small for a header: %d bytes", len(rom))
	}

	return &Cartridge{
		rom:    rom,
		header: parseHeader(rom[headerStart:headerEnd]),
		hash:   xxhash.Sum64(rom),
	}, nil
}

// Read returns the ROM byte at the given address. Reads past the end of the
// image return 0xFF, like an open bus.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}

// Bytes returns a read-only view of up to n bytes of ROM starting at offset.
// The returned slice aliases the cartridge contents; callers must not write
// through it.
func (c *Cartridge) Bytes(offset, n int) []byte {
	if offset >= len(c.rom) {
		return nil
	}
	if offset+n > len(c.rom) {
		n = len(c.rom) - offset
	}
	return c.rom[offset : offset+n]
}

// Size returns the size of the ROM image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Hash returns the xxhash digest of the full ROM image, used to identify the
// cartridge in logs.
func (c *Cartridge) Hash() uint64 {
	return c.hash
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title embedded in the cartridge header.
func (c *Cartridge) Title() string {
	return c.header.Title
}
