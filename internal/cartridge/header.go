package cartridge

import (
	"fmt"
	"strings"
)

// The cartridge header occupies 0x0100-0x014F of the ROM image.
const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

// Header represents the parsed cartridge header.
type Header struct {
	// 0x0134-0x0143 - Title of the game, zero padded.
	Title string

	// 0x0147 - CartridgeType identifies the mapper hardware on the
	// cartridge. Only plain ROM cartridges are handled by this core;
	// bank-switching mappers are external hardware.
	CartridgeType uint8

	// 0x0148 - ROMSize in bytes, decoded from the size exponent.
	ROMSize uint32

	// 0x014D - HeaderChecksum as stored in the image.
	HeaderChecksum uint8

	// ValidChecksum reports whether HeaderChecksum matches the checksum
	// computed over 0x0134-0x014C.
	ValidChecksum bool
}

// parseHeader parses the 0x50 byte header region. Offsets below are relative
// to headerStart.
func parseHeader(header []byte) Header {
	h := Header{
		Title:          strings.TrimRight(string(header[0x34:0x44]), "\x00"),
		CartridgeType:  header[0x47],
		ROMSize:        0x8000 << header[0x48],
		HeaderChecksum: header[0x4D],
	}

	// the boot ROM computes x = x - byte - 1 over 0x0134-0x014C and
	// refuses to start the cartridge unless the low byte matches
	var sum uint8
	for _, b := range header[0x34:0x4D] {
		sum = sum - b - 1
	}
	h.ValidChecksum = sum == h.HeaderChecksum

	return h
}

func (h Header) String() string {
	status := "ok"
	if !h.ValidChecksum {
		status = "bad checksum"
	}
	return fmt.Sprintf("%q (type %#02x, %dKiB, %s)", h.Title, h.CartridgeType, h.ROMSize/1024, status)
}
