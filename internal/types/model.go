// Package types holds the hardware model definitions shared across the
// emulator core.
package types

import "strings"

type Model int // The hardware revision being emulated.

const (
	DMG  Model = iota // DMG - the original Game Boy
	MGB               // MGB - Game Boy Pocket
	SGB               // SGB - Super Game Boy
	SGB2              // SGB2 - Super Game Boy 2
	CGB               // CGB - Game Boy Color
	AGB               // AGB - Game Boy Advance
	AGS               // AGS - Game Boy Advance SP
)

var ModelNames = map[Model]string{
	DMG:  "DMG",
	MGB:  "MGB",
	SGB:  "SGB",
	SGB2: "SGB2",
	CGB:  "CGB",
	AGB:  "AGB",
	AGS:  "AGS",
}

// StringToModel converts a string to a Model, defaulting to DMG.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return DMG
}

func (m Model) String() string {
	return ModelNames[m]
}

// ModelRegisters - the CPU registers each revision leaves behind after its
// boot ROM runs, in the order A, F, B, C, D, E, H, L. Values via the Cycle
// Accurate Game Boy Docs; the SGB and SGB2 rows have not been verified on
// hardware.
var ModelRegisters = map[Model][8]uint8{
	DMG:  {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	MGB:  {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB:  {0x01, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	SGB2: {0xFF, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
	CGB:  {0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C},
	AGB:  {0x11, 0x00, 0x01, 0x00, 0x00, 0x08, 0x00, 0x7C},
	AGS:  {0x11, 0x00, 0x01, 0x00, 0x00, 0x08, 0x00, 0x7C},
}

// Every revision hands control to the cartridge with the same PC and SP.
const (
	BootPC uint16 = 0x0100
	BootSP uint16 = 0xFFFE
)
