package cartridge

import "testing"

// buildROM assembles a 32KiB image with the given title and a valid header
// checksum.
func buildROM(title string) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x144], title)
	rom[0x147] = 0x00 // ROM only
	rom[0x148] = 0x00 // 32KiB

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestCartridge_New(t *testing.T) {
	cart, err := New(buildROM("TETRIS"))
	if err != nil {
		t.Fatal(err)
	}

	if cart.Title() != "TETRIS" {
		t.Errorf("expected title TETRIS, got %q", cart.Title())
	}
	if cart.Size() != 0x8000 {
		t.Errorf("expected 32KiB image, got %d", cart.Size())
	}
	if h := cart.Header(); h.ROMSize != 0x8000 || h.CartridgeType != 0x00 || !h.ValidChecksum {
		t.Errorf("unexpected header: %s", h)
	}
	if cart.Hash() == 0 {
		t.Error("expected a nonzero image hash")
	}
}

func TestCartridge_TooSmall(t *testing.T) {
	if _, err := New(make([]byte, 0x14F)); err == nil {
		t.Error("expected an image without a full header to be rejected")
	}
}

func TestCartridge_BadChecksum(t *testing.T) {
	rom := buildROM("TETRIS")
	rom[0x14D] ^= 0xFF

	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Header().ValidChecksum {
		t.Error("expected the corrupted checksum to be flagged")
	}
}

func TestCartridge_Read(t *testing.T) {
	rom := buildROM("TETRIS")
	rom[0x200] = 0xAB
	cart, err := New(rom)
	if err != nil {
		t.Fatal(err)
	}

	if got := cart.Read(0x200); got != 0xAB {
		t.Errorf("expected 0xAB, got %02X", got)
	}
	if got := cart.Read(0x8000); got != 0xFF {
		t.Errorf("expected 0xFF past the image, got %02X", got)
	}
}

func TestCartridge_Bytes(t *testing.T) {
	cart, err := New(buildROM("TETRIS"))
	if err != nil {
		t.Fatal(err)
	}

	if got := cart.Bytes(0x7F00, 0x100); len(got) != 0x100 {
		t.Errorf("expected a full page, got %d bytes", len(got))
	}
	if got := cart.Bytes(0x7F80, 0x100); len(got) != 0x80 {
		t.Errorf("expected a clamped view of 0x80 bytes, got %d", len(got))
	}
	if got := cart.Bytes(0x8000, 0x100); got != nil {
		t.Errorf("expected no view past the image, got %d bytes", len(got))
	}
}

func TestCartridge_HashIdentifiesImage(t *testing.T) {
	a, _ := New(buildROM("TETRIS"))
	b, _ := New(buildROM("TETRIS"))
	c, _ := New(buildROM("ZELDA"))

	if a.Hash() != b.Hash() {
		t.Error("expected identical images to hash identically")
	}
	if a.Hash() == c.Hash() {
		t.Error("expected different images to hash differently")
	}
}
