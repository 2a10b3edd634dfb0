// Command gen regenerates opcodes_generated.go from opcodes.json.
//
// The JSON file is the single declarative source for the opcode table. It
// must contain exactly 256 records covering every byte value once; anything
// else is a build-time failure, never a runtime one.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type record struct {
	Opcode   uint8    `json:"opcode"`
	ID       string   `json:"id"`
	Mnemonic []string `json:"mnemonic"`
	Length   uint8    `json:"length"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := os.ReadFile("opcodes.json")
	if err != nil {
		return err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	if len(records) != 256 {
		return fmt.Errorf("opcodes.json must hold exactly 256 records, got %d", len(records))
	}

	var seen [256]bool
	for _, r := range records {
		if seen[r.Opcode] {
			return fmt.Errorf("duplicate opcode %#02x", r.Opcode)
		}
		seen[r.Opcode] = true
		if r.ID == "" || len(r.Mnemonic) == 0 {
			return fmt.Errorf("opcode %#02x is missing an id or mnemonic", r.Opcode)
		}
	}

	// records are kept in byte order so the generated tables read like the
	// reference opcode matrix
	width := 0
	for _, r := range records {
		if len(r.ID) > width {
			width = len(r.ID)
		}
	}

	var b strings.Builder
	b.WriteString("// Code generated by go run ./gen; DO NOT EDIT.\n\n")
	b.WriteString("package opcodes\n\n")
	b.WriteString("// Opcode identifies one of the 256 base instruction encodings by its byte\n")
	b.WriteString("// value.\n")
	b.WriteString("type Opcode uint8\n\n")

	b.WriteString("const (\n")
	for _, r := range records {
		fmt.Fprintf(&b, "\t%-*s Opcode = 0x%02X\n", width, r.ID, r.Opcode)
	}
	b.WriteString(")\n\n")

	b.WriteString("// names holds the canonical mnemonic of each opcode.\n")
	b.WriteString("var names = [256]string{\n")
	for _, r := range records {
		fmt.Fprintf(&b, "\t0x%02X: %q,\n", r.Opcode, r.Mnemonic[0])
	}
	b.WriteString("}\n\n")

	b.WriteString("// lengths holds each instruction's byte length, opcode included.\n")
	b.WriteString("var lengths = [256]uint8{\n")
	for _, r := range records {
		fmt.Fprintf(&b, "\t0x%02X: %d,\n", r.Opcode, r.Length)
	}
	b.WriteString("}\n")

	return os.WriteFile("opcodes_generated.go", []byte(b.String()), 0o644)
}
