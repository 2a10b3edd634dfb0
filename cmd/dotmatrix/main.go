// Command dotmatrix drives the CPU core from the command line: run a ROM for
// a number of instructions, disassemble one, or check a directory of
// conformance vectors.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dotmatrix-emu/dotmatrix/internal/conformance"
	"github.com/dotmatrix-emu/dotmatrix/internal/console"
	"github.com/dotmatrix-emu/dotmatrix/internal/opcodes"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	rootCmd := &cobra.Command{
		Use:   "dotmatrix",
		Short: "dotmatrix — cycle-accurate SM83 CPU core",
	}

	var model string
	var instructions int

	runCmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run a ROM for a number of instructions and dump CPU state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			c, err := console.New(rom,
				console.WithModel(types.StringToModel(model)),
				console.WithLogger(log),
			)
			if err != nil {
				return err
			}

			for i := 0; i < instructions; i++ {
				c.StepInstruction()
			}

			fmt.Println(c.CPU)
			return nil
		},
	}
	runCmd.Flags().StringVar(&model, "model", "DMG", "hardware revision to boot as")
	runCmd.Flags().IntVarP(&instructions, "instructions", "n", 1, "number of instructions to run")

	var offset, count int

	disasmCmd := &cobra.Command{
		Use:   "disasm <rom>",
		Short: "Disassemble instructions from a ROM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			addr := offset
			for i := 0; i < count && addr < len(rom); i++ {
				op := opcodes.Decode(rom[addr])
				name := op.String()
				length := int(op.Length())
				if op == opcodes.PREFIX_CB && addr+1 < len(rom) {
					name = opcodes.CBName(rom[addr+1])
				}

				raw := rom[addr:min(addr+length, len(rom))]
				fmt.Printf("%04X  %-9s %s\n", addr, hexBytes(raw), name)
				addr += length
			}
			return nil
		},
	}
	disasmCmd.Flags().IntVar(&offset, "offset", 0x0100, "address to start disassembling at")
	disasmCmd.Flags().IntVarP(&count, "count", "n", 16, "number of instructions to disassemble")

	conformanceCmd := &cobra.Command{
		Use:   "conformance <dir>",
		Short: "Run a directory of single-instruction test vectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := filepath.Glob(filepath.Join(args[0], "*.json"))
			if err != nil {
				return err
			}
			sort.Strings(files)

			var passed, failed int
			for _, file := range files {
				cases, err := conformance.Load(file)
				if err != nil {
					return err
				}

				for _, tc := range cases {
					if msg := conformance.Run(tc); msg != "" {
						log.Errorf("%s: %s", filepath.Base(file), msg)
						failed++
					} else {
						passed++
					}
				}
			}

			log.Infof("%d passed, %d failed", passed, failed)
			if failed > 0 {
				return fmt.Errorf("%d conformance cases failed", failed)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, disasmCmd, conformanceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
