// Package console assembles cartridge, bus and CPU into a drivable system.
// It exposes exactly the primitives the core has: insert a ROM, pick a
// hardware revision, step by instruction or by m-cycle, and inspect state.
package console

import (
	"github.com/sirupsen/logrus"

	"github.com/dotmatrix-emu/dotmatrix/internal/bus"
	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// Console is a Game Boy without its peripherals: the SM83 core, the memory
// bus and the inserted cartridge.
type Console struct {
	CPU  *cpu.CPU
	Bus  *bus.Bus
	Cart *cartridge.Cartridge

	model types.Model
	log   *logrus.Logger
}

type Opt func(*Console)

// WithModel selects the hardware revision to boot as.
func WithModel(m types.Model) Opt {
	return func(c *Console) {
		c.model = m
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) Opt {
	return func(c *Console) {
		c.log = l
	}
}

// New builds a Console around the given ROM image.
func New(rom []byte, opts ...Opt) (*Console, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}

	c := &Console{
		Cart:  cart,
		model: types.DMG,
		log:   newLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Bus = bus.New(cart)
	c.CPU = cpu.New(c.Bus, c.model)

	c.log.Infof("inserted %s xxh64:%016x, booting as %s", cart.Header(), cart.Hash(), c.model)

	return c, nil
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// StepInstruction runs one full instruction.
func (c *Console) StepInstruction() {
	c.CPU.ExecInstruction()
}

// StepCycle advances the system by exactly one m-cycle.
func (c *Console) StepCycle() {
	c.CPU.ExecMCycle()
}

// Model returns the hardware revision the console booted as.
func (c *Console) Model() types.Model {
	return c.model
}
