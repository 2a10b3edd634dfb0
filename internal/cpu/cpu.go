// Package cpu implements the SM83 core at m-cycle granularity. Instructions
// decode to ordered sequences of micro-operations ("m-codes"), each consuming
// exactly one m-cycle; the engine pops and executes one m-code per cycle,
// overlapping the last cycle of every instruction with the fetch of the next,
// the way the silicon does.
package cpu

import (
	"fmt"

	"github.com/dotmatrix-emu/dotmatrix/internal/bus"
	"github.com/dotmatrix-emu/dotmatrix/internal/opcodes"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// CPU is the SM83 by Sharp, the CPU used in the DMG. It is distinct from a
// Zilog Z80 despite several similarities.
type CPU struct {
	// Registers holds the general purpose registers and the flags, packed
	// into one 64-bit value with overlapping 8 and 16-bit views.
	Registers

	// PC is the program counter, pointing at the next instruction in
	// memory.
	PC uint16

	// SP is the stack pointer. The stack grows downward.
	SP uint16

	// IR is the instruction register, holding the opcode of the
	// instruction currently executing.
	IR opcodes.Opcode

	// ime is the interrupt master enable latch. DI, EI and RETI drive it;
	// nothing observes it until an interrupt controller exists.
	ime bool

	// w and z are the internal operand latches: z catches the first
	// (low) byte read by a multi-cycle instruction, w the second (high).
	w, z uint8

	queue mcodeQueue

	bus *bus.Bus
}

// New creates a CPU attached to the given bus, with the register state the
// chosen hardware revision boots with.
func New(b *bus.Bus, model types.Model) *CPU {
	return &CPU{
		Registers: initialRegisters(model),
		PC:        types.BootPC,
		SP:        types.BootSP,
		bus:       b,
	}
}

// ExecMCycle advances the CPU by exactly one m-cycle. Fetching the next
// instruction and executing the last m-code of the current one overlap by
// one cycle, so the fetch happens whenever at most one m-code is pending.
func (c *CPU) ExecMCycle() {
	if c.queue.len() <= 1 {
		c.fetch()
	}

	c.exec(c.queue.pop())
}

// ExecInstruction runs until the end of the current instruction, fetching
// one first if the queue is empty. It does not reproduce the fetch overlap;
// it exists to drive single-instruction conformance tests where only the
// final state matters.
func (c *CPU) ExecInstruction() {
	if c.queue.len() == 0 {
		c.fetch()
	}

	for c.queue.len() > 0 {
		c.exec(c.queue.pop())
	}
}

// fetch reads the opcode at PC, queues its m-code expansion and increments
// PC. Every opcode decodes to at least one m-code, so the queue is never
// left empty.
func (c *CPU) fetch() {
	c.IR = opcodes.Decode(c.bus.Read(c.PC))
	c.queue.push(mcodeTable[c.IR]...)
	c.PC++
}

// Bus returns the bus the CPU is attached to.
func (c *CPU) Bus() *bus.Bus {
	return c.bus
}

func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X F:%02X BC:%04X DE:%04X HL:%04X SP:%04X PC:%04X",
		c.A(), c.F(), c.BC(), c.DE(), c.HL(), c.SP, c.PC)
}

// mcodeQueue is a fixed-capacity FIFO of pending m-codes. The longest
// expansion is six cycles, plus one slot for the in-flight overlap m-code.
type mcodeQueue struct {
	codes [8]mcode
	head  int
	count int
}

func (q *mcodeQueue) len() int {
	return q.count
}

func (q *mcodeQueue) push(codes ...mcode) {
	for _, m := range codes {
		if q.count == len(q.codes) {
			panic("mcode queue overflow")
		}
		q.codes[(q.head+q.count)%len(q.codes)] = m
		q.count++
	}
}

// pop removes the front m-code. Popping an empty queue is an internal
// invariant violation: the fetch step guarantees at least one pending
// m-code.
func (q *mcodeQueue) pop() mcode {
	if q.count == 0 {
		panic("popped from empty mcode queue; fetch must queue at least one m-code")
	}
	m := q.codes[q.head]
	q.head = (q.head + 1) % len(q.codes)
	q.count--
	return m
}

func (q *mcodeQueue) clear() {
	q.head, q.count = 0, 0
}

// 8-bit operand selectors. The order of B..A matches the register encoding
// used by the opcode matrix; rZ and rW address the internal latches and
// regNone marks the (HL) slot in that encoding.
type reg8 uint8

const (
	rB reg8 = iota
	rC
	rD
	rE
	rH
	rL
	rA
	rZ
	rW

	regNone reg8 = 0xFF
)

// regOrder maps the 3-bit register encoding of the opcode matrix to operand
// selectors. Slot 6 is the (HL) memory operand.
var regOrder = [8]reg8{rB, rC, rD, rE, rH, rL, regNone, rA}

func (c *CPU) reg8(r reg8) uint8 {
	switch r {
	case rB:
		return c.B()
	case rC:
		return c.C()
	case rD:
		return c.D()
	case rE:
		return c.E()
	case rH:
		return c.H()
	case rL:
		return c.L()
	case rA:
		return c.A()
	case rZ:
		return c.z
	case rW:
		return c.w
	}
	panic(fmt.Sprintf("invalid register selector: %d", r))
}

func (c *CPU) setReg8(r reg8, v uint8) {
	switch r {
	case rB:
		c.SetB(v)
	case rC:
		c.SetC(v)
	case rD:
		c.SetD(v)
	case rE:
		c.SetE(v)
	case rH:
		c.SetH(v)
	case rL:
		c.SetL(v)
	case rA:
		c.SetA(v)
	case rZ:
		c.z = v
	case rW:
		c.w = v
	default:
		panic(fmt.Sprintf("invalid register selector: %d", r))
	}
}

// 16-bit operand selectors.
type reg16 uint8

const (
	rrBC reg16 = iota
	rrDE
	rrHL
	rrSP
	rrAF
	rrPC
	rrWZ
)

func (c *CPU) reg16(rr reg16) uint16 {
	switch rr {
	case rrBC:
		return c.BC()
	case rrDE:
		return c.DE()
	case rrHL:
		return c.HL()
	case rrSP:
		return c.SP
	case rrAF:
		return c.AF()
	case rrPC:
		return c.PC
	case rrWZ:
		return c.wz()
	}
	panic(fmt.Sprintf("invalid register pair selector: %d", rr))
}

func (c *CPU) setReg16(rr reg16, v uint16) {
	switch rr {
	case rrBC:
		c.SetBC(v)
	case rrDE:
		c.SetDE(v)
	case rrHL:
		c.SetHL(v)
	case rrSP:
		c.SP = v
	case rrAF:
		c.SetAF(v)
	case rrPC:
		c.PC = v
	case rrWZ:
		c.w, c.z = uint8(v>>8), uint8(v)
	default:
		panic(fmt.Sprintf("invalid register pair selector: %d", rr))
	}
}

func (c *CPU) wz() uint16 {
	return uint16(c.w)<<8 | uint16(c.z)
}

// condition selectors, in opcode encoding order
type cond uint8

const (
	condNZ cond = iota
	condZ
	condNC
	condC
)

func (c *CPU) condMet(cc cond) bool {
	switch cc {
	case condNZ:
		return !c.isFlagSet(FlagZero)
	case condZ:
		return c.isFlagSet(FlagZero)
	case condNC:
		return !c.isFlagSet(FlagCarry)
	case condC:
		return c.isFlagSet(FlagCarry)
	}
	panic(fmt.Sprintf("invalid condition selector: %d", cc))
}
