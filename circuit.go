// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Status wire names. A circuit exposes these wires as the outputs of the Model
// interface. Missing wires read false.
//
const (
	SimOKWire   = "sim_ok"
	SimErrWire  = "sim_err"
	SimErr1Wire = "sim_err1"
	// FinishWire ends the simulation when it is high at the end of an Eval.
	FinishWire = "finish"
)

const (
	edgeNone = iota
	edgePos
	edgeNeg
)

// Circuit is a runnable circuit simulation. It implements Model.
//
type Circuit struct {
	ctx   *Context
	s0    []bool // wire states frame #0
	s1    []bool // wire states frame #1
	cs    []Component
	count int // wire count
	wires map[string]int

	ok, err, err1, fin int // status wires, -1 if absent

	clk      bool // clock value at the previous Eval
	edge     int
	steps    uint64
	evals    uint64
	maxSteps int
	final    bool
}

// NewCircuit builds a new circuit based on the given parts.
//
// Parts are wired together through named wires: two parts are connected when
// they use the same wire name. The wires named by SimOKWire, SimErrWire,
// SimErr1Wire and FinishWire, if any, are the status outputs of the circuit.
// The Clk wire is driven by SetClk.
//
// Once mounted, the circuit is settled so that the reset state of its parts is
// visible before the first clock edge.
//
func NewCircuit(ctx *Context, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	wrap, err := Chip("CIRCUIT", "", "", parts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}

	// new circuit with room for constant value pins.
	c := &Circuit{ctx: ctx, count: cstCount}
	root := newSocket(c)
	c.cs = wrap("").Mount(root)
	c.wires = root.m
	c.s0 = make([]bool, c.count)
	c.s1 = make([]bool, c.count)
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true

	c.ok = c.wireOrNone(SimOKWire)
	c.err = c.wireOrNone(SimErrWire)
	c.err1 = c.wireOrNone(SimErr1Wire)
	c.fin = c.wireOrNone(FinishWire)

	// the longest propagation path cannot go through more wires than there are.
	c.maxSteps = c.count + 2

	if err = c.settle(); err != nil {
		return nil, err
	}

	ctx.Logger().Debug("circuit ready",
		slog.Int("components", len(c.cs)),
		slog.Int("wires", c.count),
		slog.Uint64("steps", c.steps))

	return c, nil
}

func (c *Circuit) wireOrNone(name string) int {
	if n, ok := c.wires[name]; ok {
		return n
	}
	return -1
}

// alloc allocates a pin and returns its number.
//
func (c *Circuit) allocPin() int {
	cnt := c.count
	c.count++
	return cnt
}

// Context returns the context the circuit was built with.
//
func (c *Circuit) Context() *Context {
	return c.ctx
}

// Wire returns the pin number of the named top-level wire.
//
func (c *Circuit) Wire(name string) (int, bool) {
	n, ok := c.wires[name]
	return n, ok
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint64 {
	return c.steps
}

// Evals returns the number of calls to Eval.
//
func (c *Circuit) Evals() uint64 {
	return c.evals
}

// Posedge returns true during the first step of an Eval that follows a
// rising edge of Clk. Clocked components sample their inputs then.
//
func (c *Circuit) Posedge() bool {
	return c.edge == edgePos
}

// Negedge returns true during the first step of an Eval that follows a
// falling edge of Clk.
//
func (c *Circuit) Negedge() bool {
	return c.edge == edgeNeg
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Toggle toggles the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Toggle(n int) {
	c.s1[n] = !c.s0[n]
}

// Step advances the simulation by one step and reports whether any wire
// changed state.
//
func (c *Circuit) Step() bool {
	for _, f := range c.cs {
		f(c)
	}
	c.steps++

	changed := false
	for i := cstCount; i < c.count; i++ {
		if c.s0[i] != c.s1[i] {
			changed = true
			break
		}
	}
	c.s0, c.s1 = c.s1, c.s0
	return changed
}

func (c *Circuit) settle() error {
	for i := 0; i < c.maxSteps; i++ {
		changed := c.Step()
		c.edge = edgeNone
		if !changed {
			return nil
		}
	}
	return errors.Errorf("circuit did not settle after %d steps", c.maxSteps)
}

// Clk returns the state of the clock input.
//
func (c *Circuit) Clk() bool {
	return c.s0[cstClk]
}

// SetClk sets the clock input. The new value is seen by the next Eval.
//
func (c *Circuit) SetClk(v bool) {
	c.s0[cstClk] = v
	c.s1[cstClk] = v
}

// Eval runs the simulation until all wires are stable. It panics if the
// circuit does not settle, which happens with unclocked feedback loops, or if
// the circuit has been finalized.
//
// If the FinishWire is high once settled, Eval calls Finish on the context.
//
func (c *Circuit) Eval() {
	if c.final {
		panic("Eval called on a finalized circuit")
	}

	clk := c.s0[cstClk]
	switch {
	case clk && !c.clk:
		c.edge = edgePos
	case !clk && c.clk:
		c.edge = edgeNeg
	}
	c.clk = clk

	if err := c.settle(); err != nil {
		panic(err)
	}
	c.evals++

	if c.fin >= 0 && c.s0[c.fin] {
		c.ctx.Finish()
	}
}

// Tick raises Clk and evaluates the circuit.
//
func (c *Circuit) Tick() {
	c.SetClk(true)
	c.Eval()
}

// Tock lowers Clk and evaluates the circuit.
//
func (c *Circuit) Tock() {
	c.SetClk(false)
	c.Eval()
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}

func (c *Circuit) status(n int) bool {
	return n >= 0 && c.s0[n]
}

// SimOK returns the state of the SimOKWire.
func (c *Circuit) SimOK() bool { return c.status(c.ok) }

// SimErr returns the state of the SimErrWire.
func (c *Circuit) SimErr() bool { return c.status(c.err) }

// SimErr1 returns the state of the SimErr1Wire.
func (c *Circuit) SimErr1() bool { return c.status(c.err1) }

// Final marks the end of the simulation. Calls after the first one have no
// effect.
//
func (c *Circuit) Final() {
	if c.final {
		return
	}
	c.final = true
	c.ctx.Logger().Debug("circuit finalized",
		slog.Uint64("evals", c.evals),
		slog.Uint64("steps", c.steps))
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
