// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bench

import (
	"log/slog"

	"github.com/db47h/ahbsim"
	"github.com/db47h/ahbsim/hwlib"
)

// monitor samples the comparator and the stimulus on every rising edge and
// drives the status wires. Once it has raised finish, its outputs are frozen.
//
type monitor struct {
	cycles int // clean cycles required to pass

	count         int
	prev          int64 // LFSR state at the previous edge
	done          bool
	ok, err, err1 bool

	State    [LFSRBits]int  `hw:"in,lfsr"`
	DUT      [Width + 1]int `hw:"in,dut"` // out[0..7], c
	Ref      [Width + 1]int `hw:"in,ref"`
	Mismatch int            `hw:"in,mismatch"`

	SimOK   int `hw:"out,sim_ok"`
	SimErr  int `hw:"out,sim_err"`
	SimErr1 int `hw:"out,sim_err1"`
	Finish  int `hw:"out,finish"`
}

func (m *monitor) Update(c *ahbsim.Circuit) {
	if c.Posedge() && !m.done {
		m.check(c)
	}
	c.Set(m.SimOK, m.ok)
	c.Set(m.SimErr, m.err)
	c.Set(m.SimErr1, m.err1)
	c.Set(m.Finish, m.done)
}

// check runs on the first step after a rising edge, where inputs still hold
// the values settled during the previous cycle.
func (m *monitor) check(c *ahbsim.Circuit) {
	log := c.Context().Logger()
	state := hwlib.Int64(c, m.State[:])
	dut, ref := hwlib.Int64(c, m.DUT[:]), hwlib.Int64(c, m.Ref[:])
	m.count++
	prev := m.prev
	m.prev = state

	switch {
	case c.Get(m.Mismatch):
		log.Warn("output mismatch",
			slog.Int("cycle", m.count),
			slog.Int64("a", state&(1<<Width-1)),
			slog.Int64("b", state>>Width),
			slog.Int64("dut", dut),
			slog.Int64("ref", ref))
		m.err, m.done = true, true
	case state == 0:
		log.Warn("stimulus stuck at zero", slog.Int("cycle", m.count))
		m.err1, m.done = true, true
	case m.count > 1 && state != lfsrNext(prev):
		log.Warn("stimulus out of sequence",
			slog.Int("cycle", m.count),
			slog.Int64("prev", prev),
			slog.Int64("state", state))
		m.err1, m.done = true, true
	case m.count >= m.cycles:
		log.Debug("all cycles passed", slog.Int("cycles", m.count))
		m.ok, m.done = true, true
	}
}
