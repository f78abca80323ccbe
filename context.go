// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

import (
	"context"
	"log/slog"
	"math/rand"
	"os"

	"github.com/rs/xid"
)

// LevelTrace is the log level used for per-iteration driver records.
const LevelTrace = slog.LevelDebug - 4

// RandResetMode selects the value taken by model state that has no explicit
// initial value.
//
type RandResetMode int

// Random reset modes.
const (
	RandResetZero   RandResetMode = iota // all zeros
	RandResetOnes                        // all ones
	RandResetRandom                      // pseudo-random pattern from a fixed seed
)

// randResetSeed seeds RandResetRandom so that runs are reproducible.
const randResetSeed = 0x5eed

// A Context holds the simulation policy and the simulated time of a single
// run. It is owned by the goroutine running the simulation and is not safe
// for concurrent use.
//
type Context struct {
	id          xid.ID
	debug       int
	randReset   RandResetMode
	traceEverOn bool
	time        uint64
	finished    bool

	rnd   *rand.Rand
	level *slog.LevelVar
	log   *slog.Logger
}

// NewContext returns a new context with a debug level of 0, random reset mode
// RandResetRandom and tracing enabled.
//
func NewContext() *Context {
	c := &Context{
		id:          xid.New(),
		randReset:   RandResetRandom,
		traceEverOn: true,
		rnd:         rand.New(rand.NewSource(randResetSeed)),
		level:       new(slog.LevelVar),
	}
	c.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.level})).
		With(slog.String("run", c.id.String()))
	c.SetDebug(0)
	return c
}

// ID returns the unique identifier of the run.
func (c *Context) ID() xid.ID { return c.id }

// Logger returns the context logger. Its level follows the debug level.
func (c *Context) Logger() *slog.Logger { return c.log }

// SetDebug sets the debug level. 0 only logs warnings and errors, 1 enables
// debug records and 2 or more enables per-iteration trace records.
//
func (c *Context) SetDebug(level int) {
	c.debug = level
	switch {
	case level <= 0:
		c.level.Set(slog.LevelWarn)
	case level == 1:
		c.level.Set(slog.LevelDebug)
	default:
		c.level.Set(LevelTrace)
	}
}

// Debug returns the debug level.
func (c *Context) Debug() int { return c.debug }

// SetRandReset sets the random reset mode. It must be called before the model
// is built.
//
func (c *Context) SetRandReset(mode RandResetMode) {
	c.randReset = mode
	c.rnd.Seed(randResetSeed)
}

// RandReset returns the random reset mode.
func (c *Context) RandReset() RandResetMode { return c.randReset }

// RandResetBit returns the initial value of an uninitialized state bit
// according to the random reset mode.
//
func (c *Context) RandResetBit() bool {
	switch c.randReset {
	case RandResetZero:
		return false
	case RandResetOnes:
		return true
	default:
		return c.rnd.Int63()&(1<<62) != 0
	}
}

// SetTraceEverOn records whether the model may produce traces.
func (c *Context) SetTraceEverOn(on bool) { c.traceEverOn = on }

// TraceEverOn reports whether the model may produce traces.
func (c *Context) TraceEverOn() bool { return c.traceEverOn }

// TimeInc advances the simulated time by d units.
//
func (c *Context) TimeInc(d uint64) {
	c.time += d
}

// Time returns the simulated time.
func (c *Context) Time() uint64 { return c.time }

// Finish is called by the model when it is done. Calls after the first one
// have no effect.
//
func (c *Context) Finish() {
	if c.finished {
		return
	}
	c.finished = true
	c.log.Debug("finish requested", slog.Uint64("time", c.time))
}

// GotFinish reports whether the model has called Finish.
func (c *Context) GotFinish() bool { return c.finished }

func (c *Context) trace(msg string, args ...any) {
	c.log.Log(context.Background(), LevelTrace, msg, args...)
}
