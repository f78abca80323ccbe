// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

import (
	"fmt"
	"io"
	"log/slog"
)

// Observation lines written by Run.
const (
	MsgPassed = "Simulation passed!"
	MsgFailed = "Simulation failed!"
)

// Outcome is the result of a simulation run.
//
type Outcome int

// Run outcomes.
const (
	Pass Outcome = iota
	Fail
)

// ExitCode returns the process exit status for o.
func (o Outcome) ExitCode() int {
	if o == Pass {
		return 0
	}
	return 1
}

func (o Outcome) String() string {
	if o == Pass {
		return "pass"
	}
	return "fail"
}

// Run drives m until it calls ctx.Finish.
//
// Each iteration advances the simulated time by one unit, inverts the clock,
// evaluates the model and samples its status outputs: sim_ok records a pass,
// sim_err or sim_err1 record a failure and neither leaves the outcome
// unchanged. Every sample that records an outcome also writes MsgPassed or
// MsgFailed to w; write errors are ignored.
//
// The outcome starts as Pass and the last recorded status wins. Failures do
// not stop the run. Once the model has finished, m.Final is called and the
// outcome returned. Run never returns if the model never finishes.
//
func Run(ctx *Context, m Model, w io.Writer) Outcome {
	outcome := Pass
	for !ctx.GotFinish() {
		ctx.TimeInc(1)
		clk := !m.Clk()
		m.SetClk(clk)
		m.Eval()
		outcome = sample(m, outcome, w)
		ctx.trace("eval", slog.Uint64("time", ctx.Time()), slog.Bool("clk", clk), slog.String("outcome", outcome.String()))
	}
	m.Final()

	ctx.Logger().Debug("simulation done", slog.Uint64("time", ctx.Time()), slog.String("outcome", outcome.String()))
	return outcome
}

func sample(m Model, prev Outcome, w io.Writer) Outcome {
	switch {
	case m.SimOK():
		fmt.Fprintln(w, MsgPassed)
		return Pass
	case m.SimErr() || m.SimErr1():
		fmt.Fprintln(w, MsgFailed)
		return Fail
	}
	return prev
}
