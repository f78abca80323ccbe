// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command ahbsim runs the lockstep testbench until it finishes and exits
// with status 0 if the simulation passed, 1 otherwise.
//
// It takes no arguments. "Simulation passed!" and "Simulation failed!" lines
// are written to stdout; logs go to stderr.
//
package main

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/db47h/ahbsim"
	"github.com/db47h/ahbsim/bench"
)

func main() {
	ctx := ahbsim.NewContext()
	ctx.SetDebug(0)
	ctx.SetRandReset(ahbsim.RandResetRandom)
	ctx.SetTraceEverOn(true)

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	m, err := bench.Lockstep(ctx, bench.DefaultConfig())
	if err != nil {
		ctx.Logger().Error("failed to build testbench", slog.Any("err", err))
		atexit.Exit(1)
	}

	outcome := ahbsim.Run(ctx, m, out)
	atexit.Exit(outcome.ExitCode())
}
