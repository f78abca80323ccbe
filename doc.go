// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package ahbsim drives clocked simulation models to completion and reports
their pass/fail status.

A run is made of a Context, which holds the fixed simulation policy and the
simulated time, and a Model, an opaque clock-driven state machine with a clock
input and three status outputs: sim_ok, sim_err and sim_err1. Run toggles the
clock once per iteration, evaluates the model, samples its status outputs and
keeps going until the model calls Finish on the context:

	ctx := ahbsim.NewContext()
	m, err := bench.Lockstep(ctx, bench.DefaultConfig())
	if err != nil {
		// handle error
	}
	outcome := ahbsim.Run(ctx, m, os.Stdout)
	os.Exit(outcome.ExitCode())

The package also provides a naive gate-level circuit simulator whose Circuit
type implements Model. Circuits are composed from parts (logic gates, flip
flops, adders, etc.) with an API that mimics a hardware description language.
It relies heavily on closures and can feel a bit awkward when implementing
custom components.
*/
package ahbsim
