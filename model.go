// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

//go:generate mockgen -destination "mock_model_test.go" -package ahbsim_test -write_package_comment=false github.com/db47h/ahbsim Model

// Model is a clock-driven simulation model, the device under test.
//
// Status outputs are valid right after Eval returns. The model decides alone
// when the run is over by calling Finish on the Context it was built with.
//
type Model interface {
	// Clk returns the value of the clock input.
	Clk() bool
	// SetClk sets the clock input.
	SetClk(v bool)
	// Eval recomputes all outputs from the current inputs. It does not
	// advance simulated time.
	Eval()
	// Final flushes and closes the model. It is called once, after the run.
	Final()

	SimOK() bool
	SimErr() bool
	SimErr1() bool
}
