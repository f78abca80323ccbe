// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bench provides a self-checking testbench model that runs a device
// under test in lockstep with a reference part.
//
// The stimulus comes from a 16 bits LFSR: its low byte drives the a inputs
// and its high byte the b inputs of both parts. A XOR/OR comparator flags
// any difference between their outputs, and a monitor samples it on every
// rising edge of the clock and reports through the status wires of the
// circuit:
//
//	sim_err   the outputs differ
//	sim_err1  the LFSR is stuck at zero or out of sequence
//	sim_ok    Cycles cycles completed without error
//
// Each of these also raises the finish wire, ending the run.
//
package bench

import (
	"github.com/pkg/errors"

	"github.com/db47h/ahbsim"
	"github.com/db47h/ahbsim/hwlib"
)

// Width is the operand width of the parts under test.
const Width = 8

// Config describes a lockstep testbench.
//
// DUT and Ref must have the interface of hwlib.AdderN(Width):
//
//	Inputs: a[8], b[8]
//	Outputs: out[8], c
//
// Stimulus must have the interface of LFSR16 and follow its sequence. When
// nil, LFSR16 is used.
//
type Config struct {
	Name     string
	Cycles   int
	DUT      ahbsim.NewPartFn
	Ref      ahbsim.NewPartFn
	Stimulus ahbsim.NewPartFn
}

// DefaultConfig compares a ripple carry adder against the behavioral adder
// for 64 cycles.
//
func DefaultConfig() Config {
	dut, err := hwlib.RippleAdderN(Width)
	if err != nil {
		panic(err)
	}
	return Config{
		Name:   "lockstep",
		Cycles: 64,
		DUT:    dut,
		Ref:    hwlib.AdderN(Width),
	}
}

// CarrySelectConfig is DefaultConfig with a carry select adder as the DUT.
//
func CarrySelectConfig() Config {
	dut, err := hwlib.CarrySelectAdderN(Width)
	if err != nil {
		panic(err)
	}
	cfg := DefaultConfig()
	cfg.Name = "carry-select"
	cfg.DUT = dut
	return cfg
}

// Lockstep builds the testbench circuit described by cfg. The LFSR reset
// state follows the random reset mode of ctx, which must be set beforehand.
//
func Lockstep(ctx *ahbsim.Context, cfg Config) (*ahbsim.Circuit, error) {
	name := cfg.Name
	if name == "" {
		name = "lockstep"
	}
	if cfg.Cycles <= 0 {
		return nil, errors.Errorf("%s: invalid cycle count %d", name, cfg.Cycles)
	}
	if cfg.DUT == nil || cfg.Ref == nil {
		return nil, errors.New(name + ": missing DUT or reference part")
	}

	stim := cfg.Stimulus
	if stim == nil {
		var err error
		if stim, err = LFSR16(); err != nil {
			return nil, errors.Wrap(err, name)
		}
	}

	tb, err := ahbsim.Chip(name, "", "sim_ok, sim_err, sim_err1, finish",
		stim("q[0..15]=lfsr[0..15]"),
		cfg.DUT("a[0..7]=lfsr[0..7], b[0..7]=lfsr[8..15], out[0..7]=dut[0..7], c=dut[8]"),
		cfg.Ref("a[0..7]=lfsr[0..7], b[0..7]=lfsr[8..15], out[0..7]=ref[0..7], c=ref[8]"),
		// mismatch is high when any of the 9 result bits differ.
		hwlib.XorN(Width+1)("a[0..8]=dut[0..8], b[0..8]=ref[0..8], out[0..8]=diff[0..8]"),
		hwlib.OrNWay(Width+1)("in[0..8]=diff[0..8], out=mismatch"),
		ahbsim.MakePart(&monitor{cycles: cfg.Cycles}).NewPart(
			"lfsr[0..15]=lfsr[0..15], dut[0..8]=dut[0..8], ref[0..8]=ref[0..8], mismatch=mismatch, "+
				"sim_ok=sim_ok, sim_err=sim_err, sim_err1=sim_err1, finish=finish"),
	)
	if err != nil {
		return nil, err
	}

	c, err := ahbsim.NewCircuit(ctx, tb(
		ahbsim.SimOKWire+"="+ahbsim.SimOKWire+", "+
			ahbsim.SimErrWire+"="+ahbsim.SimErrWire+", "+
			ahbsim.SimErr1Wire+"="+ahbsim.SimErr1Wire+", "+
			ahbsim.FinishWire+"="+ahbsim.FinishWire))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return c, nil
}
