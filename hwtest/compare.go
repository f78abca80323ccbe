// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/ahbsim"
	"github.com/db47h/ahbsim/hwlib"
)

// connString connects every pin to a wire of the same name, prefixed with
// prefix for outputs.
func connString(in, out []string, prefix string) string {
	var b strings.Builder
	for _, n := range in {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n + "=" + n)
	}
	for _, n := range out {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n + "=" + prefix + n)
	}
	return b.String()
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same Input/Output interface.
//
// Inputs are exhaustively tested for parts with up to 12 inputs, then randomly
// for larger ones. Each input combination is settled then followed by a full
// clock cycle, so that flip flops latch the combination under test and clocked
// parts can be compared as well. Flip flops start cleared.
//
func ComparePart(t *testing.T, part1 ahbsim.NewPartFn, part2 ahbsim.NewPartFn) {
	t.Helper()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	ps1, ps2 := part1(""), part2("")

	// compare specs
	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatal("len(ps1.Inputs) != len(ps2.Inputs)")
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatal("len(ps1.Outputs) != len(ps2.Outputs)")
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("ps1.Inputs[i] = %q != ps2.Inputs[i] = %q", ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("ps1.Outputs[i] = %q != ps2.Outputs[i] = %q", ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]bool, len(ps1.Inputs))
	outputs := make([][2]bool, len(ps1.Outputs))

	parts := ahbsim.Parts{
		part1(connString(ps1.Inputs, ps1.Outputs, "p1.")),
		part2(connString(ps2.Inputs, ps2.Outputs, "p2.")),
	}
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, hwlib.Input(func() bool { return inputs[k] })("out="+n))
	}
	for i, o := range ps1.Outputs {
		n := i
		parts = append(parts,
			hwlib.Output(func(b bool) { outputs[n][0] = b })("in=p1."+o),
			hwlib.Output(func(b bool) { outputs[n][1] = b })("in=p2."+o))
	}

	ctx := ahbsim.NewContext()
	ctx.SetRandReset(ahbsim.RandResetZero)
	c, err := ahbsim.NewCircuit(ctx, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Final()

	errString := func(oname string, ex, got bool) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			if inputs[i] {
				b.WriteString("true")
			} else {
				b.WriteString("false")
			}
		}
		return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", b.String(), oname, ex, got)
	}

	check := func() {
		t.Helper()
		// Input parts drive their pins during the first step of an Eval: settle
		// them before the rising edge.
		c.Eval()
		c.TickTock()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}

	start := time.Now()

	n := len(ps1.Inputs)
	if n <= 12 {
		for i := 0; i < 1<<uint(n); i++ {
			for bit := range inputs {
				inputs[bit] = i&(1<<uint(bit)) != 0
			}
			check()
		}
	} else {
		for i := 0; i < 1<<12; i++ {
			for bit := range inputs {
				inputs[bit] = rnd.Int63()&(1<<62) != 0
			}
			check()
		}
	}

	elapsed := time.Since(start)
	cycles := c.Evals() / 3
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, cycles, float64(cycles)/(float64(elapsed)/float64(time.Second)))
}
