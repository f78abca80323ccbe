// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the parts used to build testbench circuits: logic
// gates, flip flops, adders, multiplexers and function backed inputs and
// outputs.
//
// Single bit parts are NewPartFn's and can be used directly. N-bits parts are
// functions returning a NewPartFn for the requested width:
//
//	xor8 := hwlib.XorN(8)
//	p := xor8("a[0..7]=x[0..7], b[0..7]=y[0..7], out[0..7]=diff[0..7]")
//
package hwlib

import (
	"strconv"

	"github.com/db47h/ahbsim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

// bus expands each name into a bits wide bus, in order.
func bus(bits int, names ...string) []string {
	b := make([]string, 0, len(names)*bits)
	for _, n := range names {
		for i := 0; i < bits; i++ {
			b = append(b, ahbsim.BusPinName(n, i))
		}
	}
	return b
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w string) ahbsim.Part { return notSpec.NewPart(w) }

var notSpec = &ahbsim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *ahbsim.Socket) []ahbsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []ahbsim.Component{func(c *ahbsim.Circuit) { c.Set(out, !c.Get(in)) }}
	}}

// binary returns the spec of a two inputs gate computing fn.
func binary(name string, fn func(a, b bool) bool) *ahbsim.PartSpec {
	return &ahbsim.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
			return []ahbsim.Component{func(c *ahbsim.Circuit) { c.Set(out, fn(c.Get(a), c.Get(b))) }}
		}}
}

var (
	andSpec = binary("AND", func(a, b bool) bool { return a && b })
	orSpec  = binary("OR", func(a, b bool) bool { return a || b })
	xorSpec = binary("XOR", func(a, b bool) bool { return a != b })
)

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
//
func And(w string) ahbsim.Part { return andSpec.NewPart(w) }

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
//
func Or(w string) ahbsim.Part { return orSpec.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//
func Xor(w string) ahbsim.Part { return xorSpec.NewPart(w) }

// XorN returns a bitwise XOR of two buses. Comparators combine it with OrNWay.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = a[i] != b[i] }
//
func XorN(bits int) ahbsim.NewPartFn {
	return (&ahbsim.PartSpec{
		Name:    "XOR" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: bus(bits, pOut),
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			a, b, out := s.Bus(pA, bits), s.Bus(pB, bits), s.Bus(pOut, bits)
			return []ahbsim.Component{func(c *ahbsim.Circuit) {
				for i, o := range out {
					c.Set(o, c.Get(a[i]) != c.Get(b[i]))
				}
			}}
		}}).NewPart
}

// OrNWay returns a N-Way OR gate.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[ways-1]
//
func OrNWay(ways int) ahbsim.NewPartFn {
	return (&ahbsim.PartSpec{
		Name:    "OR" + strconv.Itoa(ways) + "Way",
		Inputs:  bus(ways, pIn),
		Outputs: []string{pOut},
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			in, out := s.Bus(pIn, ways), s.Pin(pOut)
			return []ahbsim.Component{func(c *ahbsim.Circuit) {
				v := false
				for _, p := range in {
					v = v || c.Get(p)
				}
				c.Set(out, v)
			}}
		}}).NewPart
}
