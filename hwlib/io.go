// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/ahbsim"
)

// Int64 returns the value of pins as an int64, pins[0] being the lsb.
//
func Int64(c *ahbsim.Circuit, pins []int) int64 {
	var v int64
	for i, p := range pins {
		if c.Get(p) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// source returns a part with the given outputs, driven by drive on every
// step.
func source(name string, outs []string, drive func(c *ahbsim.Circuit, pins []int)) ahbsim.NewPartFn {
	return (&ahbsim.PartSpec{
		Name:    name,
		Outputs: outs,
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			pins := make([]int, len(outs))
			for i, n := range outs {
				pins[i] = s.Pin(n)
			}
			return []ahbsim.Component{func(c *ahbsim.Circuit) { drive(c, pins) }}
		}}).NewPart
}

// sink returns a part with the given inputs, passed to read on every step.
func sink(name string, ins []string, read func(c *ahbsim.Circuit, pins []int)) ahbsim.NewPartFn {
	return (&ahbsim.PartSpec{
		Name:   name,
		Inputs: ins,
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			pins := make([]int, len(ins))
			for i, n := range ins {
				pins[i] = s.Pin(n)
			}
			return []ahbsim.Component{func(c *ahbsim.Circuit) { read(c, pins) }}
		}}).NewPart
}

// Input returns a part whose output is f(). f is called on every circuit step,
// so a new value is visible after the next Eval.
//
//	Outputs: out
//
func Input(f func() bool) ahbsim.NewPartFn {
	return source("Input", []string{pOut}, func(c *ahbsim.Circuit, pins []int) {
		c.Set(pins[0], f())
	})
}

// InputN is the bus version of Input. Bit i of f() drives out[i].
//
//	Outputs: out[bits]
//
func InputN(bits int, f func() int64) ahbsim.NewPartFn {
	return source("Input"+strconv.Itoa(bits), bus(bits, pOut), func(c *ahbsim.Circuit, pins []int) {
		v := f()
		for i, p := range pins {
			c.Set(p, v>>uint(i)&1 != 0)
		}
	})
}

// Output returns a part that calls f with the state of its input on every
// circuit step.
//
//	Inputs: in
//
func Output(f func(bool)) ahbsim.NewPartFn {
	return sink("Output", []string{pIn}, func(c *ahbsim.Circuit, pins []int) {
		f(c.Get(pins[0]))
	})
}

// OutputN is the bus version of Output.
//
//	Inputs: in[bits]
//
func OutputN(bits int, f func(int64)) ahbsim.NewPartFn {
	return sink("Output"+strconv.Itoa(bits), bus(bits, pIn), func(c *ahbsim.Circuit, pins []int) {
		f(Int64(c, pins))
	})
}
