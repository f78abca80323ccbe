// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/ahbsim"
)

// MuxN returns a bus multiplexer. The carry select adder uses it to pick the
// upper half of its sum.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: out = sel ? b : a
//
func MuxN(bits int) ahbsim.NewPartFn {
	return (&ahbsim.PartSpec{
		Name:    "MUX" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), pSel),
		Outputs: bus(bits, pOut),
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			srcs := [2][]int{s.Bus(pA, bits), s.Bus(pB, bits)}
			sel, out := s.Pin(pSel), s.Bus(pOut, bits)
			return []ahbsim.Component{func(c *ahbsim.Circuit) {
				src := srcs[0]
				if c.Get(sel) {
					src = srcs[1]
				}
				for i, o := range out {
					c.Set(o, c.Get(src[i]))
				}
			}}
		}}).NewPart
}
