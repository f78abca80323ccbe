// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/ahbsim"
)

// DFF returns a clocked data flip flop. Its initial state follows the random
// reset mode of the circuit's context.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) ahbsim.Part {
	return dff.NewPart(w)
}

var dff = &ahbsim.PartSpec{
	Name:    "DFF",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *ahbsim.Socket) []ahbsim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		curOut := s.Context().RandResetBit()
		return []ahbsim.Component{
			func(c *ahbsim.Circuit) {
				// raising edge?
				if c.Posedge() {
					curOut = c.Get(in)
				}
				c.Set(out, curOut)
			}}
	}}
