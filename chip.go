// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec        // PartSpec for this chip
	parts    []Part // sub parts
}

// mount mounts every sub part. s maps the chip's own pins; internal wires are
// allocated in s as they are first seen.
func (c *chip) mount(s *Socket) []Component {
	var updaters []Component

	for _, p := range c.parts {
		sub := newSocket(s.c)
		for _, k := range p.Inputs {
			if w, ok := p.Conns[k]; ok {
				sub.m[k] = s.PinOrNew(w)
			} else {
				// unconnected inputs are wired to False.
				sub.m[k] = cstFalse
			}
		}
		for _, k := range p.Outputs {
			if w, ok := p.Conns[k]; ok {
				sub.m[k] = s.PinOrNew(w)
			} else {
				sub.m[k] = s.c.allocPin()
			}
		}
		updaters = append(updaters, p.Mount(sub)...)
	}
	return updaters
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip.
//
// A Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		hwlib.Not("in=a, out=notA"),
//		hwlib.Not("in=b, out=notB"),
//		hwlib.And("a=a, b=notB, out=w0"),
//		hwlib.And("a=notA, b=b, out=w1"),
//		hwlib.Or("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a function of type NewPartFn that can be used to
// compose the new part with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		hwlib.Not("in=xorAB, out=out"),
//	)
//
// Chip checks the wiring: every wire read by a part must be a chip input, a
// constant or driven by exactly one part output, and every chip output must be
// driven. Part inputs left unconnected read false.
//
func Chip(name string, inputs string, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := ParseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+": inputs")
	}
	outs, err := ParseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+": outputs")
	}

	chipIn := make(map[string]bool, len(ins)+3)
	chipIn[False], chipIn[True], chipIn[Clk] = true, true, true
	for _, n := range ins {
		chipIn[n] = true
	}
	for _, n := range outs {
		if chipIn[n] {
			return nil, errors.New(name + ": pin " + n + " is both an input and an output")
		}
	}

	// driven maps wires to the part pin driving them.
	driven := make(map[string]string)
	type use struct{ wire, pin string }
	var reads []use

	for _, p := range parts {
		if p.PartSpec == nil || p.Mount == nil {
			return nil, errors.New(name + ": incomplete part specification")
		}
		pIn, pOut := p.pinSets()
		for k, w := range p.Conns {
			pn := p.Name + "." + k
			switch {
			case pIn[k]:
				reads = append(reads, use{w, pn})
			case pOut[k]:
				if chipIn[w] {
					return nil, errors.New(name + ": output pin " + pn + " connected to input or constant " + w)
				}
				if d, ok := driven[w]; ok {
					return nil, errors.New(name + ": wire " + w + " driven by both " + d + " and " + pn)
				}
				driven[w] = pn
			default:
				return nil, errors.New(name + ": invalid pin name " + k + " for part " + p.Name)
			}
		}
	}

	for _, u := range reads {
		if _, ok := driven[u.wire]; !ok && !chipIn[u.wire] {
			return nil, errors.New(name + ": pin " + u.pin + " not connected to any output")
		}
	}
	for _, o := range outs {
		if _, ok := driven[o]; !ok {
			return nil, errors.New(name + ": output pin " + o + " not connected")
		}
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
		},
		parts,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
