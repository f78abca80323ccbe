// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/ahbsim"
	"github.com/pkg/errors"
)

func mustChip(p ahbsim.NewPartFn, err error) ahbsim.NewPartFn {
	if err != nil {
		panic(err)
	}
	return p
}

var halfAdder = mustChip(ahbsim.Chip("HalfAdder", "a, b", "s, c",
	Xor("a=a, b=b, out=s"),
	And("a=a, b=b, out=c"),
))

// HalfAdder returns a half adder built from a XOR and an AND gate.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(c string) ahbsim.Part { return halfAdder(c) }

var fullAdder = mustChip(ahbsim.Chip("FullAdder", "a, b, cin", "s, cout",
	HalfAdder("a=a, b=b, s=s0, c=c0"),
	HalfAdder("a=s0, b=cin, s=s, c=c1"),
	Or("a=c0, b=c1, out=cout"),
))

// FullAdder returns a full adder built from two half adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c string) ahbsim.Part { return fullAdder(c) }

// AdderN returns a behavioral N-bits adder. It is the reference the
// structural adders are checked against.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//
func AdderN(bits int) ahbsim.NewPartFn {
	return (&ahbsim.PartSpec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: append(bus(bits, pOut), "c"),
		Mount: func(s *ahbsim.Socket) []ahbsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			out, cout := s.Bus(pOut, bits), s.Pin("c")
			return []ahbsim.Component{func(c *ahbsim.Circuit) {
				sum := uint64(Int64(c, a)) + uint64(Int64(c, b))
				for i, o := range out {
					c.Set(o, sum>>uint(i)&1 != 0)
				}
				c.Set(cout, sum>>uint(bits)&1 != 0)
			}}
		}}).NewPart
}

// fullAdders chains n full adders over a[from..from+n-1] and
// b[from..from+n-1]. Sum bit i goes to sum[i]. Internal carries are named
// after the sum bus.
func fullAdders(n, from int, cin, sum, cout string) ahbsim.Parts {
	parts := make(ahbsim.Parts, 0, n)
	for i := 0; i < n; i++ {
		co := cout
		if i < n-1 {
			co = sum + "_carry" + strconv.Itoa(i)
		}
		ab := strconv.Itoa(from + i)
		parts = append(parts, FullAdder("a=a["+ab+"], b=b["+ab+"], cin="+cin+
			", s="+ahbsim.BusPinName(sum, i)+", cout="+co))
		cin = co
	}
	return parts
}

func adderIO(bits int) (string, string) {
	w := strconv.Itoa(bits)
	return "a[" + w + "], b[" + w + "]", "out[" + w + "], c"
}

// RippleAdderN returns a N-bits ripple carry adder built from full adders.
// It has the same interface as AdderN.
//
func RippleAdderN(bits int) (ahbsim.NewPartFn, error) {
	if bits <= 0 {
		return nil, errors.Errorf("invalid adder width %d", bits)
	}
	ins, outs := adderIO(bits)
	return ahbsim.Chip("RippleAdder"+strconv.Itoa(bits), ins, outs, fullAdders(bits, 0, ahbsim.False, "out", "c")...)
}

// CarrySelectAdderN returns a N-bits carry select adder with the same
// interface as AdderN. The upper half is computed for both values of the
// carry out of the lower half, and a MuxN picks the right one.
//
func CarrySelectAdderN(bits int) (ahbsim.NewPartFn, error) {
	if bits < 2 {
		return nil, errors.Errorf("invalid carry select adder width %d", bits)
	}
	lo := bits / 2
	hi := bits - lo
	h := strconv.Itoa(hi)

	parts := fullAdders(lo, 0, ahbsim.False, "out", "cl")
	// the carry out of each upper half is the msb of its sum bus.
	parts = append(parts, fullAdders(hi, lo, ahbsim.False, "s0", ahbsim.BusPinName("s0", hi))...)
	parts = append(parts, fullAdders(hi, lo, ahbsim.True, "s1", ahbsim.BusPinName("s1", hi))...)
	parts = append(parts, MuxN(hi+1)(
		"a[0.."+h+"]=s0[0.."+h+"], b[0.."+h+"]=s1[0.."+h+"], sel=cl, "+
			"out[0.."+strconv.Itoa(hi-1)+"]=out["+strconv.Itoa(lo)+".."+strconv.Itoa(bits-1)+"], out["+h+"]=c"))

	ins, outs := adderIO(bits)
	return ahbsim.Chip("CarrySelectAdder"+strconv.Itoa(bits), ins, outs, parts...)
}
