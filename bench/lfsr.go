// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bench

import (
	"strconv"

	"github.com/db47h/ahbsim"
	"github.com/db47h/ahbsim/hwlib"
)

// LFSRBits is the width of the stimulus generator.
const LFSRBits = 16

// LFSR16 returns a 16 bits Fibonacci LFSR for the polynomial
// x^16 + x^14 + x^13 + x^11 + 1. It shifts towards the msb on every rising
// edge of the clock. Its initial state follows the random reset mode of the
// circuit's context, and an all zeros state never changes.
//
//	Outputs: q[16]
//
func LFSR16() (ahbsim.NewPartFn, error) {
	parts := ahbsim.Parts{
		hwlib.Xor("a=q[15], b=q[13], out=fb0"),
		hwlib.Xor("a=fb0, b=q[12], out=fb1"),
		hwlib.Xor("a=fb1, b=q[10], out=fb"),
		hwlib.DFF("in=fb, out=q[0]"),
	}
	for i := 1; i < LFSRBits; i++ {
		parts = append(parts, hwlib.DFF("in=q["+strconv.Itoa(i-1)+"], out=q["+strconv.Itoa(i)+"]"))
	}
	return ahbsim.Chip("LFSR16", "", "q[16]", parts...)
}

// lfsrNext returns the state following v.
func lfsrNext(v int64) int64 {
	fb := (v>>15 ^ v>>13 ^ v>>12 ^ v>>10) & 1
	return (v<<1 | fb) & (1<<LFSRBits - 1)
}
