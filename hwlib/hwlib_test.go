package hwlib_test

import (
	"strings"
	"testing"
	"testing/quick"

	hw "github.com/db47h/ahbsim"
	hl "github.com/db47h/ahbsim/hwlib"
)

func newCircuit(t *testing.T, parts ...hw.Part) *hw.Circuit {
	t.Helper()
	ctx := hw.NewContext()
	ctx.SetRandReset(hw.RandResetZero)
	c, err := hw.NewCircuit(ctx, parts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testGate(t *testing.T, gate hw.NewPartFn, result [][]bool) {
	t.Helper()
	part := gate("").PartSpec // build dummy gate just to get to the partspec
	inputs := make([]bool, len(part.Inputs))
	outputs := make([]bool, len(part.Outputs))
	var w strings.Builder
	parts := make(hw.Parts, 0, len(part.Inputs)+len(part.Outputs)+1)
	for i, n := range part.Inputs {
		w.WriteByte(',')
		w.WriteString(n)
		w.WriteByte('=')
		w.WriteString(n)
		in := &inputs[i]
		parts = append(parts, hl.Input(func() bool { return *in })("out="+n))
	}
	for i, n := range part.Outputs {
		w.WriteByte(',')
		w.WriteString(n)
		w.WriteByte('=')
		w.WriteString(n)
		out := &outputs[i]
		parts = append(parts, hl.Output(func(v bool) { *out = v })("in="+n))
	}
	wr := w.String()
	// trim first ','
	if len(wr) > 0 {
		wr = wr[1:]
	}
	parts = append(parts, gate(wr))
	c := newCircuit(t, parts...)
	defer c.Final()

	tot := 1 << uint(len(part.Inputs))
	for i := 0; i < tot; i++ {
		for bit := range inputs {
			inputs[len(inputs)-bit-1] = (i & (1 << uint(bit))) != 0
		}
		c.TickTock()
		for o, out := range outputs {
			exp := result[o][i]
			if exp != out {
				t.Errorf("%s %v = %v, got %v", part.Name, inputs, exp, out)
			}
		}
	}
}

func Test_gate_builtin(t *testing.T) {
	tr, err := hw.Chip("TRUE", "a", "out",
		hl.And("a=true, b=true, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	fa, err := hw.Chip("FALSE", "a", "out",
		hl.Or("a=false, b=false, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		name   string
		gate   hw.NewPartFn
		result [][]bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"NOT", hl.Not, [][]bool{{true, false}}},
		{"AND", hl.And, [][]bool{{false, false, false, true}}},
		{"OR", hl.Or, [][]bool{{false, true, true, true}}},
		{"XOR", hl.Xor, [][]bool{{false, true, true, false}}},
		{"TRUE", tr, [][]bool{{true, true}}},
		{"FALSE", fa, [][]bool{{false, false}}},
		{"MUX1", hl.MuxN(1), [][]bool{{false, false, false, true, true, false, true, true}}},
		{"HALFADDER", hl.HalfAdder, [][]bool{{false, true, true, false}, {false, false, false, true}}},
		{"FULLADDER", hl.FullAdder, [][]bool{
			{false, true, true, false, true, false, false, true},
			{false, false, false, true, false, true, true, true}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.gate, d.result)
		})
	}
}

func TestInput16(t *testing.T) {
	in := int64(0)
	out := int64(0)
	c := newCircuit(t,
		hl.InputN(16, func() int64 { return in })("out[0..15]= t[0..15]"),
		hl.OutputN(16, func(n int64) { out = n })("in[0..15] = t[0..15]"),
	)
	defer c.Final()

	in = 0x80a2
	c.TickTock()
	if out != in {
		t.Fatalf("Expected %x, got %x", in, out)
	}
}

func TestXorN(t *testing.T) {
	var a, b, out int64
	c := newCircuit(t,
		hl.InputN(16, func() int64 { return a })("out[0..15]=a[0..15]"),
		hl.InputN(16, func() int64 { return b })("out[0..15]=b[0..15]"),
		hl.XorN(16)("a[0..15]=a[0..15], b[0..15]=b[0..15], out[0..15]=out[0..15]"),
		hl.OutputN(16, func(v int64) { out = v })("in[0..15]=out[0..15]"),
	)
	defer c.Final()

	f := func(x, y uint16) bool {
		a, b = int64(x), int64(y)
		c.Eval()
		return out == int64(x^y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

// a bus comparator as found in testbench monitors.
func TestXorN_OrNWay_compare(t *testing.T) {
	cmp, err := hw.Chip("CMP8", "a[8], b[8]", "ne",
		hl.XorN(8)("a[0..7]=a[0..7], b[0..7]=b[0..7], out[0..7]=d[0..7]"),
		hl.OrNWay(8)("in[0..7]=d[0..7], out=ne"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var a, b int64
	var ne bool
	c := newCircuit(t,
		hl.InputN(8, func() int64 { return a })("out[0..7]=a[0..7]"),
		hl.InputN(8, func() int64 { return b })("out[0..7]=b[0..7]"),
		cmp("a[0..7]=a[0..7], b[0..7]=b[0..7], ne=ne"),
		hl.Output(func(v bool) { ne = v })("in=ne"),
	)
	defer c.Final()

	f := func(x, y uint8) bool {
		a, b = int64(x), int64(y)
		c.Eval()
		if ne != (x != y) {
			return false
		}
		b = a
		c.Eval()
		return !ne
	}
	if err = quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestOrNWay(t *testing.T) {
	testGate(t, hl.OrNWay(3), [][]bool{{false, true, true, true, true, true, true, true}})
}
