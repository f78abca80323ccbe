package bench

import "testing"

func Test_lfsrNext(t *testing.T) {
	v := int64(0xffff)
	for i := 0; i < 4; i++ {
		v = lfsrNext(v)
	}
	// all taps are set for the first shifts: the feedback is 0.
	if v != 0xfff0 {
		t.Fatalf("got %#04x, expected 0xfff0", v)
	}
	if lfsrNext(0) != 0 {
		t.Fatal("zero state must be stuck")
	}
	if got := lfsrNext(1 << 10); got != 1<<11|1 {
		t.Fatalf("got %#04x", got)
	}
}
