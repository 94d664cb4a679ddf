// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import "testing"

func TestGrowPlacement(t *testing.T) {
	cases := []struct {
		name     string
		rear     int
		reversed bool
		head     int
		end      int
	}{
		// size 3 grows to 13 with 10 spare slots
		{"front", 0, false, 9, 13},
		{"front rear half", 50, false, 4, 8},
		{"front rear all", 100, false, 0, 4},
		{"reversed", 0, true, 0, 4},
		{"reversed rear half", 50, true, 5, 9},
		{"reversed rear all", 100, true, 9, 13},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := DefaultGrowth
			g.Rear = c.rear
			b := fromValues([]int{1, 2, 3}, &g, false)
			if c.reversed {
				b = b.reverse()
			}
			next, err := b.extend(0)
			if err != nil {
				t.Fatalf("extend: %v", err)
			}
			if next.Cap() != 13 {
				t.Fatalf("Cap got %d, want 13", next.Cap())
			}
			if next.head != c.head || next.end != c.end {
				t.Fatalf("window got [%d, %d), want [%d, %d)", next.head, next.end, c.head, c.end)
			}
			want := "(0, 1, 2, 3)"
			if c.reversed {
				want = "(0, 3, 2, 1)"
			}
			if got := next.String(); got != want {
				t.Fatalf("got %s, want %s", got, want)
			}
			if got := b.Size(); got != 3 || len(b.b.slots) != 3 {
				t.Fatalf("source changed: size %d, cap %d", got, len(b.b.slots))
			}
			for i, s := range next.b.slots {
				if s.used != (i >= c.head && i < c.end) {
					t.Fatalf("slot %d used=%v outside window [%d, %d)", i, s.used, c.head, c.end)
				}
			}
		})
	}
}

func TestClaimBounds(t *testing.T) {
	b := &backing[int]{slots: make([]slot[int], 2), growth: &DefaultGrowth}
	if b.claim(-1, 1) || b.claim(2, 1) {
		t.Fatal("claimed a slot outside the array")
	}
	if !b.claim(0, 0) {
		t.Fatal("could not claim a free slot")
	}
	if b.claim(0, 7) {
		t.Fatal("claimed a used slot holding the zero value")
	}
	if b.slots[0].value != 0 {
		t.Fatalf("used slot overwritten with %d", b.slots[0].value)
	}
}

func TestBlockSize(t *testing.T) {
	cfg := &Config{Workers: 4, ParallelThreshold: 1024}
	for _, c := range []struct{ n, want int }{
		{0, 256},
		{1 << 20, 1 << 16},
		{4096, 256},
	} {
		if got := blockSize(c.n, cfg); got != c.want {
			t.Fatalf("blockSize(%d) got %d, want %d", c.n, got, c.want)
		}
	}
	cfg.ParallelThreshold = 1
	if got := blockSize(2, cfg); got != 1 {
		t.Fatalf("blockSize(2) got %d, want 1", got)
	}
}
