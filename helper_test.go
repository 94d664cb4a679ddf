// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq_test

import (
	"testing"

	"code.hybscloud.com/pseq"
)

// variant names a sequence constructor under test.
type variant[T any] struct {
	name string
	of   func(elems ...T) pseq.Seq[T]
}

// variants returns every sequence variant, so the same laws are checked
// against each of them.
func variants[T any]() []variant[T] {
	return []variant[T]{
		{"Buffer", pseq.Of[T]},
		{"ParallelBuffer", pseq.ParallelOf[T]},
		{"Chunked", pseq.ChunkedOf[T]},
		{"SmallChunks", func(elems ...T) pseq.Seq[T] {
			s, err := pseq.ChunkOf(2, elems)
			if err != nil {
				panic(err)
			}
			return s
		}},
		{"Cons", pseq.ConsOf[T]},
	}
}

// mustCreate puts head in front of tail with tail's own factory.
func mustCreate[T any](tb testing.TB, head T, tail pseq.Seq[T]) pseq.Seq[T] {
	tb.Helper()
	s, err := pseq.Create(head, tail)
	if err != nil {
		tb.Fatalf("Create(%v, %v): %v", head, tail, err)
	}
	return s
}

// collect walks s by head and tail.
func collect[T any](s pseq.Seq[T]) []T {
	var out []T
	for l := s; !l.IsEmpty(); l = l.Tail() {
		out = append(out, l.Head())
	}
	return out
}

// withConfig installs cfg for the duration of the test.
func withConfig(tb testing.TB, mutate func(*pseq.Config)) {
	tb.Helper()
	prev := pseq.CurrentConfig()
	cfg := prev
	mutate(&cfg)
	if err := pseq.Configure(&cfg); err != nil {
		tb.Fatalf("Configure: %v", err)
	}
	tb.Cleanup(func() {
		if err := pseq.Configure(&prev); err != nil {
			tb.Errorf("restore config: %v", err)
		}
	})
}

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
