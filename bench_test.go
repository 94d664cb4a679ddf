// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq_test

import (
	"testing"

	"code.hybscloud.com/pseq"
)

const benchSize = 1 << 14

// BenchmarkCreateBuffer measures building a Buffer head by head.
func BenchmarkCreateBuffer(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		list := pseq.Of(0)
		for i := 1; i < benchSize; i++ {
			list, _ = pseq.Create(i, list)
		}
	}
}

// BenchmarkCreateBufferReversed measures building a reversed Buffer.
func BenchmarkCreateBufferReversed(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		list := pseq.Of(0).Reverse()
		for i := 1; i < benchSize; i++ {
			list, _ = pseq.Create(i, list)
		}
	}
}

// BenchmarkCreateShared measures two prepends on one ancestor: the first
// claims the free slot, the second grows.
func BenchmarkCreateShared(b *testing.B) {
	base := pseq.Of(rangeInts(0, 1024)...)
	base, _ = pseq.Create(-1, base)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = pseq.Create(1, base)
		_, _ = pseq.Create(2, base)
	}
}

// BenchmarkCreateChunked measures building a Chunked of small chunks.
func BenchmarkCreateChunked(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		list, _ := pseq.ChunkOf(256, []int{0})
		for i := 1; i < benchSize; i++ {
			list, _ = pseq.Create(i, list)
		}
	}
}

// BenchmarkCreateCons measures the linked list baseline.
func BenchmarkCreateCons(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		list := pseq.ConsOf(0)
		for i := 1; i < benchSize; i++ {
			list, _ = pseq.Create(i, list)
		}
	}
}

// BenchmarkTailWalk measures walking a Buffer by Tail.
func BenchmarkTailWalk(b *testing.B) {
	list := pseq.Of(rangeInts(0, benchSize)...)
	b.ReportAllocs()
	for b.Loop() {
		for l := list; !l.IsEmpty(); l = l.Tail() {
		}
	}
}

// BenchmarkMap measures a sequential Map.
func BenchmarkMap(b *testing.B) {
	list := pseq.Of(rangeInts(0, benchSize)...)
	b.ReportAllocs()
	for b.Loop() {
		pseq.Map(list, func(x int) int { return x * 2 })
	}
}

// BenchmarkParallelMap measures Map on the worker pool.
func BenchmarkParallelMap(b *testing.B) {
	skipRace(b)
	list := pseq.ParallelOf(rangeInts(0, benchSize)...)
	b.ReportAllocs()
	for b.Loop() {
		pseq.Map(list, func(x int) int { return x * 2 })
	}
}

// BenchmarkParallelFilter measures Filter on the worker pool.
func BenchmarkParallelFilter(b *testing.B) {
	skipRace(b)
	list := pseq.ParallelOf(rangeInts(0, benchSize)...)
	b.ReportAllocs()
	for b.Loop() {
		list.Filter(func(x int) bool { return x%3 == 0 })
	}
}

// BenchmarkFoldLeft measures a fold over a reversed Chunked.
func BenchmarkFoldLeft(b *testing.B) {
	list, _ := pseq.ChunkOf(1024, rangeInts(0, benchSize))
	list = list.Reverse()
	b.ReportAllocs()
	for b.Loop() {
		pseq.FoldLeft(list, 0, func(a, x int) int { return a + x })
	}
}
