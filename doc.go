// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pseq provides persistent (immutable) sequences with O(1) head/tail
// decomposition, lazy reversal, filtering, mapping and folding.
//
// Every sequence satisfies [Seq]. Construction goes through a [Creator]
// obtained from [Seq.Factory], so a new head can be put in front of any tail,
// whatever backs it.
//
// # Architecture
//
//   - Buffer: [Buffer] is a view over a shared, double-ended growable array.
//     Tail narrows the window and Reverse flips a flag; neither moves data.
//     Prepending claims a free slot next to the window under a per-array lock
//     and otherwise grows into a new array, so many views share one array safely.
//   - Chunks: [Chunked] chains bounded-size buffers, capping the copy cost of
//     growth for very large sequences.
//   - Baseline: [Cons] is a plain linked list used as a comparison target and
//     as the foreign source for generic materialization.
//   - Empty: [Empty] is the canonical empty sequence of every variant.
//
// # API Topologies
//
//   - Construction: [Of], [ParallelOf], [FromSlice], [ChunkOf], [ChunkedOf], [ConsOf], [Create].
//   - Methods: Head, Tail, IsEmpty, Reverse, Filter, Size, String, Factory.
//   - Type-changing: [Map], [FoldLeft], [FoldWhile], [All].
//   - Ambient: [LoadConfig], [Configure], [SetLogger], [ReadStats], [Shutdown].
//
// # Concurrency
//
// Reads never lock. A view only ever reads slots inside its own window, and
// growth only writes slots outside every published window. Filter and map
// on a parallel view fan out over a shared worker pool fed by a lock-free
// MPMC queue from [code.hybscloud.com/lfq]; mapping functions and predicates
// must be pure.
//
// # Example
//
//	s := pseq.Of(1, 2, 3)
//	s, _ = pseq.Create(0, s)
//	evens := s.Reverse().Filter(func(n int) bool { return n%2 == 0 })
//	sum := pseq.FoldLeft(evens, 0, func(a, n int) int { return a + n })
//	// evens.String() == "(2, 0)", sum == 2
package pseq
