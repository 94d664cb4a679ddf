// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"sync"
)

// slot is one position of a backing array. A slot that is not used is
// free; a used slot may hold the zero value of T as a real element.
type slot[T any] struct {
	value T
	used  bool
}

// backing is the array shared by every Buffer derived from it.
// mu serializes claims of free slots; the slice header never changes.
type backing[T any] struct {
	mu     sync.Mutex
	slots  []slot[T]
	growth *Growth
}

// claim writes v into slots[i] if i is inside the array and free.
func (b *backing[T]) claim(i int, v T) bool {
	if i < 0 || i >= len(b.slots) {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.slots[i].used {
		return false
	}
	b.slots[i] = slot[T]{value: v, used: true}
	return true
}

// Buffer is an immutable view of the window [head, end) of a shared
// backing array. When reversed, the logical front is slots[end-1].
//
// A Buffer is never empty: operations that would produce an empty
// Buffer return [Empty] instead.
type Buffer[T any] struct {
	b        *backing[T]
	head     int // inclusive
	end      int // exclusive
	reversed bool
	parallel bool
}

// Of returns a sequence backed by a single dense Buffer.
// It panics if len(elems) exceeds the default growth limit; use
// [FromSlice] to get an error instead.
func Of[T any](elems ...T) Seq[T] {
	s, err := FromSlice(elems)
	if err != nil {
		panic(err)
	}
	return s
}

// ParallelOf is like [Of] but the result evaluates Filter and [Map]
// on the shared worker pool.
func ParallelOf[T any](elems ...T) Seq[T] {
	s, err := FromSlice(elems, WithParallel(true))
	if err != nil {
		panic(err)
	}
	return s
}

// FromSlice copies elems into a new dense Buffer.
// It returns [Empty] for an empty slice, and ErrCreationFailed if elems
// is larger than the growth limit.
func FromSlice[T any](elems []T, opts ...Option) (Seq[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Empty[T](), nil
	}
	if len(elems) > o.growth.Limit {
		return nil, creationFailed("%d elements exceed limit %d", len(elems), o.growth.Limit)
	}
	return fromValues(elems, o.growth, o.parallel), nil
}

// fromValues builds a dense Buffer over a copy of vals. len(vals) > 0.
func fromValues[T any](vals []T, g *Growth, parallel bool) *Buffer[T] {
	slots := make([]slot[T], len(vals))
	for i, v := range vals {
		slots[i] = slot[T]{value: v, used: true}
	}
	return fromSlots(slots, g, parallel)
}

func fromSlots[T any](slots []slot[T], g *Growth, parallel bool) *Buffer[T] {
	return &Buffer[T]{
		b:        &backing[T]{slots: slots, growth: g},
		head:     0,
		end:      len(slots),
		parallel: parallel,
	}
}

func singleton[T any](v T, g *Growth, parallel bool) *Buffer[T] {
	return fromSlots([]slot[T]{{value: v, used: true}}, g, parallel)
}

// at returns the element at logical position i.
func (t *Buffer[T]) at(i int) T {
	if t.reversed {
		return t.b.slots[t.end-1-i].value
	}
	return t.b.slots[t.head+i].value
}

// Head returns the logical first element.
func (t *Buffer[T]) Head() T {
	return t.at(0)
}

// Tail returns the view without the logical first element, sharing the
// same backing array. The tail of a single element Buffer is [Empty].
func (t *Buffer[T]) Tail() Seq[T] {
	if tv := t.tail(); tv != nil {
		return tv
	}
	return Empty[T]()
}

// tail returns nil for a single element Buffer.
func (t *Buffer[T]) tail() *Buffer[T] {
	if t.end-t.head == 1 {
		return nil
	}
	v := *t
	if t.reversed {
		v.end--
	} else {
		v.head++
	}
	return &v
}

func (t *Buffer[T]) IsEmpty() bool {
	return false
}

// Reverse flips the logical order without moving any element.
func (t *Buffer[T]) Reverse() Seq[T] {
	return t.reverse()
}

func (t *Buffer[T]) reverse() *Buffer[T] {
	return &Buffer[T]{b: t.b, head: t.head, end: t.end, reversed: !t.reversed, parallel: t.parallel}
}

// Parallel reports whether Filter and [Map] fan out over the worker pool.
func (t *Buffer[T]) Parallel() bool {
	return t.parallel
}

// WithParallel returns a view of the same window with the parallel hint set to p.
func (t *Buffer[T]) WithParallel(p bool) *Buffer[T] {
	return &Buffer[T]{b: t.b, head: t.head, end: t.end, reversed: t.reversed, parallel: p}
}

// Size is end - head.
func (t *Buffer[T]) Size() int {
	return t.end - t.head
}

// Cap returns the capacity of the backing array.
func (t *Buffer[T]) Cap() int {
	return len(t.b.slots)
}

func (t *Buffer[T]) String() string {
	return Render[T](t)
}

func (t *Buffer[T]) Factory() Creator[T] {
	return CreateBuffer[T]
}

// Filter evaluates pred in logical order, on the worker pool when the
// parallel hint is set, and packs the survivors into a new dense Buffer.
func (t *Buffer[T]) Filter(pred func(T) bool) Seq[T] {
	n := t.Size()
	keep := make([]bool, n)
	t.apply(func(i int, x T) {
		keep[i] = pred(x)
	})
	count := 0
	for _, k := range keep {
		if k {
			count++
		}
	}
	if count == 0 {
		return Empty[T]()
	}
	slots := make([]slot[T], 0, count)
	for i, k := range keep {
		if k {
			slots = append(slots, slot[T]{value: t.at(i), used: true})
		}
	}
	return fromSlots(slots, t.b.growth, t.parallel)
}

// apply calls fn for every logical position, fanning out over the worker
// pool when the parallel hint is set and the window is large enough.
func (t *Buffer[T]) apply(fn func(i int, x T)) {
	n := t.Size()
	cfg := currentConfig()
	if !t.parallel || n < cfg.ParallelThreshold {
		for i := range n {
			fn(i, t.at(i))
		}
		return
	}
	parallelFor(n, blockSize(n, cfg), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i, t.at(i))
		}
	})
}

// all yields the elements in logical order.
func (t *Buffer[T]) all(yield func(T) bool) {
	if t.reversed {
		for i := t.end - 1; i >= t.head; i-- {
			if !yield(t.b.slots[i].value) {
				return
			}
		}
		return
	}
	for i := t.head; i < t.end; i++ {
		if !yield(t.b.slots[i].value) {
			return
		}
	}
}

func foldBuffer[T, A any](t *Buffer[T], initial A, fn func(A, T) A) A {
	acc := initial
	if t.reversed {
		for i := t.end - 1; i >= t.head; i-- {
			acc = fn(acc, t.b.slots[i].value)
		}
		return acc
	}
	for i := t.head; i < t.end; i++ {
		acc = fn(acc, t.b.slots[i].value)
	}
	return acc
}

func mapBuffer[T, R any](t *Buffer[T], fn func(T) R) *Buffer[R] {
	slots := make([]slot[R], t.Size())
	t.apply(func(i int, x T) {
		slots[i] = slot[R]{value: fn(x), used: true}
	})
	return fromSlots(slots, t.b.growth, t.parallel)
}

// CreateBuffer is the [Creator] of [Buffer].
//
// A Buffer tail is extended in place when the slot next to its logical
// front is free; otherwise the window is copied into a larger array.
// Any other tail is materialized element by element.
func CreateBuffer[T any](head T, tail Seq[T]) (Seq[T], error) {
	b, err := prepend(head, tail)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func prepend[T any](head T, tail Seq[T]) (*Buffer[T], error) {
	if tail.IsEmpty() {
		return singleton(head, defaultGrowth(), false), nil
	}
	if t, ok := tail.(*Buffer[T]); ok {
		return t.extend(head)
	}
	return materialize(head, tail)
}

// materialize copies a foreign tail: each element is prepended to a
// fresh Buffer, and the result is reversed once.
func materialize[T any](head T, tail Seq[T]) (*Buffer[T], error) {
	result := singleton(head, defaultGrowth(), false)
	for x := range All(tail) {
		var err error
		if result, err = result.extend(x); err != nil {
			return nil, err
		}
	}
	return result.reverse(), nil
}
