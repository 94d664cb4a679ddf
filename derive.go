// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"iter"
)

// Map applies fn to every element, preserving length and order.
// The result has the same variant as s; a foreign s is materialized into
// a Buffer, or a Chunked when it is larger than MaxSize.
// Map panics only if a foreign s holds more than MaxSize chunks' worth of
// elements.
// fn must be pure: parallel views may call it concurrently.
func Map[T, R any](s Seq[T], fn func(T) R) Seq[R] {
	if s.IsEmpty() {
		return Empty[R]()
	}
	switch v := s.(type) {
	case *Buffer[T]:
		return mapBuffer(v, fn)
	case *Chunked[T]:
		return mapChunked(v, fn)
	case *Cons[T]:
		return mapCons(v, fn)
	}
	var vals []R
	for x := range All(s) {
		vals = append(vals, fn(x))
	}
	if len(vals) > MaxSize {
		c, err := chunkValues(vals, DefaultChunkSize, &outerGrowth, false)
		if err != nil {
			panic(err)
		}
		return c
	}
	return fromValues(vals, defaultGrowth(), false)
}

// All returns an iterator over the elements of s in logical order.
func All[T any](s Seq[T]) iter.Seq[T] {
	// Chunked is matched by method, not by type: naming *Chunked[T] here
	// would instantiate Buffer[*Buffer[T]] from every Buffer[T].
	if v, ok := s.(interface{ all(func(T) bool) }); ok {
		return v.all
	}
	return func(yield func(T) bool) {
		for l := s; !l.IsEmpty(); l = l.Tail() {
			if !yield(l.Head()) {
				return
			}
		}
	}
}

// reverseOf rebuilds s back to front through its own factory.
func reverseOf[T any](s Seq[T]) (Seq[T], error) {
	acc := Empty[T]()
	create := s.Factory()
	for l := s; !l.IsEmpty(); l = l.Tail() {
		var err error
		if acc, err = create(l.Head(), acc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// filterOf keeps the elements satisfying pred, accumulating the survivors
// in reverse and reversing once at the end.
func filterOf[T any](s Seq[T], pred func(T) bool) (Seq[T], error) {
	acc := Empty[T]()
	create := s.Factory()
	for l := s; !l.IsEmpty(); l = l.Tail() {
		if x := l.Head(); pred(x) {
			var err error
			if acc, err = create(x, acc); err != nil {
				return nil, err
			}
		}
	}
	if acc.IsEmpty() {
		return acc, nil
	}
	return reverseOf(acc)
}
