// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

// empty is the canonical empty sequence. It is zero-sized, so every
// empty[T] value is equal to every other.
type empty[T any] struct{}

// Empty returns the canonical empty sequence of element type T.
// Its Tail and Reverse return itself.
func Empty[T any]() Seq[T] {
	return empty[T]{}
}

// Head returns the zero value of T.
func (empty[T]) Head() T {
	var zero T
	return zero
}

func (e empty[T]) Tail() Seq[T] {
	return e
}

func (empty[T]) IsEmpty() bool {
	return true
}

func (e empty[T]) Reverse() Seq[T] {
	return e
}

func (e empty[T]) Filter(func(T) bool) Seq[T] {
	return e
}

func (empty[T]) Size() int {
	return 0
}

func (empty[T]) String() string {
	return "()"
}

// Factory returns a Creator that defers to the tail's own factory.
// With an empty tail there is no variant to infer, and it fails with
// ErrCreationFailed.
func (empty[T]) Factory() Creator[T] {
	return createFromEmpty[T]
}

func createFromEmpty[T any](head T, tail Seq[T]) (Seq[T], error) {
	if !tail.IsEmpty() {
		return tail.Factory()(head, tail)
	}
	return nil, creationFailed("empty list and empty tail, cannot determine variant")
}
