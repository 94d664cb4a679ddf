// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

// Cons is a singly linked persistent list. It is the baseline the array
// backed variants are compared against, and a source they materialize
// from when no structure can be shared.
//
// Derived operations iterate with an accumulator and reverse once, so
// their depth does not grow with the length of the list.
type Cons[T any] struct {
	head T
	tail Seq[T]
	size int
}

// ConsOf returns a linked list of elems.
func ConsOf[T any](elems ...T) Seq[T] {
	list := Empty[T]()
	for i := len(elems) - 1; i >= 0; i-- {
		list = cons(elems[i], list)
	}
	return list
}

func cons[T any](head T, tail Seq[T]) *Cons[T] {
	return &Cons[T]{head: head, tail: tail, size: tail.Size() + 1}
}

// CreateCons is the [Creator] of [Cons]. It never fails.
func CreateCons[T any](head T, tail Seq[T]) (Seq[T], error) {
	return cons(head, tail), nil
}

func (c *Cons[T]) Head() T {
	return c.head
}

func (c *Cons[T]) Tail() Seq[T] {
	return c.tail
}

func (c *Cons[T]) IsEmpty() bool {
	return false
}

func (c *Cons[T]) Factory() Creator[T] {
	return CreateCons[T]
}

func (c *Cons[T]) Size() int {
	return c.size
}

func (c *Cons[T]) String() string {
	return Render[T](c)
}

// Reverse cannot fail: CreateCons has no capacity limit.
func (c *Cons[T]) Reverse() Seq[T] {
	r, _ := reverseOf[T](c)
	return r
}

func (c *Cons[T]) Filter(pred func(T) bool) Seq[T] {
	r, _ := filterOf[T](c, pred)
	return r
}

func mapCons[T, R any](c *Cons[T], fn func(T) R) Seq[R] {
	acc := Empty[R]()
	for l := Seq[T](c); !l.IsEmpty(); l = l.Tail() {
		acc = cons(fn(l.Head()), acc)
	}
	r, _ := reverseOf(acc)
	return r
}
