// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"fmt"
	"strings"
)

// Seq is the capability every persistent sequence provides.
//
// Head returns the zero value of T when the sequence is empty; a zero
// element is also legal, so callers check IsEmpty separately.
type Seq[T any] interface {
	Head() T
	Tail() Seq[T]
	IsEmpty() bool

	// Factory returns the operation that puts a head in front of a tail,
	// producing this variant where possible.
	Factory() Creator[T]

	Reverse() Seq[T]

	// Filter keeps the elements satisfying pred, in their original order.
	// pred must be pure: parallel views may call it concurrently.
	Filter(pred func(T) bool) Seq[T]

	Size() int
	String() string
}

// Creator builds a sequence from a head element and a tail sequence.
// It fails with ErrCreationFailed when the combination cannot be resolved
// to a concrete variant or would exceed the capacity limit.
type Creator[T any] func(head T, tail Seq[T]) (Seq[T], error)

// Create puts head in front of tail using tail's own factory.
func Create[T any](head T, tail Seq[T]) (Seq[T], error) {
	return tail.Factory()(head, tail)
}

// Render returns "(e1, e2, ...)" in logical order, "()" when empty.
func Render[T any](s Seq[T]) string {
	if s.IsEmpty() {
		return "()"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sep := ""
	for x := range All(s) {
		sb.WriteString(sep)
		fmt.Fprint(&sb, x)
		sep = ", "
	}
	sb.WriteByte(')')
	return sb.String()
}
