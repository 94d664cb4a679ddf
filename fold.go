// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"code.hybscloud.com/kont"
)

// FoldLeft accumulates fn over s from the first element to the last.
// It is always sequential, whatever the parallel hint of s.
func FoldLeft[T, A any](s Seq[T], initial A, fn func(A, T) A) A {
	if v, ok := s.(*Buffer[T]); ok {
		return foldBuffer(v, initial, fn)
	}
	acc := initial
	for x := range All(s) {
		acc = fn(acc, x)
	}
	return acc
}

// FoldWhile is FoldLeft with early exit.
// step returns Left(acc) to continue or Right(acc) to stop with acc.
func FoldWhile[T, A any](s Seq[T], initial A, step func(A, T) kont.Either[A, A]) A {
	acc := initial
	for x := range All(s) {
		e := step(acc, x)
		if right, ok := e.GetRight(); ok {
			return right
		}
		acc, _ = e.GetLeft()
	}
	return acc
}
