// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/pseq"
)

func TestFoldWhile(t *testing.T) {
	for _, v := range variants[int]() {
		t.Run(v.name, func(t *testing.T) {
			list := v.of(rangeInts(1, 100)...)
			visited := 0
			// sum until the running total would pass 10
			sum := pseq.FoldWhile(list, 0, func(acc, x int) kont.Either[int, int] {
				visited++
				if acc+x > 10 {
					return kont.Right[int, int](acc)
				}
				return kont.Left[int, int](acc + x)
			})
			if sum != 10 {
				t.Fatalf("got %d, want 10", sum)
			}
			if visited != 5 {
				t.Fatalf("visited %d elements, want 5", visited)
			}

			total := pseq.FoldWhile(list, 0, func(acc, x int) kont.Either[int, int] {
				return kont.Left[int, int](acc + x)
			})
			if total != 4950 {
				t.Fatalf("got %d, want 4950", total)
			}

			if got := pseq.FoldWhile(v.of(), -1, func(acc, x int) kont.Either[int, int] {
				return kont.Left[int, int](acc + x)
			}); got != -1 {
				t.Fatalf("empty got %d, want -1", got)
			}
		})
	}
}

func TestAllBreak(t *testing.T) {
	for _, v := range variants[string]() {
		t.Run(v.name, func(t *testing.T) {
			list := v.of("a", "b", "c", "d")
			var got []string
			for x := range pseq.All(list.Reverse()) {
				if x == "b" {
					break
				}
				got = append(got, x)
			}
			if len(got) != 2 || got[0] != "d" || got[1] != "c" {
				t.Fatalf("got %v, want [d c]", got)
			}
		})
	}
}
