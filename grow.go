// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"math/bits"

	"go.uber.org/zap"
)

// MaxSize is the hard capacity ceiling of a backing array.
const MaxSize = 1 << 24

// Growth is the amortized growth policy of a backing array.
//
// When a Buffer cannot claim a free slot, its window of size n is copied
// into a new array of capacity max(n*Num/Den + Extra, n+1), capped at
// Limit. The spare capacity goes to the side the Buffer grows on, except
// for Rear percent of it, which is kept on the opposite side.
type Growth struct {
	Num   int `yaml:"numerator" env:"NUMERATOR"`
	Den   int `yaml:"denominator" env:"DENOMINATOR"`
	Extra int `yaml:"extra" env:"EXTRA"`
	Rear  int `yaml:"rear_percent" env:"REAR_PERCENT"`
	Limit int `yaml:"limit" env:"LIMIT"`
}

// DefaultGrowth grows by 6/5 plus 10 slots, all of them in front.
var DefaultGrowth = Growth{Num: 6, Den: 5, Extra: 10, Rear: 0, Limit: MaxSize}

// Validate reports ErrInvalidArgument for a policy that cannot grow or
// whose Limit is not a power of two in [1, MaxSize].
func (g Growth) Validate() error {
	switch {
	case g.Den < 1 || g.Num < g.Den:
		return invalidArgument("growth ratio %d/%d", g.Num, g.Den)
	case g.Extra < 0:
		return invalidArgument("growth extra %d", g.Extra)
	case g.Rear < 0 || g.Rear > 100:
		return invalidArgument("growth rear percent %d", g.Rear)
	case g.Limit < 1 || g.Limit > MaxSize || bits.OnesCount(uint(g.Limit)) != 1:
		return invalidArgument("growth limit %d", g.Limit)
	}
	return nil
}

// Next returns the capacity of the array replacing a full one holding
// size elements, or ErrCreationFailed if size already reached Limit.
func (g *Growth) Next(size int) (int, error) {
	if size >= g.Limit {
		return 0, creationFailed("size %d reached limit %d", size, g.Limit)
	}
	n := size*g.Num/g.Den + g.Extra
	if n < size+1 {
		n = size + 1
	}
	if n > g.Limit {
		n = g.Limit
	}
	return n, nil
}

// extend returns a Buffer with v in front of t. The free slot next to the
// logical front is claimed when possible; otherwise t is grown.
func (t *Buffer[T]) extend(v T) (*Buffer[T], error) {
	if t.reversed {
		if t.b.claim(t.end, v) {
			stats.claims.Add(1)
			return &Buffer[T]{b: t.b, head: t.head, end: t.end + 1, reversed: true, parallel: t.parallel}, nil
		}
	} else if t.b.claim(t.head-1, v) {
		stats.claims.Add(1)
		return &Buffer[T]{b: t.b, head: t.head - 1, end: t.end, parallel: t.parallel}, nil
	}
	return t.grow(v)
}

// grow copies the window of t into a new private array and writes v next
// to it. The old array is only read, inside the window of t.
func (t *Buffer[T]) grow(v T) (*Buffer[T], error) {
	g := t.b.growth
	size := t.Size()
	capacity, err := g.Next(size)
	if err != nil {
		return nil, err
	}
	slots := make([]slot[T], capacity)
	spare := capacity - size
	rear := spare * g.Rear / 100
	if rear >= spare {
		rear = spare - 1
	}
	nb := &backing[T]{slots: slots, growth: g}
	var next *Buffer[T]
	if t.reversed {
		copy(slots[rear:], t.b.slots[t.head:t.end])
		slots[rear+size] = slot[T]{value: v, used: true}
		next = &Buffer[T]{b: nb, head: rear, end: rear + size + 1, reversed: true, parallel: t.parallel}
	} else {
		head := capacity - rear - size
		copy(slots[head:], t.b.slots[t.head:t.end])
		slots[head-1] = slot[T]{value: v, used: true}
		next = &Buffer[T]{b: nb, head: head - 1, end: head + size, parallel: t.parallel}
	}
	stats.growths.Add(1)
	stats.copied.Add(uint64(size))
	logger().Debug("buffer grown",
		zap.Int("size", size),
		zap.Int("old_cap", len(t.b.slots)),
		zap.Int("new_cap", capacity),
		zap.Bool("reversed", t.reversed),
	)
	return next, nil
}
