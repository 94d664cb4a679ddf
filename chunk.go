// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the chunk size target when none is configured.
const DefaultChunkSize = 1_000_000

// outerGrowth is the growth policy of the Buffer holding the chunks.
var outerGrowth = DefaultGrowth

// Chunked is a sequence of Buffer chunks. Bounding the size of new chunks
// bounds the copy cost of growth for very large sequences.
//
// The outer sequence is first followed by rest, itself a Buffer of chunks
// (nil when there is only one). No chunk is ever empty. chunkSize bounds
// chunks created by prepending; chunks taken over as a whole may be larger.
type Chunked[T any] struct {
	first     *Buffer[T]
	rest      *Buffer[*Buffer[T]]
	chunkSize int
}

// ChunkOf splits elems into runs of at most chunkSize elements.
// It fails with ErrInvalidArgument if chunkSize < 1.
func ChunkOf[T any](chunkSize int, elems []T, opts ...Option) (Seq[T], error) {
	if chunkSize < 1 {
		return nil, invalidArgument("chunk size %d", chunkSize)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Empty[T](), nil
	}
	if chunkSize > o.growth.Limit {
		return nil, creationFailed("chunk size %d exceeds limit %d", chunkSize, o.growth.Limit)
	}
	c, err := chunkValues(elems, chunkSize, o.growth, o.parallel)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ChunkedOf chunks elems by the configured chunk size.
func ChunkedOf[T any](elems ...T) Seq[T] {
	s, err := ChunkOf(currentConfig().ChunkSize, elems)
	if err != nil {
		panic(err)
	}
	return s
}

// chunkValues builds the chunks left to right by prepending each onto the
// outer Buffer, then reverses the outer Buffer to restore their order.
// 0 < chunkSize <= g.Limit, len(vals) > 0.
func chunkValues[T any](vals []T, chunkSize int, g *Growth, parallel bool) (*Chunked[T], error) {
	var outer *Buffer[*Buffer[T]]
	for start := 0; start < len(vals); start += chunkSize {
		chunk := fromValues(vals[start:min(start+chunkSize, len(vals))], g, parallel)
		if outer == nil {
			outer = singleton(chunk, &outerGrowth, parallel)
			continue
		}
		var err error
		if outer, err = outer.extend(chunk); err != nil {
			return nil, err
		}
	}
	return fromOuter(outer.reverse(), chunkSize), nil
}

func fromOuter[T any](outer *Buffer[*Buffer[T]], chunkSize int) *Chunked[T] {
	return &Chunked[T]{first: outer.Head(), rest: outer.tail(), chunkSize: chunkSize}
}

// fromChunks drops empty chunks. It returns Empty if none is left.
func fromChunks[T any](chunks []*Buffer[T], chunkSize int, parallel bool) Seq[T] {
	kept := chunks[:0]
	for _, c := range chunks {
		if c != nil {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return Empty[T]()
	}
	c := &Chunked[T]{first: kept[0], chunkSize: chunkSize}
	if len(kept) > 1 {
		c.rest = fromValues(kept[1:], &outerGrowth, parallel)
	}
	return c
}

// chunks returns every chunk in order.
func (c *Chunked[T]) chunks() []*Buffer[T] {
	out := []*Buffer[T]{c.first}
	if c.rest != nil {
		for chunk := range c.rest.all {
			out = append(out, chunk)
		}
	}
	return out
}

func (c *Chunked[T]) parallel() bool {
	return c.first.parallel
}

// ChunkSize returns the chunk size target.
func (c *Chunked[T]) ChunkSize() int {
	return c.chunkSize
}

// Chunks returns the number of chunks.
func (c *Chunked[T]) Chunks() int {
	if c.rest == nil {
		return 1
	}
	return 1 + c.rest.Size()
}

func (c *Chunked[T]) Head() T {
	return c.first.Head()
}

// Tail narrows the first chunk, dropping it once it is exhausted.
func (c *Chunked[T]) Tail() Seq[T] {
	if first := c.first.tail(); first != nil {
		return &Chunked[T]{first: first, rest: c.rest, chunkSize: c.chunkSize}
	}
	if c.rest == nil {
		return Empty[T]()
	}
	return fromOuter(c.rest, c.chunkSize)
}

func (c *Chunked[T]) IsEmpty() bool {
	return false
}

// Reverse reverses every chunk and the order of the chunks.
func (c *Chunked[T]) Reverse() Seq[T] {
	chunks := c.chunks()
	n := len(chunks)
	reversed := make([]*Buffer[T], n)
	for i, chunk := range chunks {
		reversed[n-1-i] = chunk.reverse()
	}
	return fromChunks(reversed, c.chunkSize, c.parallel())
}

// Filter filters every chunk, concurrently across chunks when the
// parallel hint is set, and drops the chunks left empty.
func (c *Chunked[T]) Filter(pred func(T) bool) Seq[T] {
	chunks := c.chunks()
	eachChunk(len(chunks), c.parallel(), func(i int) {
		if f, ok := chunks[i].Filter(pred).(*Buffer[T]); ok {
			chunks[i] = f
		} else {
			chunks[i] = nil
		}
	})
	return fromChunks(chunks, c.chunkSize, c.parallel())
}

// Size sums the chunk sizes on every call.
func (c *Chunked[T]) Size() int {
	n := c.first.Size()
	if c.rest != nil {
		n = foldBuffer(c.rest, n, func(n int, chunk *Buffer[T]) int {
			return n + chunk.Size()
		})
	}
	return n
}

func (c *Chunked[T]) String() string {
	return Render[T](c)
}

func (c *Chunked[T]) Factory() Creator[T] {
	return CreateChunked[T]
}

func (c *Chunked[T]) all(yield func(T) bool) {
	for _, chunk := range c.chunks() {
		for x := range chunk.all {
			if !yield(x) {
				return
			}
		}
	}
}

func mapChunked[T, R any](c *Chunked[T], fn func(T) R) Seq[R] {
	chunks := c.chunks()
	mapped := make([]*Buffer[R], len(chunks))
	eachChunk(len(chunks), c.parallel(), func(i int) {
		mapped[i] = mapBuffer(chunks[i], fn)
	})
	return fromChunks(mapped, c.chunkSize, c.parallel())
}

// eachChunk calls fn for 0 <= i < n, on an errgroup bounded by the
// configured worker count when parallel is set.
func eachChunk(n int, parallel bool, fn func(i int)) {
	if !parallel || n < 2 {
		for i := range n {
			fn(i)
		}
		return
	}
	// fn cannot fail; the group only bounds the number of goroutines.
	var g errgroup.Group
	g.SetLimit(currentConfig().Workers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	g.Wait()
}

// CreateChunked is the [Creator] of [Chunked].
//
// A Chunked tail keeps its chunks: head goes into the first chunk while it
// is below the chunk size target and its growth limit, otherwise into a new
// chunk. A Buffer tail at or above either bound becomes a chunk of its own
// without copying.
// Any other tail is materialized element by element.
func CreateChunked[T any](head T, tail Seq[T]) (Seq[T], error) {
	c, err := prependChunked(head, tail)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func prependChunked[T any](head T, tail Seq[T]) (*Chunked[T], error) {
	if tail.IsEmpty() {
		return &Chunked[T]{first: singleton(head, defaultGrowth(), false), chunkSize: currentConfig().ChunkSize}, nil
	}
	switch t := tail.(type) {
	case *Chunked[T]:
		if t.first.Size() < min(t.chunkSize, t.first.b.growth.Limit) {
			first, err := t.first.extend(head)
			if err != nil {
				return nil, err
			}
			return &Chunked[T]{first: first, rest: t.rest, chunkSize: t.chunkSize}, nil
		}
		rest, err := pushChunk(t.first, t.rest)
		if err != nil {
			return nil, err
		}
		first := singleton(head, t.first.b.growth, t.first.parallel)
		return &Chunked[T]{first: first, rest: rest, chunkSize: t.chunkSize}, nil
	case *Buffer[T]:
		chunkSize := currentConfig().ChunkSize
		if t.Size() >= min(chunkSize, t.b.growth.Limit) {
			first := singleton(head, t.b.growth, t.parallel)
			return &Chunked[T]{first: first, rest: singleton(t, &outerGrowth, t.parallel), chunkSize: chunkSize}, nil
		}
		first, err := t.extend(head)
		if err != nil {
			return nil, err
		}
		return &Chunked[T]{first: first, chunkSize: chunkSize}, nil
	}
	return materializeChunked(head, tail)
}

func pushChunk[T any](chunk *Buffer[T], rest *Buffer[*Buffer[T]]) (*Buffer[*Buffer[T]], error) {
	if rest == nil {
		return singleton(chunk, &outerGrowth, chunk.parallel), nil
	}
	return rest.extend(chunk)
}

func materializeChunked[T any](head T, tail Seq[T]) (*Chunked[T], error) {
	result, err := prependChunked(head, Empty[T]())
	if err != nil {
		return nil, err
	}
	for x := range All(tail) {
		if result, err = prependChunked(x, Seq[T](result)); err != nil {
			return nil, err
		}
	}
	return result.Reverse().(*Chunked[T]), nil
}
