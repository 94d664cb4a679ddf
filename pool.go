// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"sync"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"go.uber.org/zap"
)

// task is one contiguous block [lo, hi) of a parallelFor call.
type task struct {
	fn      func(lo, hi int)
	lo, hi  int
	pending *atomix.Int64
}

func (t *task) run() {
	t.fn(t.lo, t.hi)
	t.pending.Add(-1)
}

// workerPool is the process-wide pool behind parallel Filter and Map.
// Workers are started on first use and run until [Shutdown]. Idle workers
// wait on the MPMC queue with adaptive backoff. The queue is the compact
// CAS-based variant: it has no dequeue threshold, so blocks left behind by
// a finished submitter are always reachable.
type workerPool struct {
	mu  sync.Mutex
	cur atomic.Pointer[poolRun]
}

// poolRun is one generation of workers, from start to Shutdown.
type poolRun struct {
	q       lfq.Queue[task]
	done    chan struct{}
	workers sync.WaitGroup
}

var pool workerPool

// start returns the running generation, starting one sized by the current
// configuration if there is none.
func (p *workerPool) start() *poolRun {
	if r := p.cur.Load(); r != nil {
		return r
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if r := p.cur.Load(); r != nil {
		return r
	}
	cfg := currentConfig()
	r := &poolRun{
		q:    lfq.BuildMPMC[task](lfq.New(cfg.QueueCapacity).Compact()),
		done: make(chan struct{}),
	}
	r.workers.Add(cfg.Workers)
	for range cfg.Workers {
		go r.work()
	}
	p.cur.Store(r)
	logger().Info("worker pool started",
		zap.Int("workers", cfg.Workers),
		zap.Int("queue_capacity", cfg.QueueCapacity),
	)
	return r
}

// stop releases the running generation and waits for its workers.
func (p *workerPool) stop() bool {
	p.mu.Lock()
	r := p.cur.Swap(nil)
	p.mu.Unlock()
	if r == nil {
		return false
	}
	close(r.done)
	r.workers.Wait()
	logger().Info("worker pool stopped")
	return true
}

// Shutdown stops the worker pool goroutines and waits for them to exit.
// Blocks still queued are run by the goroutines waiting on them. The next
// parallel operation starts a new pool from the configuration then in
// effect. Shutdown reports whether a pool was running.
func Shutdown() bool {
	return pool.stop()
}

// work exits once the queue is drained after done is closed.
func (r *poolRun) work() {
	defer r.workers.Done()
	var bo iox.Backoff
	for {
		t, err := r.q.Dequeue()
		if err != nil {
			select {
			case <-r.done:
				return
			default:
			}
			bo.Wait()
			continue
		}
		bo.Reset()
		stats.workerTasks.Add(1)
		t.run()
	}
}

// parallelFor calls fn over [0, n) in blocks of at most block indices and
// returns once every block has run. A block that does not fit in the
// queue runs inline. While waiting, the caller runs queued blocks itself,
// so a parallelFor nested inside a worker, or one outliving a Shutdown,
// still makes progress.
func parallelFor(n, block int, fn func(lo, hi int)) {
	r := pool.start()
	var pending atomix.Int64
	for lo := 0; lo < n; lo += block {
		pending.Add(1)
		t := task{fn: fn, lo: lo, hi: min(lo+block, n), pending: &pending}
		if err := r.q.Enqueue(&t); err != nil {
			stats.inlineTasks.Add(1)
			t.run()
		}
	}
	var bo iox.Backoff
	for pending.Load() > 0 {
		t, err := r.q.Dequeue()
		if err != nil {
			bo.Wait()
			continue
		}
		bo.Reset()
		stats.inlineTasks.Add(1)
		t.run()
	}
}

// blockSize splits n indices into about four blocks per worker, never
// smaller than a quarter of the parallel threshold.
func blockSize(n int, cfg *Config) int {
	return max(n/(cfg.Workers*4), cfg.ParallelThreshold/4, 1)
}
