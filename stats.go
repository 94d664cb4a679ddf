// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import "code.hybscloud.com/atomix"

// Stats is a snapshot of the process-wide counters. Every counter only
// ever increases.
type Stats struct {
	// Claims counts prepends that reused a free slot of a shared array.
	Claims uint64
	// Growths counts prepends that copied their window into a new array.
	Growths uint64
	// Copied counts the elements copied by growths.
	Copied uint64
	// Failures counts ErrCreationFailed results.
	Failures uint64
	// WorkerTasks counts parallel blocks run by pool workers.
	WorkerTasks uint64
	// InlineTasks counts parallel blocks run by the submitting goroutine.
	InlineTasks uint64
}

var stats struct {
	claims      atomix.Uint64
	growths     atomix.Uint64
	copied      atomix.Uint64
	failures    atomix.Uint64
	workerTasks atomix.Uint64
	inlineTasks atomix.Uint64
}

// ReadStats returns the current counters.
func ReadStats() Stats {
	return Stats{
		Claims:      stats.claims.Load(),
		Growths:     stats.growths.Load(),
		Copied:      stats.copied.Load(),
		Failures:    stats.failures.Load(),
		WorkerTasks: stats.workerTasks.Load(),
		InlineTasks: stats.inlineTasks.Load(),
	}
}
