// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics exports the pseq counters as Prometheus metrics.
//
//	prometheus.MustRegister(metrics.NewCollector())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/pseq"
)

// Collector implements prometheus.Collector over [pseq.ReadStats].
type Collector struct {
	read func() pseq.Stats

	claimsDesc   *prometheus.Desc
	growthsDesc  *prometheus.Desc
	copiedDesc   *prometheus.Desc
	failuresDesc *prometheus.Desc
	tasksDesc    *prometheus.Desc
}

// NewCollector returns a Collector reading the process-wide counters.
func NewCollector() *Collector {
	return newCollector(pseq.ReadStats)
}

func newCollector(read func() pseq.Stats) *Collector {
	return &Collector{
		read: read,
		claimsDesc: prometheus.NewDesc(
			prometheus.BuildFQName("pseq", "buffer", "claims_total"),
			"Prepends that reused a free slot of a shared array",
			nil, nil,
		),
		growthsDesc: prometheus.NewDesc(
			prometheus.BuildFQName("pseq", "buffer", "growths_total"),
			"Prepends that copied their window into a new array",
			nil, nil,
		),
		copiedDesc: prometheus.NewDesc(
			prometheus.BuildFQName("pseq", "buffer", "copied_elements_total"),
			"Elements copied by growths",
			nil, nil,
		),
		failuresDesc: prometheus.NewDesc(
			prometheus.BuildFQName("pseq", "", "creation_failures_total"),
			"Sequence constructions that failed",
			nil, nil,
		),
		tasksDesc: prometheus.NewDesc(
			prometheus.BuildFQName("pseq", "pool", "tasks_total"),
			"Parallel blocks run, by the goroutine that ran them",
			[]string{"runner"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.claimsDesc
	ch <- c.growthsDesc
	ch <- c.copiedDesc
	ch <- c.failuresDesc
	ch <- c.tasksDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.read()
	ch <- prometheus.MustNewConstMetric(c.claimsDesc, prometheus.CounterValue, float64(s.Claims))
	ch <- prometheus.MustNewConstMetric(c.growthsDesc, prometheus.CounterValue, float64(s.Growths))
	ch <- prometheus.MustNewConstMetric(c.copiedDesc, prometheus.CounterValue, float64(s.Copied))
	ch <- prometheus.MustNewConstMetric(c.failuresDesc, prometheus.CounterValue, float64(s.Failures))
	ch <- prometheus.MustNewConstMetric(c.tasksDesc, prometheus.CounterValue, float64(s.WorkerTasks), "worker")
	ch <- prometheus.MustNewConstMetric(c.tasksDesc, prometheus.CounterValue, float64(s.InlineTasks), "inline")
}
