// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avlmetrics exports the shape and mutation counters of an
// [avltree.Tree] as prometheus metrics.
package avlmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jba/avltree"
)

// Source is the part of *avltree.Tree[V] the collector reads.
type Source interface {
	Size() int
	Height() int
	Stats() avltree.Stats
}

// Collector is a prometheus.Collector for one tree. The tree is read on
// every scrape, so scrapes must be serialized with the tree's mutations.
type Collector struct {
	src Source

	size          *prometheus.Desc
	height        *prometheus.Desc
	inserts       *prometheus.Desc
	deletes       *prometheus.Desc
	rebalances    *prometheus.Desc
	heightUpdates *prometheus.Desc
	rotations     *prometheus.Desc
	doubles       *prometheus.Desc
	rejected      *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for src whose metrics are named
// <namespace>_tree_* and labelled tree=<name>.
func NewCollector(namespace, name string, src Source) *Collector {
	labels := prometheus.Labels{"tree": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "tree", metric), help, nil, labels)
	}
	return &Collector{
		src:           src,
		size:          desc("size", "Number of keys in the tree"),
		height:        desc("height", "Height of the tree, -1 when empty"),
		inserts:       desc("inserts_total", "Total number of successful inserts"),
		deletes:       desc("deletes_total", "Total number of successful deletes"),
		rebalances:    desc("rebalances_total", "Total number of rebalancing operations reported by inserts and deletes"),
		heightUpdates: desc("height_updates_total", "Total number of stored heights changed while rebalancing"),
		rotations:     desc("rotations_total", "Total number of single rotations"),
		doubles:       desc("double_rotations_total", "Total number of double rotations"),
		rejected:      desc("rejected_total", "Total number of calls rejected for violating a precondition"),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.height
	ch <- c.inserts
	ch <- c.deletes
	ch <- c.rebalances
	ch <- c.heightUpdates
	ch <- c.rotations
	ch <- c.doubles
	ch <- c.rejected
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge(c.size, c.src.Size())
	gauge(c.height, c.src.Height())
	counter(c.inserts, st.Inserts)
	counter(c.deletes, st.Deletes)
	counter(c.rebalances, st.Rebalances)
	counter(c.heightUpdates, st.HeightUpdates)
	counter(c.rotations, st.Rotations)
	counter(c.doubles, st.DoubleRotations)
	counter(c.rejected, st.Rejected)
}
