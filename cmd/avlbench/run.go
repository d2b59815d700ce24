// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/jba/avltree"
	"github.com/jba/avltree/avlmetrics"
)

type config struct {
	Keys        int
	Ops         int
	DeleteRatio float64
	Seed        uint64
	Verify      bool
	Metrics     bool
	Trace       bool
	Progress    int
}

type report struct {
	Inserts  int
	Deletes  int
	Size     int
	Height   int
	Stats    avltree.Stats
	Digest   uint64
	Elapsed  time.Duration
	MaxSeen  int // largest return value of a single Insert or Delete
	Verified bool
}

// workload generates fresh keys and picks present keys to delete.
type workload struct {
	r       *rand.Rand
	tree    *avltree.Tree[string]
	present []int
	space   int
}

func (w *workload) freshKey() int {
	for {
		if k := w.r.IntN(w.space); !w.tree.Contains(k) {
			return k
		}
	}
}

// takeKey removes and returns a random present key.
func (w *workload) takeKey() int {
	i := w.r.IntN(len(w.present))
	k := w.present[i]
	last := len(w.present) - 1
	w.present[i] = w.present[last]
	w.present = w.present[:last]
	return k
}

func run(cfg config, logger avltree.Logger, out io.Writer) (*report, error) {
	tree := avltree.New[string](avltree.WithLogger(logger), avltree.WithRotationTrace(cfg.Trace))
	w := &workload{
		r:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		tree:  tree,
		space: 4*(cfg.Keys+cfg.Ops) + 1,
	}
	rep := &report{Verified: cfg.Verify}

	check := func(i int) error {
		if !cfg.Verify {
			return nil
		}
		if err := tree.Verify(); err != nil {
			return fmt.Errorf("after operation %d: %w", i, err)
		}
		return nil
	}
	insert := func(i int) error {
		k := w.freshKey()
		n, err := tree.Insert(k, fmt.Sprintf("v%d", i))
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		w.present = append(w.present, k)
		rep.Inserts++
		rep.MaxSeen = max(rep.MaxSeen, n)
		return nil
	}

	logger.Info("starting run", "keys", cfg.Keys, "ops", cfg.Ops, "delete_ratio", cfg.DeleteRatio, "seed", cfg.Seed)
	start := time.Now()
	total := cfg.Keys + cfg.Ops
	for i := range total {
		if cfg.Progress > 0 && i%cfg.Progress == 0 && i > 0 {
			logger.Debug("applied operations", "count", i, "size", tree.Size(), "height", tree.Height())
		}
		if i >= cfg.Keys && len(w.present) > 0 && w.r.Float64() < cfg.DeleteRatio {
			k := w.takeKey()
			n, err := tree.DeleteKey(k)
			if err != nil {
				return nil, fmt.Errorf("operation %d: %w", i, err)
			}
			rep.Deletes++
			rep.MaxSeen = max(rep.MaxSeen, n)
		} else if err := insert(i); err != nil {
			return nil, err
		}
		if err := check(i); err != nil {
			return nil, err
		}
	}
	rep.Elapsed = time.Since(start)
	if err := tree.Verify(); err != nil {
		return nil, err
	}
	if tree.Size() != rep.Inserts-rep.Deletes {
		return nil, fmt.Errorf("size %d, want %d inserts minus %d deletes", tree.Size(), rep.Inserts, rep.Deletes)
	}

	rep.Size = tree.Size()
	rep.Height = tree.Height()
	rep.Stats = tree.Stats()
	rep.Digest = tree.Digest()
	logger.Info("finished run", "size", rep.Size, "height", rep.Height, "elapsed", rep.Elapsed)

	if cfg.Metrics {
		if err := writeMetrics(out, tree); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

func writeMetrics(out io.Writer, tree *avltree.Tree[string]) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(avlmetrics.NewCollector("avlbench", "main", tree))
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("error gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("error writing metrics: %w", err)
		}
	}
	return nil
}

func (r *report) print(out io.Writer) {
	ops := r.Inserts + r.Deletes
	rate := float64(ops) / max(r.Elapsed.Seconds(), 1e-9)
	fmt.Fprintf(out, "operations       %s (%s inserts, %s deletes) in %s, %s ops/s\n",
		humanize.Comma(int64(ops)), humanize.Comma(int64(r.Inserts)), humanize.Comma(int64(r.Deletes)),
		r.Elapsed.Round(time.Millisecond), humanize.Comma(int64(rate)))
	fmt.Fprintf(out, "size             %s\n", humanize.Comma(int64(r.Size)))
	fmt.Fprintf(out, "height           %d\n", r.Height)
	fmt.Fprintf(out, "rebalances       %s (max %d per operation)\n", humanize.Comma(int64(r.Stats.Rebalances)), r.MaxSeen)
	fmt.Fprintf(out, "height updates   %s\n", humanize.Comma(int64(r.Stats.HeightUpdates)))
	fmt.Fprintf(out, "rotations        %s (%s double)\n", humanize.Comma(int64(r.Stats.Rotations)), humanize.Comma(int64(r.Stats.DoubleRotations)))
	fmt.Fprintf(out, "digest           %016x\n", r.Digest)
	if r.Verified {
		fmt.Fprintln(out, "verified         every operation")
	}
}
