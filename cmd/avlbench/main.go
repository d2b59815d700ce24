// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Avlbench drives random insert and delete workloads against an
// avltree.Tree and reports how much rebalancing they caused.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "avlbench",
		Short:        "Benchmarks and checks the avltree package.",
		SilenceUsage: true,
	}
	root.AddCommand(runCmd())
	return root
}

func runCmd() *cobra.Command {
	var cfg config
	var logFormat, logBackend string
	var debug bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs a random workload against a tree.",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&cfg.Keys, "keys", 10_000, "Number of keys to insert before the mixed phase.")
	cmd.Flags().IntVar(&cfg.Ops, "ops", 100_000, "Number of mixed insert/delete operations.")
	cmd.Flags().Float64Var(&cfg.DeleteRatio, "delete-ratio", 0.5, "Probability that a mixed operation is a delete.")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 1, "Seed for the workload generator.")
	cmd.Flags().BoolVar(&cfg.Verify, "verify", false, "Check the tree invariants after every operation.")
	cmd.Flags().BoolVar(&cfg.Metrics, "metrics", false, "Print the tree metrics in prometheus text format.")
	cmd.Flags().BoolVar(&cfg.Trace, "trace", false, "Log every rotation at debug level.")
	cmd.Flags().IntVar(&cfg.Progress, "progress", 10_000, "Log progress every this many operations; 0 disables.")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text or json.")
	cmd.Flags().StringVar(&logBackend, "logger", "slog", "Logging library: slog, zap, logrus or phuslu.")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Keys < 0 || cfg.Ops < 0 {
			return fmt.Errorf("keys and ops must not be negative")
		}
		if cfg.DeleteRatio < 0 || cfg.DeleteRatio > 1 {
			return fmt.Errorf("delete-ratio must be in [0, 1], got %v", cfg.DeleteRatio)
		}
		logger, err := newLogger(logBackend, logFormat, debug || cfg.Trace, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		rep, err := run(cfg, logger, cmd.OutOrStdout())
		if err != nil {
			logger.Error("run failed", "error", err)
			return err
		}
		rep.print(cmd.OutOrStdout())
		return nil
	}
	return cmd
}
