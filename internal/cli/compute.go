package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedepth/engine"
	"github.com/katalvlaran/treedepth/ioformat"
)

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func newComputeCommand(logger *charmlog.Logger) *cobra.Command {
	defaults := engine.DefaultConfig()
	var (
		timeLimitSeconds int
		subsetGap        int
		smallN           int
		separatorBatch   int
	)

	cmd := &cobra.Command{
		Use:   "compute INPUT_FILE OUTPUT_FILE",
		Short: "Compute the treedepth and an elimination tree for a graph",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: compute takes exactly 2 arguments (INPUT_FILE OUTPUT_FILE), got %d", ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := engine.Config{
				SmallN:         smallN,
				SubsetGap:      subsetGap,
				SeparatorBatch: separatorBatch,
			}
			if timeLimitSeconds > 0 {
				cfg.TimeLimit = time.Duration(timeLimitSeconds) * time.Second
			}
			return runCompute(cmd.Context(), logger, args[0], args[1], cfg)
		},
	}

	cmd.Flags().IntVar(&timeLimitSeconds, "time-limit", envInt("TREEDEPTH_TIME_LIMIT_SECONDS", 0),
		"wall-clock budget in seconds (0 = unlimited)")
	cmd.Flags().IntVar(&subsetGap, "subset-gap", envInt("TREEDEPTH_SUBSET_GAP", defaults.SubsetGap),
		"max gap for big-subset lower-bound inheritance (0 disables)")
	cmd.Flags().IntVar(&smallN, "small-n", envInt("TREEDEPTH_SMALL_N", defaults.SmallN),
		"vertex-count threshold at or below which the exact cache is consulted")
	cmd.Flags().IntVar(&separatorBatch, "separator-batch", envInt("TREEDEPTH_SEPARATOR_BATCH", defaults.SeparatorBatch),
		"batch size requested from the separator generator")

	return cmd
}

func runCompute(ctx context.Context, logger *charmlog.Logger, inputPath, outputPath string, cfg engine.Config) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cli: opening input: %w", err)
	}
	defer in.Close()

	g, err := ioformat.Parse(in)
	if err != nil {
		return err
	}
	logger.Infof("parsed graph: %d vertices, %d edges", g.N(), g.M())

	comps := ioformat.Components(g)
	logger.Infof("decomposed into %d connected component(s)", len(comps))

	parent := make(map[int]int, g.N())
	overallTD := 0
	for i, comp := range comps {
		e := engine.New(cfg)
		td, compParent, err := e.Solve(ctx, comp)
		if err != nil {
			return fmt.Errorf("cli: solving component %d: %w", i, err)
		}
		logger.Debugf("component %d: %d vertices, treedepth %d", i, comp.N(), td)
		if td > overallTD {
			overallTD = td
		}
		for v, p := range compParent {
			parent[v] = p
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cli: creating output: %w", err)
	}
	defer out.Close()

	if err := ioformat.WriteResult(out, g.N(), overallTD, parent); err != nil {
		return fmt.Errorf("cli: writing output: %w", err)
	}
	logger.Infof("treedepth %d written to %s", overallTD, outputPath)
	return nil
}
