package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b63/shepherd-sim/internal/persist"
	"github.com/b63/shepherd-sim/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a trace file and print the resulting statistics.",
	RunE:  runRun,
}

var (
	flagTraceFile       string
	flagBenchmarkConfig string
	flagPolicy          string
	flagSets            int
	flagSCAssoc         int
	flagMCAssoc         int
	flagBlockSize       int
	flagRecordDB        string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&flagTraceFile, "trace", "", "trace file to replay")
	runCmd.Flags().StringVar(&flagBenchmarkConfig, "benchmark-config", "",
		"benchmark-pointer file naming the trace file (overrides --trace)")
	runCmd.Flags().StringVar(&flagPolicy, "policy", "shepherd", "replacement policy: opt or shepherd")
	runCmd.Flags().IntVar(&flagSets, "sets", 64, "number of cache sets")
	runCmd.Flags().IntVar(&flagSCAssoc, "sc-assoc", 2, "shepherd cache ways per set")
	runCmd.Flags().IntVar(&flagMCAssoc, "mc-assoc", 6, "main cache ways per set")
	runCmd.Flags().IntVar(&flagBlockSize, "block-size", 64, "block size in bytes")
	runCmd.Flags().StringVar(&flagRecordDB, "record-db", "",
		"if set, append this run's statistics to the named SQLite database")
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg := runner.Config{
		TraceFile:       flagTraceFile,
		BenchmarkConfig: flagBenchmarkConfig,
		Policy:          flagPolicy,
		Sets:            flagSets,
		SCAssoc:         flagSCAssoc,
		MCAssoc:         flagMCAssoc,
		BlockSize:       flagBlockSize,
	}

	stats, err := runner.Run(cfg)
	if err != nil {
		return err
	}

	printStats(stats)

	if flagRecordDB != "" {
		recordStats(flagRecordDB, cfg, stats)
	}

	return nil
}

func printStats(stats runner.Stats) {
	fmt.Printf("policy:      %s\n", stats.Policy)
	fmt.Printf("accesses:    %d\n", stats.Accesses)
	fmt.Printf("hits:        %d\n", stats.Hits)
	fmt.Printf("misses:      %d\n", stats.Misses)
	fmt.Printf("writebacks:  %d\n", stats.Writebacks)

	if stats.Policy == "shepherd" {
		fmt.Printf("tag accesses:       %d\n", stats.TagAccesses)
		fmt.Printf("data accesses:      %d\n", stats.DataAccesses)
		fmt.Printf("tags in use:        %d\n", stats.TagsInUse)
		fmt.Printf("fallback repl refs: %d\n", stats.FallbackReplRefs)
		fmt.Printf("opt repl refs:      %d\n", stats.OptReplRefs)
		fmt.Printf("empty repl refs:    %d\n", stats.EmptyReplRefs)
		fmt.Printf("victim repl refs:   %d\n", stats.VictimReplRefs)
	} else {
		fmt.Printf("speculative victims:    %d\n", stats.SpeculativeVictims)
		fmt.Printf("empty victims:          %d\n", stats.EmptyVictims)
		fmt.Printf("LRU victims:            %d\n", stats.LRUVictims)
		fmt.Printf("OPT victims:            %d\n", stats.OPTVictims)
		fmt.Printf("not-used-again victims: %d\n", stats.NotUsedAgainVictims)
	}
}

func recordStats(dbPath string, cfg runner.Config, stats runner.Stats) {
	rec := persist.NewSQLiteRunRecorder(dbPath)
	rec.Init()
	defer rec.Close()

	rec.Record(persist.RunRecord{
		Policy:     stats.Policy,
		Sets:       cfg.Sets,
		Assoc:      cfg.SCAssoc + cfg.MCAssoc,
		SCAssoc:    cfg.SCAssoc,
		BlockSize:  cfg.BlockSize,
		Accesses:   stats.Accesses,
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Writebacks: stats.Writebacks,
	})
}
