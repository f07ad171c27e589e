package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/b63/shepherd-sim/cache"
	"github.com/b63/shepherd-sim/internal/monitor"
	"github.com/b63/shepherd-sim/internal/replacement"
	"github.com/b63/shepherd-sim/internal/tagging"
	"github.com/b63/shepherd-sim/trace"
)

var (
	flagServePort int
	flagOpen      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Replay a trace against the Shepherd cache and serve a debug UI for it.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagTraceFile, "trace", "", "trace file to replay")
	serveCmd.Flags().StringVar(&flagBenchmarkConfig, "benchmark-config", "",
		"benchmark-pointer file naming the trace file (overrides --trace)")
	serveCmd.Flags().IntVar(&flagSets, "sets", 64, "number of cache sets")
	serveCmd.Flags().IntVar(&flagSCAssoc, "sc-assoc", 2, "shepherd cache ways per set")
	serveCmd.Flags().IntVar(&flagMCAssoc, "mc-assoc", 6, "main cache ways per set")
	serveCmd.Flags().IntVar(&flagBlockSize, "block-size", 64, "block size in bytes")
	serveCmd.Flags().IntVar(&flagServePort, "port", 0, "port for the debug HTTP server (0 picks a free port)")
	serveCmd.Flags().BoolVar(&flagOpen, "open", false, "open the debug UI in a browser once the server starts")
}

func runServe(_ *cobra.Command, _ []string) error {
	tracePath := flagTraceFile
	if flagBenchmarkConfig != "" {
		p, err := trace.LoadBenchmarkPointerWithEnv(flagBenchmarkConfig)
		if err != nil {
			return err
		}

		tracePath = p
	}

	assoc := flagSCAssoc + flagMCAssoc
	totalSize := flagBlockSize * assoc * flagSets

	tags := tagging.NewShepherdTags(tagging.Params{
		TotalSize: totalSize,
		BlockSize: flagBlockSize,
		Assoc:     assoc,
		SCAssoc:   flagSCAssoc,
		Fallback:  replacement.NewLRU(),
	})

	comp := cache.NewComp[*tagging.ShepherdBlock](tags, uint64(flagBlockSize), nil)

	if tracePath != "" {
		seq, err := trace.LoadSequence(tracePath)
		if err != nil {
			return err
		}

		for _, addr := range seq {
			comp.RecvTimingReq(cache.NewReadPacket(addr, 0))
		}
	}

	m := monitor.New(comp, tags, flagSets).WithPortNumber(flagServePort)

	addr, err := m.StartServer()
	if err != nil {
		return err
	}

	url := "http://" + addr
	fmt.Fprintf(os.Stderr, "serving debug UI at %s\n", url)

	if flagOpen {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("serve: could not open browser: %v", err)
		}
	}

	select {}
}
