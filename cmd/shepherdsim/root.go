// Command shepherdsim replays a memory-access trace through the OPT or
// Shepherd replacement policy outside of any cycle-level simulator, and can
// expose a running cache over a debug HTTP backend.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shepherdsim",
	Short: "Replay a trace against the OPT/Shepherd cache core.",
	Long: `shepherdsim drives a memory-access trace through a non-coherent,
timing-only cache built over either the OPT oracle replacer or the Shepherd
counter-based tag store, and reports the resulting statistics.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
