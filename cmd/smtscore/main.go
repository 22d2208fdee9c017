// Command smtscore scores OMR transcriptions against ground truth.
//
// Usage:
//
//	smtscore align --ref ref.krn --hyp hyp.krn [--vocab vocab.yaml] [--matrix] [--codes]
//	smtscore score --ref-dir gt/ --hyp-dir pred/ [--workers 8] [--verbose]
//	smtscore serve [--addr 127.0.0.1:8080]
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "smtscore [command]",
		Short:        "Edit-distance scoring for SMT++ transcriptions",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAlignCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// envOrDefault returns $key, or def when unset.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
