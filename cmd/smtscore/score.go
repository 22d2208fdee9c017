package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/DarkShadow4/SMT-plusplus/internal/transcript"
	"github.com/DarkShadow4/SMT-plusplus/levenshtein"
	"github.com/DarkShadow4/SMT-plusplus/score"
)

func newScoreCmd() *cobra.Command {
	var (
		refDir, hypDir string
		workers        int
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a directory of hypotheses against references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := transcript.PairDirs(refDir, hypDir)
			if err != nil {
				return fmt.Errorf("loading transcriptions: %v", err)
			}
			log.Printf("scoring %d transcriptions with %d workers", len(pairs), workers)

			results, sum, err := score.Corpus(cmd.Context(), pairs, workers)
			if err != nil {
				return fmt.Errorf("scoring: %v", err)
			}

			out := cmd.OutOrStdout()
			if verbose {
				for _, r := range results {
					fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", r.ID, r.Distance, r.RefLen, levenshtein.FormatOps(r.Ops))
				}
			}

			fmt.Fprintf(out, "samples: %d\n", sum.Samples)
			fmt.Fprintf(out, "distance: %d\n", sum.Distance)
			fmt.Fprintf(out, "reference tokens: %d\n", sum.RefTokens)
			fmt.Fprintf(out, "substitutions: %d insertions: %d deletions: %d\n",
				sum.Counts.Substitutions, sum.Counts.Insertions, sum.Counts.Deletions)

			er, err := sum.ErrorRate()
			switch {
			case errors.Is(err, score.ErrEmptyReference):
				fmt.Fprintln(out, "error rate: n/a")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "error rate: %.2f%%\n", er)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&refDir, "ref-dir", "", "directory of reference transcriptions")
	cmd.Flags().StringVar(&hypDir, "hyp-dir", "", "directory of hypotheses, same file names")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of scoring goroutines")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print one line per transcription")
	_ = cmd.MarkFlagRequired("ref-dir")
	_ = cmd.MarkFlagRequired("hyp-dir")

	return cmd
}
