package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/DarkShadow4/SMT-plusplus/internal/transcript"
	"github.com/DarkShadow4/SMT-plusplus/levenshtein"
	"github.com/DarkShadow4/SMT-plusplus/vocab"
)

type alignFlags struct {
	ref, hyp  string
	vocabPath string
	matrix    bool
	codes     bool
	columns   bool
}

func newAlignCmd() *cobra.Command {
	var f alignFlags

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align one hypothesis against its reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := transcript.ReadFile(f.ref)
			if err != nil {
				return fmt.Errorf("reading reference: %v", err)
			}
			hyp, err := transcript.ReadFile(f.hyp)
			if err != nil {
				return fmt.Errorf("reading hypothesis: %v", err)
			}

			out := cmd.OutOrStdout()
			if f.vocabPath == "" {
				return report(out, ref, hyp, func(tok string) string { return tok }, f)
			}

			v, err := vocab.Load(f.vocabPath)
			if err != nil {
				return fmt.Errorf("loading vocabulary: %v", err)
			}
			refIDs, err := v.Encode(ref)
			if err != nil {
				return fmt.Errorf("encoding reference: %v", err)
			}
			hypIDs, err := v.Encode(hyp)
			if err != nil {
				return fmt.Errorf("encoding hypothesis: %v", err)
			}
			return report(out, refIDs, hypIDs, v.Label, f)
		},
	}

	cmd.Flags().StringVar(&f.ref, "ref", "", "reference transcription file")
	cmd.Flags().StringVar(&f.hyp, "hyp", "", "hypothesis transcription file")
	cmd.Flags().StringVar(&f.vocabPath, "vocab", "", "YAML vocabulary; tokens are compared by id")
	cmd.Flags().BoolVar(&f.matrix, "matrix", false, "print the cost matrix")
	cmd.Flags().BoolVar(&f.codes, "codes", false, "print integer operation codes")
	cmd.Flags().BoolVar(&f.columns, "columns", false, "print the aligned token pairs")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("hyp")

	return cmd
}

// report aligns hyp against ref and prints what f asks for.
func report[T comparable](w io.Writer, ref, hyp []T, label func(T) string, f alignFlags) error {
	m := levenshtein.NewMatrix(ref, hyp)
	ops := m.Backtrace()

	if f.matrix {
		if err := levenshtein.Render(w, m, ref, hyp, label); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "distance: %d\n", m.Distance())
	fmt.Fprintf(w, "operations: %s\n", levenshtein.FormatOps(ops))
	if f.codes {
		fmt.Fprintf(w, "codes: %v\n", levenshtein.Codes(ops))
	}

	if f.columns {
		edits, err := levenshtein.Align(ref, hyp, ops)
		if err != nil {
			return err
		}
		for _, e := range edits {
			x, y := "-", "-"
			if e.Op != levenshtein.Insertion {
				x = label(e.X)
			}
			if e.Op != levenshtein.Deletion {
				y = label(e.Y)
			}
			fmt.Fprintf(w, "%c %s\t%s\n", e.Op.Symbol(), x, y)
		}
	}

	return nil
}
