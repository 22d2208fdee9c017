package levenshtein

import (
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Render writes m as a table: a header with the labels of s2, then one line
// per matrix row prefixed by the label of the matching s1 element (row 0,
// the empty prefix, has no label). label maps an element to its display
// text, e.g. a vocabulary id to its token.
//
// Render only observes m; it is meant for diagnosing alignments.
//
//	    x b
//	  0 1 2
//	a 1 1 2
//	b 2 2 1
func Render[T any](w io.Writer, m *Matrix, s1, s2 []T, label func(T) string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	cells := make([]string, 0, m.c+1)

	// header: row-label column, empty-prefix column, then s2 labels
	cells = append(cells, "", "")
	for j := 1; j < m.c && j-1 < len(s2); j++ {
		cells = append(cells, label(s2[j-1]))
	}
	if err := writeRow(tw, cells); err != nil {
		return err
	}

	for i := 0; i < m.r; i++ {
		cells = cells[:0]
		if i > 0 && i-1 < len(s1) {
			cells = append(cells, label(s1[i-1]))
		} else {
			cells = append(cells, "")
		}
		for j := 0; j < m.c; j++ {
			cells = append(cells, strconv.Itoa(m.at(i, j)))
		}
		if err := writeRow(tw, cells); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// writeRow emits tab-separated cells terminated by a newline.
func writeRow(w io.Writer, cells []string) error {
	_, err := io.WriteString(w, strings.Join(cells, "\t")+"\n")

	return err
}
