package taxstat

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/tfkr-ae/taxstat/domain"
)

// Render writes each result as a labelled block in the order given:
// per-state results as a two-column state-indexed table, country-wide
// results as a single labelled line. Blocks are separated by a blank line.
func Render(w io.Writer, results []domain.Result) error {
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("writing separator : %w", err)
			}
		}
		if result.Stat.GroupsByState() {
			if err := renderPerState(w, result); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", result.Stat.Label(), formatValue(result.Scalar)); err != nil {
			return fmt.Errorf("writing %s : %w", result.Stat.Label(), err)
		}
	}
	return nil
}

func renderPerState(w io.Writer, result domain.Result) error {
	if _, err := fmt.Fprintf(w, "%s:\n", result.Stat.Label()); err != nil {
		return fmt.Errorf("writing %s : %w", result.Stat.Label(), err)
	}

	tab := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, state := range result.States {
		fmt.Fprintf(tab, "%s\t%s\n", state, formatValue(result.PerState[state]))
	}
	if err := tab.Flush(); err != nil {
		return fmt.Errorf("flushing %s table : %w", result.Stat.Label(), err)
	}
	return nil
}

// formatValue prints the shortest decimal representation of the value.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
