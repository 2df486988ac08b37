package taxstat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tfkr-ae/taxstat/domain"
)

// reportLines splits rendered output into lines with tabwriter padding
// collapsed, so assertions don't depend on column widths.
func reportLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

func TestRender(t *testing.T) {
	t.Run("should render a per-state result as a labelled table", func(t *testing.T) {
		var buf bytes.Buffer
		results := Compute(sampleTable(), []domain.Statistic{domain.StatAmountTaxesPerState})

		if err := Render(&buf, results); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		lines := reportLines(t, &buf)
		want := []string{
			"Amount taxes per state:",
			"California 120000",
			"Florida 116000",
			"New York 108000",
			"Texas 115000",
			"Wyoming 32000",
		}
		for i, line := range want {
			if lines[i] != line {
				t.Fatalf("\nwanted:\n%q\ngot:\n%q", line, lines[i])
			}
		}
	})

	t.Run("should render a country-wide result as a labelled scalar line", func(t *testing.T) {
		var buf bytes.Buffer
		results := Compute(sampleTable(), []domain.Statistic{domain.StatCountryTaxAmount})

		if err := Render(&buf, results); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got := strings.TrimSpace(buf.String())
		want := "Country tax amount: 491000"
		if got != want {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want, got)
		}
	})

	t.Run("should render results in the requested order", func(t *testing.T) {
		var buf bytes.Buffer
		results := Compute(sampleTable(), []domain.Statistic{
			domain.StatCountryTaxAmount,
			domain.StatAverageCountryTaxRate,
		})

		if err := Render(&buf, results); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		out := buf.String()
		first := strings.Index(out, "Country tax amount")
		second := strings.Index(out, "Average country tax rate")
		if first < 0 || second < 0 || first > second {
			t.Fatalf("\nwanted:\namount before rate\ngot:\n%s", out)
		}
	})

	t.Run("should render fractional values as floating point", func(t *testing.T) {
		var buf bytes.Buffer
		table := domain.Table{
			{State: "Wyoming", County: "Teton", TaxRate: 6.05, TaxAmount: 100.25},
		}
		results := Compute(table, []domain.Statistic{domain.StatAverageCountryTaxRate})

		if err := Render(&buf, results); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got := strings.TrimSpace(buf.String())
		want := "Average country tax rate: 6.05"
		if got != want {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", want, got)
		}
	})

	t.Run("should print nothing for no results", func(t *testing.T) {
		var buf bytes.Buffer

		if err := Render(&buf, nil); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if buf.Len() != 0 {
			t.Fatalf("\nwanted:\nempty output\ngot:\n%q", buf.String())
		}
	})
}
