package taxstat

import (
	"sort"

	"github.com/tfkr-ae/taxstat/domain"
)

// Compute evaluates the requested statistics against the table, in the
// order requested, and nothing else. An empty table yields empty per-state
// mappings and zero-valued country-wide results.
func Compute(table domain.Table, stats []domain.Statistic) []domain.Result {
	results := make([]domain.Result, 0, len(stats))
	for _, stat := range stats {
		results = append(results, computeOne(table, stat))
	}
	return results
}

func computeOne(table domain.Table, stat domain.Statistic) domain.Result {
	switch stat {
	case domain.StatAmountTaxesPerState:
		return perStateResult(stat, sumByState(table, amountOf))
	case domain.StatAverageTaxesPerState:
		return perStateResult(stat, meanByState(table, amountOf))
	case domain.StatAverageTaxRatePerState:
		return perStateResult(stat, meanByState(table, rateOf))
	case domain.StatAverageCountryTaxRate:
		return domain.Result{Stat: stat, Scalar: mean(table, rateOf)}
	case domain.StatCountryTaxAmount:
		return domain.Result{Stat: stat, Scalar: sum(table, amountOf)}
	}
	return domain.Result{Stat: stat}
}

func amountOf(record domain.Record) float64 { return record.TaxAmount }
func rateOf(record domain.Record) float64   { return record.TaxRate }

func sum(table domain.Table, measure func(domain.Record) float64) float64 {
	var total float64
	for _, record := range table {
		total += measure(record)
	}
	return total
}

// mean is defined as zero for an empty table.
func mean(table domain.Table, measure func(domain.Record) float64) float64 {
	if len(table) == 0 {
		return 0
	}
	return sum(table, measure) / float64(len(table))
}

// sumByState groups records by the exact state value and sums the measure
// within each group. Grouping never case-folds data values, only column
// names are normalized at load time.
func sumByState(table domain.Table, measure func(domain.Record) float64) map[string]float64 {
	totals := make(map[string]float64)
	for _, record := range table {
		totals[record.State] += measure(record)
	}
	return totals
}

// meanByState groups records by state and computes the arithmetic mean of
// the measure within each group.
func meanByState(table domain.Table, measure func(domain.Record) float64) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, record := range table {
		totals[record.State] += measure(record)
		counts[record.State]++
	}

	means := make(map[string]float64, len(totals))
	for state, total := range totals {
		means[state] = total / float64(counts[state])
	}
	return means
}

// perStateResult freezes the state ordering so rendering is deterministic.
func perStateResult(stat domain.Statistic, values map[string]float64) domain.Result {
	states := make([]string, 0, len(values))
	for state := range values {
		states = append(states, state)
	}
	sort.Strings(states)
	return domain.Result{Stat: stat, States: states, PerState: values}
}
