package domain

// Statistic identifies one of the supported aggregate computations.
type Statistic int

const (
	// StatAmountTaxesPerState is the total tax amount per state.
	StatAmountTaxesPerState Statistic = iota
	// StatAverageTaxesPerState is the mean tax amount per state.
	StatAverageTaxesPerState
	// StatAverageTaxRatePerState is the mean tax rate per state.
	StatAverageTaxRatePerState
	// StatAverageCountryTaxRate is the mean tax rate across all records.
	StatAverageCountryTaxRate
	// StatCountryTaxAmount is the total tax amount across all records.
	StatCountryTaxAmount
)

// Label returns the display heading for the statistic.
func (s Statistic) Label() string {
	switch s {
	case StatAmountTaxesPerState:
		return "Amount taxes per state"
	case StatAverageTaxesPerState:
		return "Average taxes per state"
	case StatAverageTaxRatePerState:
		return "Average tax rate per state"
	case StatAverageCountryTaxRate:
		return "Average country tax rate"
	case StatCountryTaxAmount:
		return "Country tax amount"
	}
	return "Unknown statistic"
}

// GroupsByState reports whether the statistic produces one value per
// state rather than a single country-wide scalar.
func (s Statistic) GroupsByState() bool {
	switch s {
	case StatAmountTaxesPerState, StatAverageTaxesPerState, StatAverageTaxRatePerState:
		return true
	}
	return false
}

// Result is one computed statistic. For per-state statistics PerState
// holds the value for each state and States fixes the rendering order;
// for country-wide statistics only Scalar is set. Results are built
// fresh per computation and never mutated afterwards.
type Result struct {
	Stat     Statistic
	States   []string           // sorted state names, nil for country-wide statistics
	PerState map[string]float64 // nil for country-wide statistics
	Scalar   float64
}
