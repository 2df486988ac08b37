// Package taxstat computes aggregate statistics over tabular tax records
// sourced from a CSV file or a SQLite table. It is designed to be decoupled
// from the CLI and provides the building blocks for tax reporting tools.
//
// The core functionality includes:
//   - CSV and SQLite table sources unified behind one tabular shape
//   - Case-insensitive matching of source columns onto the canonical set
//     (state, county, tax_rate, tax_amount)
//   - Per-state and country-wide sum and average statistics
//   - Deterministic text rendering of the requested statistics
package taxstat

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tfkr-ae/taxstat/domain"
)

// Pipeline orchestrates a single load → aggregate → report run. It holds
// no state across runs; every Run loads the source afresh, so running
// twice on an unchanged source produces identical output.
type Pipeline struct {
	ConfigDir string             // Directory holding the config file (defaults to the taxstat folder under the user configuration directory)
	Config    *Config            // Defaults loaded through viper
	Source    domain.TableSource // Where records are loaded from
	Requested []domain.Statistic // Statistics to compute, in output order
	Out       io.Writer          // Report destination
}

// New builds a pipeline with stdout output and applies the given options.
func New(options ...func(*Pipeline) error) (*Pipeline, error) {
	pipeline := &Pipeline{
		Config: &Config{SourceType: SourceAuto},
		Out:    os.Stdout,
	}
	if err := pipeline.WithOptions(options...); err != nil {
		return nil, err
	}
	return pipeline, nil
}

// WithOptions applies a series of configuration functions to the pipeline.
// Each option function can modify the pipeline and return an error if it fails.
func (pipeline *Pipeline) WithOptions(options ...func(*Pipeline) error) error {
	for _, option := range options {
		err := option(pipeline)
		if err != nil {
			return fmt.Errorf("applying option on taxstat : %w", err)
		}
	}
	return nil
}

// Run executes the pipeline. The source handle is opened and released
// inside Load, before any aggregation happens. When no statistics were
// requested nothing is loaded and nothing is printed.
func (pipeline *Pipeline) Run() error {
	if len(pipeline.Requested) == 0 {
		return nil
	}
	if pipeline.Source == nil {
		return errors.New("no table source configured")
	}

	table, err := pipeline.Source.Load()
	if err != nil {
		return fmt.Errorf("loading source : %w", err)
	}

	results := Compute(table, pipeline.Requested)
	if err := Render(pipeline.Out, results); err != nil {
		return fmt.Errorf("rendering report : %w", err)
	}
	return nil
}
