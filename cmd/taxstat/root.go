package main

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/tfkr-ae/taxstat"
	"github.com/tfkr-ae/taxstat/domain"
)

// statFlags lists the statistic flags in the fixed output order.
var statFlags = []struct {
	Name  string
	Usage string
	Stat  domain.Statistic
}{
	{"get_amount_taxes_per_state", "Report the total tax amount per state", domain.StatAmountTaxesPerState},
	{"get_average_taxes_per_state", "Report the average tax amount per state", domain.StatAverageTaxesPerState},
	{"get_average_tax_rate_per_state", "Report the average tax rate per state", domain.StatAverageTaxRatePerState},
	{"get_average_country_tax_rate", "Report the country-wide average tax rate", domain.StatAverageCountryTaxRate},
	{"get_country_tax_amount", "Report the country-wide total tax amount", domain.StatCountryTaxAmount},
}

var rootCmd = &cobra.Command{
	Use:   "taxstat",
	Short: "Taxstat computes aggregate tax statistics from CSV or SQLite sources",
	Long: `Taxstat reads tax records from a CSV file or a SQLite table and reports
per-state and country-wide sums and averages. Defaults for the source come
from the config file; flags override them.`,
	SilenceUsage: true,
	RunE:         runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	configDir, _ := cmd.Flags().GetString("config_dir")

	pipeline, err := taxstat.New(taxstat.WithConfigDir(configDir))
	if err != nil {
		return fmt.Errorf("initializing pipeline : %w", err)
	}

	sourceType := pipeline.Config.SourceType
	if cmd.Flags().Changed("source_type") {
		sourceType, _ = cmd.Flags().GetString("source_type")
	}
	sourcePath := pipeline.Config.SourcePath
	if cmd.Flags().Changed("source_path") {
		sourcePath, _ = cmd.Flags().GetString("source_path")
	}
	tableName := pipeline.Config.TableName
	if cmd.Flags().Changed("table_name") {
		tableName, _ = cmd.Flags().GetString("table_name")
	}
	if sourcePath == "" {
		return errors.New("--source_path is required (flag or config file)")
	}

	var stats []domain.Statistic
	for _, flag := range statFlags {
		if requested, _ := cmd.Flags().GetBool(flag.Name); requested {
			stats = append(stats, flag.Stat)
		}
	}

	err = pipeline.WithOptions(
		taxstat.WithSource(sourceType, sourcePath, tableName),
		taxstat.WithStatistics(stats...),
	)
	if err != nil {
		return err
	}

	return pipeline.Run()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config_dir", defaultConfigDir(), "Directory holding the taxstat config file")

	rootCmd.Flags().String("source_path", "", "Path to the CSV file or SQLite database")
	rootCmd.Flags().String("table_name", "", "Table to read from a SQLite source")
	rootCmd.Flags().String("source_type", "", "Source type: csv, sqlite or auto (default from config)")

	for _, flag := range statFlags {
		rootCmd.Flags().Bool(flag.Name, false, flag.Usage)
	}
}

// defaultConfigDir resolves to the taxstat folder under the user
// configuration directory, falling back to the working directory.
func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return path.Join(dir, "taxstat")
}
