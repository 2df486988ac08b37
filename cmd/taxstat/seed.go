package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tfkr-ae/taxstat/db"
)

// seedCmd creates a SQLite database pre-populated with the sample
// tax_records dataset by applying the embedded migrations.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a sample SQLite tax database",
	Long: `Seed applies the embedded migrations to the database at --source_path,
creating the tax_records table with a small sample dataset to query against.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("source_path")
		if path == "" {
			return errors.New("--source_path is required")
		}

		log.Printf("[*] seeding sample database at %s", path)
		dbConn, err := db.Init(path)
		if err != nil {
			return fmt.Errorf("seeding database %s : %w", path, err)
		}
		if err := dbConn.Close(); err != nil {
			return fmt.Errorf("closing database %s : %w", path, err)
		}
		log.Println("[*] done, query it with --table_name tax_records")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().String("source_path", "", "Path of the SQLite database to create")
}
