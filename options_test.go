package taxstat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestWithConfigDir(t *testing.T) {
	t.Run("should create the config dir and a default config file", func(t *testing.T) {
		viper.Reset()
		configDir := filepath.Join(t.TempDir(), "taxstat")

		pipeline, err := New(WithConfigDir(configDir))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if pipeline.ConfigDir != configDir {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", configDir, pipeline.ConfigDir)
		}
		if _, err := os.Stat(filepath.Join(configDir, "config.yaml")); err != nil {
			t.Fatalf("stat config file: %v", err)
		}
		if pipeline.Config.SourceType != SourceAuto {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", SourceAuto, pipeline.Config.SourceType)
		}
	})

	t.Run("should load source defaults from an existing config file", func(t *testing.T) {
		viper.Reset()
		configDir := t.TempDir()

		contents := "source_type: sqlite\nsource_path: /data/taxes.db\ntable_name: tax_records\n"
		if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(contents), 0600); err != nil {
			t.Fatalf("writing config file: %v", err)
		}

		pipeline, err := New(WithConfigDir(configDir))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if pipeline.Config.SourceType != SourceSQLite {
			t.Fatalf("\nwanted:\nsqlite\ngot:\n%s", pipeline.Config.SourceType)
		}
		if pipeline.Config.SourcePath != "/data/taxes.db" {
			t.Fatalf("\nwanted:\n/data/taxes.db\ngot:\n%s", pipeline.Config.SourcePath)
		}
		if pipeline.Config.TableName != "tax_records" {
			t.Fatalf("\nwanted:\ntax_records\ngot:\n%s", pipeline.Config.TableName)
		}
	})
}

func TestWithSource(t *testing.T) {
	t.Run("should reject an unknown source type", func(t *testing.T) {
		_, err := New(WithSource("parquet", "records.parquet", ""))
		if err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})

	t.Run("should require a table name for sqlite sources", func(t *testing.T) {
		_, err := New(WithSource(SourceSQLite, "taxes.db", ""))
		if err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})

	t.Run("should select the csv loader for the csv type", func(t *testing.T) {
		pipeline, err := New(WithSource(SourceCSV, "records.csv", ""))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if _, ok := pipeline.Source.(*CSVSource); !ok {
			t.Fatalf("\nwanted:\n*CSVSource\ngot:\n%T", pipeline.Source)
		}
	})
}
