package taxstat

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"

	"github.com/tfkr-ae/taxstat/domain"
)

// sqliteMIME is the media type mimetype reports for SQLite database files.
const sqliteMIME = "application/vnd.sqlite3"

// WithConfigDir configures the pipeline to use the specified configuration
// directory. It creates the directory if it doesn't exist and initializes
// the configuration file using Viper.
func WithConfigDir(appConfigDir string) func(*Pipeline) error {
	return func(pipeline *Pipeline) error {
		_, err := os.ReadDir(appConfigDir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Println("[*] creating config dir")
				err := os.MkdirAll(appConfigDir, 0700)
				if err != nil {
					return fmt.Errorf("creating config dir %s: %w", appConfigDir, err)
				}
			} else {
				return fmt.Errorf("checking if directory exists %s: %w", appConfigDir, err)
			}
		}
		// At this point, the directory exists or was created successfully
		pipeline.ConfigDir = appConfigDir

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appConfigDir)
		viper.SetDefault("source_type", SourceAuto)
		viper.SetDefault("source_path", "")
		viper.SetDefault("table_name", "")
		err = viper.ReadInConfig()
		if err != nil {
			// need to check if the error is config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				err = viper.SafeWriteConfig()
				if err != nil {
					return fmt.Errorf("writing config file : %w", err)
				}
			} else {
				return fmt.Errorf("reading config file : %w", err)
			}
		}
		if err := viper.Unmarshal(pipeline.Config); err != nil {
			return fmt.Errorf("unmarshalling config to struct : %w", err)
		}
		return nil
	}
}

// WithSource selects the table source for the given source type. The
// sqlite type requires a table name; the auto type sniffs the file to
// decide which loader applies.
func WithSource(sourceType, path, table string) func(*Pipeline) error {
	return func(pipeline *Pipeline) error {
		switch sourceType {
		case SourceCSV:
			pipeline.Source = NewCSVSource(path)
		case SourceSQLite:
			if table == "" {
				return fmt.Errorf("table name is required for sqlite source %s", path)
			}
			pipeline.Source = NewSQLiteSource(path, table)
		case SourceAuto, "":
			return WithAutoSource(path, table)(pipeline)
		default:
			return fmt.Errorf("unknown source type %q", sourceType)
		}
		return nil
	}
}

// WithAutoSource sniffs the file content to decide between the CSV and
// SQLite loaders. SQLite database files carry a magic header which
// mimetype identifies; anything else is treated as delimited text.
func WithAutoSource(path, table string) func(*Pipeline) error {
	return func(pipeline *Pipeline) error {
		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return &domain.SourceNotFoundError{Path: path}
			}
			return fmt.Errorf("detecting source type of %s : %w", path, err)
		}
		if mtype.Is(sqliteMIME) {
			if table == "" {
				return fmt.Errorf("table name is required for sqlite source %s", path)
			}
			pipeline.Source = NewSQLiteSource(path, table)
			return nil
		}
		pipeline.Source = NewCSVSource(path)
		return nil
	}
}

// WithStatistics appends statistics to compute, in output order.
func WithStatistics(stats ...domain.Statistic) func(*Pipeline) error {
	return func(pipeline *Pipeline) error {
		pipeline.Requested = append(pipeline.Requested, stats...)
		return nil
	}
}

// WithOutput redirects the rendered report away from stdout.
func WithOutput(w io.Writer) func(*Pipeline) error {
	return func(pipeline *Pipeline) error {
		if w == nil {
			return fmt.Errorf("output writer is nil")
		}
		pipeline.Out = w
		return nil
	}
}
