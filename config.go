package taxstat

// Source type values accepted in the config file and on the command line.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
	SourceAuto   = "auto"
)

// Config holds the on-disk configuration. The file supplies defaults for
// the source; command line flags override individual fields.
type Config struct {
	SourceType string `mapstructure:"source_type"` // csv, sqlite or auto
	SourcePath string `mapstructure:"source_path"` // default source location
	TableName  string `mapstructure:"table_name"`  // default table for sqlite sources
}
