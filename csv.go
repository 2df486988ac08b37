package taxstat

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/tfkr-ae/taxstat/domain"
)

var _ domain.TableSource = (*CSVSource)(nil)

// CSVSource loads tax records from a delimited text file with a header row.
// Column order in the file is irrelevant; headers are matched onto the
// canonical set case-insensitively.
type CSVSource struct {
	Path string
}

// NewCSVSource returns a source reading the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Load implements domain.TableSource. The file handle is closed before
// the table is returned.
func (src *CSVSource) Load() (domain.Table, error) {
	file, err := os.Open(src.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.SourceNotFoundError{Path: src.Path}
		}
		return nil, fmt.Errorf("opening csv source %s : %w", src.Path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err == io.EOF {
		// a file without a header row cannot match any column
		return nil, &domain.SchemaError{Missing: domain.CanonicalColumns()}
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header of %s : %w", src.Path, err)
	}

	var rows [][]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row from %s : %w", src.Path, err)
		}
		rows = append(rows, fields)
	}

	return buildTable(header, rows)
}
