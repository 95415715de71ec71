package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
)

// CSVExporter writes tables as comma separated text with a header row
type CSVExporter struct{}

var _ report.Exporter = (*CSVExporter)(nil)

// NewCSVExporter creates a new CSVExporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Format implements report.Exporter
func (e *CSVExporter) Format() report.Format {
	return report.FormatCSV
}

// ContentType implements report.Exporter
func (e *CSVExporter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Export implements report.Exporter. Short rows are padded to the header width.
func (e *CSVExporter) Export(w io.Writer, table report.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range table.Rows {
		if err := writer.Write(padRow(row, len(table.Headers))); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
