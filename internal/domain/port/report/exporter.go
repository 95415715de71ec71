package report

import (
	"io"
	"strings"

	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
)

// Format is a file format an exporter can produce
type Format string

// Export formats
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates an export format; blank means CSV
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", errs.ErrUnsupportedExport
	}
}

// Shape selects which derived view is exported
type Shape string

// Export shapes
const (
	ShapeTransactions Shape = "transactions"
	ShapeSalesSummary Shape = "sales-summary"
	ShapeBalanceSheet Shape = "balance-sheet"
)

// ParseShape validates an export shape; blank means transactions
func ParseShape(value string) (Shape, error) {
	switch s := Shape(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return ShapeTransactions, nil
	case ShapeTransactions, ShapeSalesSummary, ShapeBalanceSheet:
		return s, nil
	default:
		return "", errs.ErrUnsupportedExport
	}
}

// Table is a rectangular, already formatted export payload
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Exporter serializes a table into a downloadable file
type Exporter interface {
	// Export writes the table to w
	Export(w io.Writer, table Table) error
	// Format returns the produced file format
	Format() Format
	// ContentType returns the MIME type of the produced file
	ContentType() string
}
