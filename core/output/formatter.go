// Package output renders comparison results for humans and machines.
package output

import (
	"io"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatTable is a human-readable table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatCSV is the flat per-provider CSV export
	FormatCSV Format = "csv"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the comparison result
	Render(w io.Writer, result *types.ComparisonResult) error
}

// New returns the formatter for a format name
func New(format string) (Formatter, error) {
	switch Format(format) {
	case FormatTable:
		return &TableFormatter{ShowBreakdown: true, ShowRecommendations: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	default:
		return nil, errors.NotSupported("output format " + format)
	}
}
