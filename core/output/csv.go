package output

import (
	"encoding/csv"
	"io"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// csvHeader covers the core infrastructure categories plus the total.
// Extended categories are omitted to keep the export stable for
// spreadsheet consumers.
var csvHeader = []string{"Provider", "Compute", "Storage", "Database", "Networking", "Total"}

// CSVFormatter emits one row per provider with the core category costs
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format {
	return FormatCSV
}

// Render writes the comparison as CSV, providers ordered cheapest first
func (f *CSVFormatter) Render(w io.Writer, result *types.ComparisonResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return errors.Internal("failed to write csv header", err)
	}

	for _, p := range result.Providers {
		row := []string{
			p.Name,
			p.Category(types.CategoryCompute).StringFixed(2),
			p.Category(types.CategoryStorage).StringFixed(2),
			p.Category(types.CategoryDatabase).StringFixed(2),
			p.Category(types.CategoryNetworking).StringFixed(2),
			p.Total.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return errors.Internal("failed to write csv row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Internal("failed to flush csv output", err)
	}
	return nil
}
