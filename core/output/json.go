package output

import (
	"encoding/json"
	"io"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// JSONFormatter emits the comparison document as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result as JSON with a trailing newline
func (f *JSONFormatter) Render(w io.Writer, result *types.ComparisonResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Internal("failed to encode comparison result", err)
	}
	return nil
}
