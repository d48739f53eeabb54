// Package export converts a chart to and from the formats users take out of
// the editor: JSON configuration files, SVG documents, level tables and
// descriptive text.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/designspace/designspace/internal/chart"
)

// ErrInvalidImport is returned when an imported file is not a chart configuration.
var ErrInvalidImport = errors.New("invalid chart configuration")

// ImportJSON reads a configuration file. Fields absent from the file fall back
// to defaults. On failure no state is returned.
func ImportJSON(r io.Reader) (*chart.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	s, err := chart.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	return s, nil
}

// ExportJSON writes s as an indented configuration file.
func ExportJSON(w io.Writer, s *chart.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
