package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML renders rows as a YAML sequence.
//
// A sequence (rather than a mapping) keeps listing order and preserves
// duplicate names exactly as parsed.
//
// Parameters:
//   - w: Destination writer
//   - rows: Rows in listing order
//
// Returns:
//   - error: Any marshal or write error
func writeYAML(w io.Writer, rows []Row) error {
	encoded, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode YAML output: %w", err)
	}
	_, err = fmt.Fprint(w, string(encoded))
	return err
}
