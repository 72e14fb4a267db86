package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"
)

// writeJSON renders rows as a JSON object keyed by package name.
//
// An ordered map preserves listing order in the output, which a plain
// Go map would scramble. Duplicate names (the parser never deduplicates)
// keep the last occurrence, matching how pip itself would resolve a
// doubly-listed package.
//
// Plain listings map each name to its version string; outdated listings
// map each name to an object with the version, latest, type, and scope
// fields.
//
// Parameters:
//   - w: Destination writer
//   - rows: Rows in listing order
//
// Returns:
//   - error: Any marshal or write error
func writeJSON(w io.Writer, rows []Row) error {
	data := orderedmap.New()
	for _, row := range rows {
		if row.Latest == "" && row.Type == "" && row.Scope == "" {
			data.Set(row.Name, row.Version)
			continue
		}

		entry := orderedmap.New()
		entry.Set("version", row.Version)
		entry.Set("latest", row.Latest)
		if row.Type != "" {
			entry.Set("type", row.Type)
		}
		if row.Scope != "" {
			entry.Set("scope", row.Scope)
		}
		data.Set(row.Name, entry)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
