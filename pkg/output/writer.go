// Package output renders parsed pip listings as tables, JSON, or YAML
// for the list command.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/pipup/pkg/listing"
	"github.com/ajxudir/pipup/pkg/versions"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Row is one rendered listing entry.
//
// Fields:
//   - Name: Package identifier
//   - Version: Installed version
//   - Latest: Latest available version (outdated listings only)
//   - Type: Distribution type (outdated listings only)
//   - Scope: Update scope classification (outdated listings only)
type Row struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Latest  string `json:"latest,omitempty" yaml:"latest,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Scope   string `json:"scope,omitempty" yaml:"scope,omitempty"`
}

// BuildRows converts parsed packages into renderable rows.
//
// Outdated listings gain a Scope column classifying the jump from the
// installed to the latest version; the classification is display-only.
//
// Parameters:
//   - pkgs: Parsed listing rows, in listing order
//   - outdated: Whether the listing used the outdated shape
//
// Returns:
//   - []Row: Rows in listing order
func BuildRows(pkgs []listing.Package, outdated bool) []Row {
	rows := make([]Row, 0, len(pkgs))
	for _, p := range pkgs {
		row := Row{Name: p.Name, Version: p.Version}
		if outdated {
			row.Latest = p.Latest
			row.Type = p.Type
			row.Scope = versions.Scope(p.Version, p.Latest)
		}
		rows = append(rows, row)
	}
	return rows
}

// Write renders rows in the requested format.
//
// Parameters:
//   - w: Destination writer
//   - rows: Rows in listing order
//   - outdated: Whether to include the outdated columns
//   - format: FormatTable, FormatJSON, or FormatYAML (blank means table)
//
// Returns:
//   - error: When the format is unknown or rendering fails
func Write(w io.Writer, rows []Row, outdated bool, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		return writeTable(w, rows, outdated)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", format)
	}
}
