// Package listing parses the tabular output of pip list and
// pip list --outdated into an ordered package sequence.
package listing

// Package represents one row of a pip listing.
//
// The name is kept exactly as pip reported it; no normalization is
// performed. Version columns are informational and never feed back into
// the synthesized upgrade command.
//
// Fields:
//   - Name: Package identifier, first column of the listing row
//   - Version: Installed version, second column when present
//   - Latest: Latest available version, third column of the outdated shape
//   - Type: Distribution type (wheel, sdist), fourth column of the outdated shape
type Package struct {
	Name    string
	Version string
	Latest  string
	Type    string
}

// Names extracts the ordered package identifiers from a parsed listing.
//
// Order is preserved and duplicates are kept: the synthesized command
// must mirror the listing exactly.
//
// Parameters:
//   - pkgs: Parsed listing rows
//
// Returns:
//   - []string: Package names in listing order
func Names(pkgs []Package) []string {
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.Name)
	}
	return names
}

// FromNames wraps a caller-supplied package sequence as listing rows.
//
// This is the skip-checks path: the names are trusted verbatim, with no
// validation or filtering. Malformed tokens surface later, at synthesis.
//
// Parameters:
//   - names: Pre-split package identifiers
//
// Returns:
//   - []Package: One row per name, in the given order
func FromNames(names []string) []Package {
	pkgs := make([]Package, 0, len(names))
	for _, name := range names {
		pkgs = append(pkgs, Package{Name: name})
	}
	return pkgs
}
