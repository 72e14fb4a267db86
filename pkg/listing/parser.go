package listing

import (
	"strings"

	"github.com/ajxudir/pipup/pkg/errors"
)

// utf8BOM is the UTF-8 byte order mark some tools prepend to output.
const utf8BOM = "\xEF\xBB\xBF"

// Parse converts raw pip listing text into an ordered package sequence.
//
// It performs the following operations:
//   - Strips a UTF-8 BOM and normalizes CRLF line endings
//   - Discards the two-line header structurally: the first line is
//     dropped regardless of wording, the second line must be a dashed
//     separator row
//   - Extracts one package per remaining non-blank line, taking the
//     first whitespace-delimited token as the name and the following
//     columns as version information
//
// Completely blank input yields an empty sequence (pip printed nothing,
// there is nothing to parse). Input with content but fewer than two
// lines, or without a dashed separator row, fails with a malformed
// listing error rather than returning a partial sequence.
//
// Parameters:
//   - raw: Raw text from pip list or pip list --outdated
//   - outdated: Whether the four-column outdated shape is expected
//
// Returns:
//   - []Package: Parsed rows in source order, duplicates preserved
//   - error: MalformedListingError when header discarding fails, nil on success
func Parse(raw string, outdated bool) ([]Package, error) {
	raw = strings.TrimPrefix(raw, utf8BOM)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}
	if len(lines) < 2 {
		return nil, errors.NewMalformedListingError("expected a two-line header, got fewer than two lines", lines[0])
	}
	if !isSeparatorRow(lines[1]) {
		return nil, errors.NewMalformedListingError("separator row of dashes expected on line 2", lines[1])
	}

	pkgs := make([]Package, 0, len(lines)-2)
	for _, line := range lines[2:] {
		pkgs = append(pkgs, parseRow(line, outdated))
	}
	return pkgs, nil
}

// parseRow splits one data line into a package row.
//
// The first whitespace-delimited token is the name. The plain shape
// carries the installed version in column 2; the outdated shape adds the
// latest version and distribution type in columns 3 and 4. Missing
// trailing columns are tolerated and left empty.
//
// Parameters:
//   - line: Non-blank data line, already trimmed
//   - outdated: Whether the four-column outdated shape is expected
//
// Returns:
//   - Package: Parsed row
func parseRow(line string, outdated bool) Package {
	fields := strings.Fields(line)

	pkg := Package{Name: fields[0]}
	if len(fields) > 1 {
		pkg.Version = fields[1]
	}
	if outdated {
		if len(fields) > 2 {
			pkg.Latest = fields[2]
		}
		if len(fields) > 3 {
			pkg.Type = fields[3]
		}
	}
	return pkg
}

// isSeparatorRow reports whether a line is a dashed header separator.
//
// The separator is identified structurally rather than by exact text:
// every whitespace-delimited token must consist solely of dash
// characters, which tolerates both column widths and column counts
// differing from the usual pip wording.
//
// Parameters:
//   - line: Non-blank line, already trimmed
//
// Returns:
//   - bool: true when every token is made of dashes only
func isSeparatorRow(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if strings.Trim(token, "-") != "" {
			return false
		}
	}
	return true
}
