// Package versions classifies how far behind an installed package is.
// The classification is display-only: it annotates listings and verbose
// logs and never changes which packages get upgraded.
package versions

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Update scopes, from widest to narrowest.
const (
	ScopeMajor = "major"
	ScopeMinor = "minor"
	ScopePatch = "patch"
)

// Scope classifies the jump from an installed version to the latest one.
//
// It performs the following operations:
//   - Normalizes both versions into canonical semver form
//   - Returns empty when either version does not normalize (pip allows
//     PEP 440 forms like post-releases that semver cannot express)
//   - Returns empty when latest is not strictly newer than current
//   - Compares major, then minor, then patch components
//
// Parameters:
//   - current: Installed version as reported by pip
//   - latest: Latest available version as reported by pip
//
// Returns:
//   - string: ScopeMajor, ScopeMinor, ScopePatch, or empty when no
//     classification applies
func Scope(current, latest string) string {
	cur := normalize(current)
	lat := normalize(latest)
	if cur == "" || lat == "" {
		return ""
	}
	if semver.Compare(lat, cur) <= 0 {
		return ""
	}

	if semver.Major(lat) != semver.Major(cur) {
		return ScopeMajor
	}
	if semver.MajorMinor(lat) != semver.MajorMinor(cur) {
		return ScopeMinor
	}
	return ScopePatch
}

// normalize converts a pip-reported version into canonical semver form.
//
// Parameters:
//   - v: Raw version string, with or without a leading "v"
//
// Returns:
//   - string: Canonical form like "v1.24.0", or empty when the version
//     is not expressible as semver
func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
