// Package version provides framework version parsing and comparison.
package version

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// ClientCompatibility is the framework version this client requests
	// during the compatibility handshake.
	ClientCompatibility = "3"

	// API is the framework version this library was built against. It is
	// assumed for the remote side when the handshake is skipped.
	API = "3.1.1"
)

// maxParts is the number of components kept: major, minor, bugfix, build.
const maxParts = 4

// ErrUnsetMajor is returned when ordering involves a version without a
// major component.
var ErrUnsetMajor = errors.New("version has no major component")

// Version is a parsed framework version "major.minor.bugfix.build".
// Every component is optional; a Version without components is unknown.
// The zero value is an unknown version with an empty original string.
type Version struct {
	origin string
	parts  []int
}

// Parse parses a dot separated version string. An optional leading "v" is
// ignored. Parsing stops at the first token that is not a plain integer,
// so "3.1.11.3557-develop" yields 3.1.11. If even the first token is not
// numeric the result is an unknown version.
func Parse(s string) Version {
	v := Version{origin: s}

	trimmed := strings.TrimSpace(s)
	if len(trimmed) > 1 && (trimmed[0] == 'v' || trimmed[0] == 'V') {
		trimmed = trimmed[1:]
	}

	for _, tok := range strings.Split(trimmed, ".") {
		if len(v.parts) == maxParts || !isDigits(tok) {
			break
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			break
		}
		v.parts = append(v.parts, n)
	}

	return v
}

// Major returns the major component and whether it is set.
func (v Version) Major() (int, bool) { return v.part(0) }

// Minor returns the minor component and whether it is set.
func (v Version) Minor() (int, bool) { return v.part(1) }

// Bugfix returns the bugfix component and whether it is set.
func (v Version) Bugfix() (int, bool) { return v.part(2) }

// Build returns the build component and whether it is set.
func (v Version) Build() (int, bool) { return v.part(3) }

// IsValid reports whether the version has a major component.
func (v Version) IsValid() bool {
	return len(v.parts) > 0
}

// String returns the version as it was given to Parse.
func (v Version) String() string {
	return v.origin
}

// Normalized returns the numeric components joined by dots, or "unknown".
func (v Version) Normalized() string {
	if !v.IsValid() {
		return "unknown"
	}
	out := make([]string, len(v.parts))
	for i, p := range v.parts {
		out[i] = strconv.Itoa(p)
	}
	return strings.Join(out, ".")
}

// Compare orders v against other by major, minor, bugfix and build. An
// absent component sorts below any concrete one, so "3.0.3" < "3.0.3.1266".
// It returns -1, 0 or 1, or ErrUnsetMajor if either version is unknown.
//
// The pre-routine compatibility fallback matches on major and minor only and
// reads them directly; Compare is for feature gating and provider selection.
func (v Version) Compare(other Version) (int, error) {
	if !v.IsValid() || !other.IsValid() {
		return 0, ErrUnsetMajor
	}
	for i := 0; i < maxParts; i++ {
		a, aok := v.part(i)
		b, bok := other.part(i)
		switch {
		case !aok && !bok:
			continue
		case !aok:
			return -1, nil
		case !bok:
			return 1, nil
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
	}
	return 0, nil
}

// AtLeast reports whether v is ordered at or above min.
func (v Version) AtLeast(min Version) (bool, error) {
	c, err := v.Compare(min)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

func (v Version) part(i int) (int, bool) {
	if i >= len(v.parts) {
		return 0, false
	}
	return v.parts[i], true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
