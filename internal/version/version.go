package version

import (
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Version is an immutable dotted version: an ordered, non-empty sequence
// of non-negative integer release segments plus an optional prerelease
// marker.
//
// The hashicorp/go-version primitive pads its segment slice to three
// entries, but short forms matter here ("3.2" must stay "3.2", an
// increment of "1" must stay "1"), so Version records the release
// segments as written and keeps the parsed primitive alongside for
// comparisons.
type Version struct {
	// segments holds the release segments as written, e.g. [3, 2] for
	// "3.2". Always non-empty for a parsed Version.
	segments []int

	// pre is the prerelease marker ("a1", "rc.1", ...), empty for a
	// plain release.
	pre string

	// display is the canonical string form, without any "v" prefix.
	display string

	// parsed is the underlying go-version value, used for comparisons.
	parsed *goversion.Version
}

// ParseError reports a string that could not be parsed as a version.
// It wraps the primitive's parse failure.
type ParseError struct {
	// Input is the string that failed to parse.
	Input string

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.err)
}

// Unwrap returns the underlying parse failure.
func (e *ParseError) Unwrap() error {
	return e.err
}

// Parse parses a version string such as "3.2", "1", "0.0.1", or "3.1a1".
// A leading "v" is tolerated and stripped from the canonical form.
// Returns a *ParseError if the string is not a valid version.
func Parse(s string) (Version, error) {
	parsed, err := goversion.NewVersion(s)
	if err != nil {
		return Version{}, &ParseError{Input: s, err: err}
	}

	// go-version keeps the input verbatim in Original(); recover the
	// release segments as written from its leading digits-and-dots core.
	display := strings.TrimPrefix(parsed.Original(), "v")

	return Version{
		segments: releaseSegments(display),
		pre:      parsed.Prerelease(),
		display:  display,
		parsed:   parsed,
	}, nil
}

// MustParse parses a version string and panics on failure. Intended for
// fixed, known-good inputs such as the symbolic increment table.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// fromSegments constructs a plain release Version from the given
// segments. The canonical string is rebuilt and re-parsed through the
// primitive so that comparisons stay delegated to it.
func fromSegments(segments []int) Version {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = strconv.Itoa(seg)
	}
	display := strings.Join(parts, ".")

	return Version{
		segments: append([]int(nil), segments...),
		display:  display,
		parsed:   goversion.Must(goversion.NewVersion(display)),
	}
}

// releaseSegments extracts the written release segments from a version
// string whose core has already been validated by the primitive: the
// leading run of digits and dots, split on dots.
func releaseSegments(s string) []int {
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}

	parts := strings.Split(s[:end], ".")
	segments := make([]int, 0, len(parts))
	for _, part := range parts {
		n, _ := strconv.Atoi(part)
		segments = append(segments, n)
	}
	return segments
}

// String returns the canonical dotted form: the release segments as
// written, with the prerelease marker (if any) attached as parsed.
// There is never a "v" prefix; see SemVer for the prefixed form.
func (v Version) String() string {
	return v.display
}

// Segments returns a copy of the release segments.
func (v Version) Segments() []int {
	return append([]int(nil), v.segments...)
}

// Prerelease returns the prerelease marker, or "" for a plain release.
func (v Version) Prerelease() string {
	return v.pre
}

// IsPrerelease reports whether the version carries a prerelease marker.
func (v Version) IsPrerelease() bool {
	return v.pre != ""
}

// StripPrerelease returns the plain release version with any prerelease
// or dev marker removed: "3.1a1" becomes "3.1". The release segments are
// unchanged.
func (v Version) StripPrerelease() Version {
	if v.pre == "" {
		return v
	}
	return fromSegments(v.segments)
}

// Compare returns -1, 0, or 1 depending on whether v sorts before, equal
// to, or after other. Precedence follows the primitive: segments compare
// element-wise after zero-padding, prerelease < release.
func (v Version) Compare(other Version) int {
	return v.parsed.Compare(other.parsed)
}

// Add returns the element-wise sum of the release segments of v and
// other, zero-padding the shorter operand to the longer's length.
// Prerelease markers of the operands are not combined; the result is a
// plain release. Add is commutative and associative.
func (v Version) Add(other Version) Version {
	n := len(v.segments)
	if len(other.segments) > n {
		n = len(other.segments)
	}

	sum := make([]int, n)
	for i := range sum {
		if i < len(v.segments) {
			sum[i] += v.segments[i]
		}
		if i < len(other.segments) {
			sum[i] += other.segments[i]
		}
	}
	return fromSegments(sum)
}

// ResetLessSignificant returns v with every segment strictly after the
// last nonzero segment of significant zeroed out. Segments past that
// position are truncated, then the result is padded with zeros to
// significant's length:
//
//	ResetLessSignificant(3.2.2, 0.1)  →  3.2
//	ResetLessSignificant(4.1.2, 1.0)  →  4.0
//
// The operation is idempotent for a fixed significant. A significant
// version with no nonzero segment leaves v unchanged.
func (v Version) ResetLessSignificant(significant Version) Version {
	pos := significant.lastNonzero()
	if pos < 0 {
		return v
	}

	keep := pos + 1
	if keep > len(v.segments) {
		keep = len(v.segments)
	}

	out := append([]int(nil), v.segments[:keep]...)
	for len(out) < len(significant.segments) {
		out = append(out, 0)
	}
	return fromSegments(out)
}

// lastNonzero returns the index of the last nonzero release segment, or
// -1 if all segments are zero.
func (v Version) lastNonzero() int {
	for i := len(v.segments) - 1; i >= 0; i-- {
		if v.segments[i] != 0 {
			return i
		}
	}
	return -1
}

// AsNumber folds the release segments right to left into a single float:
// the accumulator starts at the last segment, and each step moving left
// computes acc/10 + segment. For 1.9.3 this yields 1.93.
//
// Intended for illustrative numeric scoring only — callers must round
// before comparing because of floating-point accumulation. Primary
// comparisons go through Compare.
func (v Version) AsNumber() float64 {
	acc := float64(v.segments[len(v.segments)-1])
	for i := len(v.segments) - 2; i >= 0; i-- {
		acc = acc/10 + float64(v.segments[i])
	}
	return acc
}
