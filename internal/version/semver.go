package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// Canonical semver 2.0 pattern, anchored at both ends. Taken from the
// suggested regular expression at semver.org. Pre-release and build
// metadata are matched so strict inputs validate, but they are discarded
// after parsing.
var semverPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`,
)

// SemanticVersion represents a strict three-component semantic version.
// Pre-release and build metadata are accepted by the grammar but do not
// participate in equality, diffing, or rendering.
type SemanticVersion struct {
	major int
	minor int
	patch int
}

// ParseSemantic parses a strict semver 2.0 string. Construction is
// all-or-nothing: a string that does not match the grammar yields a
// *ParseError and no instance.
func ParseSemantic(s string) (*SemanticVersion, error) {
	matches := semverPattern.FindStringSubmatch(s)
	if matches == nil {
		return nil, &ParseError{Input: s, Grammar: "semantic"}
	}

	// The grammar guarantees the three capture groups are decimal
	// integers without leading zeros.
	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])

	return &SemanticVersion{major: major, minor: minor, patch: patch}, nil
}

// Major returns the major component.
func (v *SemanticVersion) Major() int { return v.major }

// Minor returns the minor component.
func (v *SemanticVersion) Minor() int { return v.minor }

// Patch returns the patch component. The second result is always true for
// semantic versions since the grammar requires a patch component.
func (v *SemanticVersion) Patch() (int, bool) { return v.patch, true }

// SetMajor overwrites the major component.
func (v *SemanticVersion) SetMajor(to int) { v.major = to }

// SetMinor overwrites the minor component.
func (v *SemanticVersion) SetMinor(to int) { v.minor = to }

// SetPatch overwrites the patch component.
func (v *SemanticVersion) SetPatch(to int) { v.patch = to }

// IncrementMajor adds by to the major component.
func (v *SemanticVersion) IncrementMajor(by int) { v.major += by }

// IncrementMinor adds by to the minor component.
func (v *SemanticVersion) IncrementMinor(by int) { v.minor += by }

// IncrementPatch adds by to the patch component.
func (v *SemanticVersion) IncrementPatch(by int) { v.patch += by }

// Equal reports whether the two versions have identical major, minor, and
// patch components.
func (v *SemanticVersion) Equal(other *SemanticVersion) bool {
	if other == nil {
		return false
	}
	return v.major == other.major && v.minor == other.minor && v.patch == other.patch
}

// String renders the version as "major.minor.patch".
func (v *SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}
