package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// Jenkins relaxation of the semver grammar: the patch component is
// optional. Jenkins weekly releases use major.minor (e.g. "2.333") while
// LTS releases carry a patch (e.g. "2.332.1").
var jenkinsPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)(?:\.(0|[1-9]\d*))?` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`,
)

// JenkinsVersion represents a Jenkins version where the patch component may
// be absent. An absent patch is a distinct state: it compares unequal to
// every concrete patch value including 0, and is omitted when rendering.
type JenkinsVersion struct {
	major    int
	minor    int
	patch    int
	hasPatch bool
}

// ParseJenkins parses a Jenkins version string. Construction is
// all-or-nothing: a string that does not match the grammar yields a
// *ParseError and no instance.
func ParseJenkins(s string) (*JenkinsVersion, error) {
	matches := jenkinsPattern.FindStringSubmatch(s)
	if matches == nil {
		return nil, &ParseError{Input: s, Grammar: "jenkins"}
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])

	v := &JenkinsVersion{major: major, minor: minor}
	if matches[3] != "" {
		v.patch, _ = strconv.Atoi(matches[3])
		v.hasPatch = true
	}

	return v, nil
}

// Major returns the major component.
func (v *JenkinsVersion) Major() int { return v.major }

// Minor returns the minor component.
func (v *JenkinsVersion) Minor() int { return v.minor }

// Patch returns the patch component and whether one is present.
func (v *JenkinsVersion) Patch() (int, bool) { return v.patch, v.hasPatch }

// Equal reports whether the two versions have identical components. Two
// absent patches are equal to each other; an absent patch is unequal to any
// present patch value.
func (v *JenkinsVersion) Equal(other *JenkinsVersion) bool {
	if other == nil {
		return false
	}
	if v.major != other.major || v.minor != other.minor {
		return false
	}
	if v.hasPatch != other.hasPatch {
		return false
	}
	return !v.hasPatch || v.patch == other.patch
}

// String renders the version as "major.minor.patch", omitting the patch
// segment entirely when the version has none.
func (v *JenkinsVersion) String() string {
	if !v.hasPatch {
		return fmt.Sprintf("%d.%d", v.major, v.minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}
