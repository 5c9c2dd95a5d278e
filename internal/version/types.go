package version

// UpdateKind represents the magnitude of a version change.
type UpdateKind int

const (
	// Reseat indicates a rebuild or reissue with no version component change
	Reseat UpdateKind = iota
	// PatchUpdate indicates a patch-level change (0.0.X)
	PatchUpdate
	// MinorUpdate indicates a minor-level change (0.X.0)
	MinorUpdate
	// MajorUpdate indicates a major-level change (X.0.0)
	MajorUpdate
)

// String returns the string representation of the update kind.
func (k UpdateKind) String() string {
	switch k {
	case Reseat:
		return "reseat"
	case PatchUpdate:
		return "patch"
	case MinorUpdate:
		return "minor"
	case MajorUpdate:
		return "major"
	default:
		return "unknown"
	}
}

// ParseUpdateKind parses an update kind from its string form.
// Returns false when the string names no known kind.
func ParseUpdateKind(s string) (UpdateKind, bool) {
	switch s {
	case "reseat":
		return Reseat, true
	case "patch":
		return PatchUpdate, true
	case "minor":
		return MinorUpdate, true
	case "major":
		return MajorUpdate, true
	default:
		return Reseat, false
	}
}

// Version is implemented by concrete version types that expose numeric
// components and can be diffed against another instance of the same
// concrete type. Patch reports false when the patch component is absent
// from the version (possible for Jenkins-style versions).
type Version interface {
	Major() int
	Minor() int
	Patch() (int, bool)
}

// Diff computes the update kinds between two versions of the same concrete
// type, in the fixed order major, minor, patch. A component contributes its
// kind when the absolute difference is nonzero. A patch component present on
// one side and absent on the other counts as a patch change regardless of
// numeric magnitude; absent on both sides counts as unchanged. Diff never
// produces Reseat -- that kind only exists as an external "no detected
// change" signal supplied by callers.
func Diff(a, b Version) []UpdateKind {
	var kinds []UpdateKind

	if abs(a.Major()-b.Major()) > 0 {
		kinds = append(kinds, MajorUpdate)
	}
	if abs(a.Minor()-b.Minor()) > 0 {
		kinds = append(kinds, MinorUpdate)
	}

	aPatch, aOK := a.Patch()
	bPatch, bOK := b.Patch()
	switch {
	case aOK != bOK:
		// Presence changed: one side carries a patch component, the
		// other does not.
		kinds = append(kinds, PatchUpdate)
	case aOK && bOK && abs(aPatch-bPatch) > 0:
		kinds = append(kinds, PatchUpdate)
	}

	return kinds
}

// Greatest reduces a collection of update kinds to the single
// highest-severity kind under the total order major > minor > patch >
// reseat. The reduction is order-independent and tolerates duplicates.
// Returns false when kinds is empty.
func Greatest(kinds []UpdateKind) (UpdateKind, bool) {
	if len(kinds) == 0 {
		return Reseat, false
	}

	greatest := kinds[0]
	for _, k := range kinds[1:] {
		if k > greatest {
			greatest = k
		}
	}
	return greatest, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
