package spirv

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version represents a SPIR-V or client API version.
//
// The zero Version means "unspecified". An unspecified version satisfies
// any lower bound: a target that never negotiated a version is assumed
// to be current.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// IsZero reports whether v is the unspecified version.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// Word returns the version packed as a 32-bit word in the SPIR-V header
// layout |0|Major|Minor|0|.
func (v Version) Word() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

// VersionFromWord unpacks a version from the SPIR-V header layout.
func VersionFromWord(w uint32) Version {
	return Version{Major: uint8(w >> 16), Minor: uint8(w >> 8)}
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Cmp compares two versions numerically: -1 if v < o, 0 if equal, 1 if v > o.
func (v Version) Cmp(o Version) int {
	switch {
	case v.Word() < o.Word():
		return -1
	case v.Word() > o.Word():
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether v satisfies the lower bound min.
// An unspecified v satisfies any bound; an unspecified min bounds nothing.
func (v Version) AtLeast(min Version) bool {
	if v.IsZero() || min.IsZero() {
		return true
	}
	return v.Cmp(min) >= 0
}

// InWindow reports whether v falls inside the inclusive window [min, max].
// A zero min means no lower bound and a zero max means no upper bound,
// so the zero window contains every version.
func (v Version) InWindow(min, max Version) bool {
	if !v.AtLeast(min) {
		return false
	}
	if max.IsZero() || v.IsZero() {
		return true
	}
	return v.Cmp(max) <= 0
}

// ParseVersion parses a version string such as "1.4" or "v1.4".
func ParseVersion(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", s, err)
	}
	if sv.Major() > 255 || sv.Minor() > 255 {
		return Version{}, fmt.Errorf("version %q out of range", s)
	}
	return Version{Major: uint8(sv.Major()), Minor: uint8(sv.Minor())}, nil
}
