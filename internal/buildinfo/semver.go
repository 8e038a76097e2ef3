package buildinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a major.minor.patch release number.
type Semver struct {
	Major int
	Minor int
	Patch int
}

// ParseSemver parses "1.2.3" or "v1.2.3". A pre-release or build suffix
// ("1.2.3-rc1", "1.2.3+abc") is ignored.
func ParseSemver(s string) (Semver, error) {
	core := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Semver{}, fmt.Errorf("invalid version: %q", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Semver{}, fmt.Errorf("invalid version: %q", s)
		}
		nums[i] = n
	}
	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// LessThan returns true if v < other.
func (v Semver) LessThan(other Semver) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// OlderThanCurrent reports whether version predates this build. Development
// builds and unparseable versions never count as older.
func OlderThanCurrent(version string) bool {
	current, err := ParseSemver(Version)
	if err != nil {
		return false
	}
	other, err := ParseSemver(version)
	if err != nil {
		return false
	}
	return other.LessThan(current)
}
