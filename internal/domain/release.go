package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a Pulp release version in strict x.y.z form.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a strict x.y.z version string.
// The string must contain exactly two dots and three integer components.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the full x.y.z form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// XY returns the x.y form used in repository paths.
func (v Version) XY() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsFeatureRelease reports whether this is a feature release (patch
// component is zero) as opposed to a bugfix release.
func (v Version) IsFeatureRelease() bool {
	return v.Patch == 0
}

// Wording returns the announcement wording for what the release includes.
func (v Version) Wording() string {
	if v.IsFeatureRelease() {
		return "new features"
	}
	return "bugfixes"
}

// channelKind discriminates the Channel variants.
type channelKind int

const (
	kindStable channelKind = iota
	kindBeta
	kindRC
)

// Channel is the release maturity of a build: stable, beta, or release
// candidate. Beta and RC carry a build number. The zero value is stable.
type Channel struct {
	kind  channelKind
	build int
}

// Stable returns the stable channel.
func Stable() Channel {
	return Channel{kind: kindStable}
}

// Beta returns the beta channel with the given build number.
func Beta(build int) Channel {
	return Channel{kind: kindBeta, build: build}
}

// ReleaseCandidate returns the RC channel with the given build number.
func ReleaseCandidate(build int) Channel {
	return Channel{kind: kindRC, build: build}
}

// IsStable reports whether this is the stable channel.
func (c Channel) IsStable() bool {
	return c.kind == kindStable
}

// RepoDir returns the repository path segment for the channel.
// Betas and release candidates both ship from the beta repositories.
func (c Channel) RepoDir() string {
	if c.kind == kindStable {
		return "stable"
	}
	return "beta"
}

// Suffix returns the version name suffix, e.g. " Beta 2", or "" for stable.
func (c Channel) Suffix() string {
	switch c.kind {
	case kindBeta:
		return fmt.Sprintf(" Beta %d", c.build)
	case kindRC:
		return fmt.Sprintf(" Release Candidate %d", c.build)
	default:
		return ""
	}
}

// Audience returns the recommended-action phrase for the tweet.
func (c Channel) Audience() string {
	switch c.kind {
	case kindBeta:
		return "Beta testing"
	case kindRC:
		return "Release Candidate testing"
	default:
		return "Upgrading"
	}
}
