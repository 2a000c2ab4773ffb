package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Demo is one timestamped segment of a community demo video.
// Fields are ordered to minimize memory padding.
type Demo struct {
	Title   string // Segment title
	Nick    string // Presenter IRC nickname
	Version string // Affected Pulp version, empty if not given
	Min     int    // Minute offset into the video
	Sec     int    // Second offset into the video
}

// ParseDuration splits a "MM:SS" string into minute and second parts.
func ParseDuration(s string) (min, sec int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	min, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	sec, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if min < 0 || sec < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return min, sec, nil
}

// Timestamp returns the segment offset in youtube's t= parameter form, e.g. "4m32s".
func (d Demo) Timestamp() string {
	return fmt.Sprintf("%dm%ds", d.Min, d.Sec)
}

// VersionSuffix returns " (version)" when an affected version was given, else "".
func (d Demo) VersionSuffix() string {
	if d.Version == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", d.Version)
}
