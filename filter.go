package triwarp

import (
	"fmt"
	"strings"
)

// FilterMode selects how the warp reconstructs colors.
type FilterMode uint8

const (
	// Bilinear samples the full-resolution source only.
	// It never reads the reduced level.
	Bilinear FilterMode = iota

	// Trilinear blends the full-resolution sample with a sample from the
	// half-resolution level when the destination triangle is smaller than
	// the source triangle. Enlarging warps behave exactly like Bilinear.
	Trilinear
)

// String returns the lower-case name of the mode.
func (m FilterMode) String() string {
	switch m {
	case Bilinear:
		return "bilinear"
	case Trilinear:
		return "trilinear"
	default:
		return fmt.Sprintf("FilterMode(%d)", uint8(m))
	}
}

// IsValid reports whether m is one of the defined modes.
func (m FilterMode) IsValid() bool {
	return m == Bilinear || m == Trilinear
}

// ParseFilterMode parses a mode name, ignoring case.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bilinear":
		return Bilinear, nil
	case "trilinear":
		return Trilinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilterMode, s)
	}
}
