package tile

import (
	"fmt"
	"strings"
)

// Kind classifies the role of a tile on the grid.
type Kind string

// Supported tile kinds. The literal strings are the stable text encoding
// used by collaborating persistence and UI layers.
const (
	// KindUnknown marks an unclassified tile.
	KindUnknown Kind = "UNKNOWN"

	// KindCompute is a compute (AI engine) tile.
	KindCompute Kind = "AIE"

	// KindMemory is a dedicated memory tile.
	KindMemory Kind = "MEM"

	// KindShim is a shim-interface tile on the array boundary.
	KindShim Kind = "SHIM"
)

// IsValid reports whether the kind is one of the supported values.
// The empty string is not a valid kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindUnknown, KindCompute, KindMemory, KindShim:
		return true
	}
	return false
}

// String returns the stable text form.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts text to a Kind. Matching is case-insensitive and the
// text is trimmed. Unrecognized text yields ok=false, never a default guess.
func ParseKind(text string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case string(KindUnknown):
		return KindUnknown, true
	case string(KindCompute):
		return KindCompute, true
	case string(KindMemory):
		return KindMemory, true
	case string(KindShim):
		return KindShim, true
	}
	return "", false
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseKind semantics.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("tile: cannot parse %q as tile kind", string(text))
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}
