package design

import (
	"fmt"
	"strconv"
	"strings"
)

// SchemaVersion is the monotonic version of the design document schema.
// Zero is the invalid version.
type SchemaVersion int

const (
	// InvalidSchemaVersion marks an unset or unparseable version.
	InvalidSchemaVersion SchemaVersion = 0

	// MinSupportedSchemaVersion is the oldest schema this model can still
	// load; anything older must be migrated by the persistence layer.
	MinSupportedSchemaVersion SchemaVersion = 1

	// CurrentSchemaVersion is the schema written by this model.
	CurrentSchemaVersion SchemaVersion = 3
)

// IsValid reports whether the version is a positive integer.
func (v SchemaVersion) IsValid() bool {
	return v > 0
}

// IsSupported reports whether the version is valid and within the supported
// range [MinSupportedSchemaVersion, CurrentSchemaVersion].
func (v SchemaVersion) IsSupported() bool {
	return v >= MinSupportedSchemaVersion && v <= CurrentSchemaVersion
}

// RequiresMigration reports whether the version is valid but older than the
// current schema.
func (v SchemaVersion) RequiresMigration() bool {
	return v.IsValid() && v < CurrentSchemaVersion
}

// String returns the decimal text form.
func (v SchemaVersion) String() string {
	return strconv.Itoa(int(v))
}

// ParseSchemaVersion converts text to a schema version. The text is trimmed
// and may carry a leading "v" or "V". Zero, negative, non-numeric, or
// out-of-range input yields InvalidSchemaVersion and ok=false.
func ParseSchemaVersion(text string) (SchemaVersion, bool) {
	s := strings.TrimSpace(text)
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return InvalidSchemaVersion, false
	}
	return SchemaVersion(n), true
}

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (v SchemaVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseSchemaVersion
// semantics.
func (v *SchemaVersion) UnmarshalText(text []byte) error {
	parsed, ok := ParseSchemaVersion(string(text))
	if !ok {
		return fmt.Errorf("design: cannot parse %q as schema version", string(text))
	}
	*v = parsed
	return nil
}
