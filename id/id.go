package id

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ID is a 128-bit identifier tagged with a phantom type T.
// The tag participates only in the type system; it occupies no storage.
// The zero value is the nil ID, which represents "absent".
type ID[T any] struct {
	value uuid.UUID
}

// New returns a freshly generated random identifier.
func New[T any]() ID[T] {
	return ID[T]{value: uuid.New()}
}

// Nil returns the all-zero identifier for the tag type.
// It is identical to the zero value of ID[T].
func Nil[T any]() ID[T] {
	return ID[T]{}
}

// FromUUID wraps an existing UUID value as a tagged identifier.
func FromUUID[T any](u uuid.UUID) ID[T] {
	return ID[T]{value: u}
}

// IsNil reports whether the identifier is the all-zero "absent" value.
func (i ID[T]) IsNil() bool {
	return i.value == uuid.Nil
}

// UUID returns the underlying untagged UUID value.
func (i ID[T]) UUID() uuid.UUID {
	return i.value
}

// String returns the canonical lowercase hyphenated form.
func (i ID[T]) String() string {
	return i.value.String()
}

// BracedString returns the canonical form wrapped in braces, the form some
// collaborating persistence formats use.
func (i ID[T]) BracedString() string {
	return "{" + i.value.String() + "}"
}

// Compare orders two identifiers byte-wise over their 16-byte values.
// It returns -1, 0, or 1 in the usual way.
func (i ID[T]) Compare(other ID[T]) int {
	return bytes.Compare(i.value[:], other.value[:])
}

// Less reports whether i orders before other under Compare.
func (i ID[T]) Less(other ID[T]) bool {
	return i.Compare(other) < 0
}

// Parse converts text to an identifier. It trims surrounding whitespace,
// attempts a strict parse, and retries once after stripping a single pair of
// surrounding braces. Malformed text yields the nil ID and ok=false; Parse
// never returns an error.
func Parse[T any](text string) (ID[T], bool) {
	s := strings.TrimSpace(text)
	if u, ok := parseCanonical(s); ok {
		return ID[T]{value: u}, true
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if u, ok := parseCanonical(inner); ok {
			return ID[T]{value: u}, true
		}
	}
	return ID[T]{}, false
}

// parseCanonical accepts only the 36-character hyphenated form, case
// insensitive. uuid.Parse alone is laxer — it takes braced, urn:uuid, and
// bare-hex input — which would let a second brace pair through the retry
// in Parse and admit forms the contract does not sanction.
func parseCanonical(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.UUID{}, false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, false
	}
	return u, true
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (i ID[T]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same leniency
// as Parse. Unlike Parse it must surface malformed input as an error, since
// the encoding machinery has no ok channel.
func (i *ID[T]) UnmarshalText(text []byte) error {
	parsed, ok := Parse[T](string(text))
	if !ok {
		return fmt.Errorf("id: cannot parse %q as identifier", string(text))
	}
	*i = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler using the canonical form.
func (i ID[T]) MarshalYAML() (any, error) {
	return i.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (i *ID[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("id: expected scalar node, got %v", value.Kind)
	}
	return i.UnmarshalText([]byte(value.Value))
}
