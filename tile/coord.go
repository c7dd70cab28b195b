package tile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Coord is a discrete (row, column) position on the tile grid.
// The zero value is the valid coordinate (0,0); negative rows or columns
// mark a coordinate invalid but remain representable.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// IsValid reports whether both row and column are non-negative.
func (c Coord) IsValid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// Compare orders coordinates row-major: by row first, then by column.
func (c Coord) Compare(other Coord) int {
	if c.Row != other.Row {
		if c.Row < other.Row {
			return -1
		}
		return 1
	}
	if c.Col != other.Col {
		if c.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c orders before other under Compare.
func (c Coord) Less(other Coord) bool {
	return c.Compare(other) < 0
}

// String returns the "row,col" text form.
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// ParseCoord converts text to a coordinate. The text is trimmed and must
// contain exactly one comma with a valid integer on each side, and the
// resulting coordinate must itself be valid. Anything else yields the zero
// coordinate and ok=false; ParseCoord never returns an error.
func ParseCoord(text string) (Coord, bool) {
	s := strings.TrimSpace(text)
	first := strings.IndexByte(s, ',')
	if first < 0 || first != strings.LastIndexByte(s, ',') {
		return Coord{}, false
	}
	row, err := strconv.Atoi(strings.TrimSpace(s[:first]))
	if err != nil {
		return Coord{}, false
	}
	col, err := strconv.Atoi(strings.TrimSpace(s[first+1:]))
	if err != nil {
		return Coord{}, false
	}
	c := Coord{Row: row, Col: col}
	if !c.IsValid() {
		return Coord{}, false
	}
	return c, true
}

// MarshalText implements encoding.TextMarshaler using the "row,col" form.
func (c Coord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed input is
// surfaced as an error, since the encoding machinery has no ok channel.
func (c *Coord) UnmarshalText(text []byte) error {
	parsed, ok := ParseCoord(string(text))
	if !ok {
		return fmt.Errorf("tile: cannot parse %q as coordinate", string(text))
	}
	*c = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts either the scalar
// "row,col" form or a {row, col} mapping node.
func (c *Coord) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return c.UnmarshalText([]byte(value.Value))
	}
	type plain Coord
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Coord(p)
	return nil
}
