package design

import "strings"

// PortDirection is the data direction of a port.
type PortDirection string

// Supported port directions.
const (
	DirInput  PortDirection = "input"
	DirOutput PortDirection = "output"
	DirInOut  PortDirection = "inout"
)

// IsValid reports whether the direction is one of the supported values.
func (d PortDirection) IsValid() bool {
	switch d {
	case DirInput, DirOutput, DirInOut:
		return true
	}
	return false
}

// PortKind is the transport class of a port type.
type PortKind string

// Supported port kinds.
const (
	PortStream  PortKind = "stream"
	PortPacket  PortKind = "packet"
	PortDma     PortKind = "dma"
	PortControl PortKind = "control"

	// PortKindUnknown marks an unclassified port type. Port types of this
	// kind are representable but never valid.
	PortKindUnknown PortKind = "unknown"
)

// rank fixes the ordering of kinds for PortType.Compare. Unrecognized
// kinds sort after every known one.
func (k PortKind) rank() int {
	switch k {
	case PortStream:
		return 0
	case PortPacket:
		return 1
	case PortDma:
		return 2
	case PortControl:
		return 3
	case PortKindUnknown:
		return 4
	}
	return 5
}

// PortType is a port's transport class plus a free-text payload descriptor
// (e.g. an element type). Port types order first by kind, then by payload
// text.
type PortType struct {
	Kind    PortKind `json:"kind"`
	Payload string   `json:"payload,omitempty"`
}

// IsValid reports whether the kind is a known value other than
// PortKindUnknown.
func (t PortType) IsValid() bool {
	switch t.Kind {
	case PortStream, PortPacket, PortDma, PortControl:
		return true
	}
	return false
}

// Compare orders port types by kind first, then by payload text.
func (t PortType) Compare(other PortType) int {
	if r := t.Kind.rank() - other.Kind.rank(); r != 0 {
		if r < 0 {
			return -1
		}
		return 1
	}
	return strings.Compare(t.Payload, other.Payload)
}

// Port is a typed, directional attachment point owned by exactly one block.
type Port struct {
	// ID is the port's identifier; nil marks the port invalid.
	ID PortID `json:"id"`

	// Owner is the block this port belongs to; nil marks the port invalid.
	Owner BlockID `json:"owner"`

	// Direction is the data direction.
	Direction PortDirection `json:"direction"`

	// Type is the transport class and payload descriptor.
	Type PortType `json:"type"`

	// Name is an optional port name.
	Name string `json:"name,omitempty"`

	// Capacity is the channel capacity; it must be at least 1.
	Capacity int `json:"capacity"`
}

// IsValid reports whether the port has non-nil id and owner, a valid type,
// and a capacity of at least 1.
func (p Port) IsValid() bool {
	return !p.ID.IsNil() && !p.Owner.IsNil() && p.Type.IsValid() && p.Capacity >= 1
}
