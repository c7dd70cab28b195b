package design

import "github.com/tileflow/designkit/tile"

// AnnotationKind classifies an annotation.
type AnnotationKind string

// Supported annotation kinds.
const (
	// AnnotationUnknown marks an unclassified annotation. Annotations of
	// this kind are representable but never valid.
	AnnotationUnknown AnnotationKind = "unknown"

	// AnnotationLabel is a short caption rendered next to its targets.
	AnnotationLabel AnnotationKind = "label"

	// AnnotationNote is a longer free-form remark.
	AnnotationNote AnnotationKind = "note"

	// AnnotationTag is a machine-readable marker.
	AnnotationTag AnnotationKind = "tag"
)

// IsValid reports whether the kind is one of the supported values,
// including AnnotationUnknown.
func (k AnnotationKind) IsValid() bool {
	switch k {
	case AnnotationUnknown, AnnotationLabel, AnnotationNote, AnnotationTag:
		return true
	}
	return false
}

// AnnotationTargets is the set of design elements an annotation attaches
// to. The four lists are independent; any of them may be empty. Targets are
// stored verbatim, their existence is not cross-checked.
type AnnotationTargets struct {
	Blocks []BlockID    `json:"blocks,omitempty"`
	Ports  []PortID     `json:"ports,omitempty"`
	Links  []LinkID     `json:"links,omitempty"`
	Tiles  []tile.Coord `json:"tiles,omitempty"`
}

// clone returns a copy with its own backing arrays.
func (t AnnotationTargets) clone() AnnotationTargets {
	if t.Blocks != nil {
		t.Blocks = append([]BlockID(nil), t.Blocks...)
	}
	if t.Ports != nil {
		t.Ports = append([]PortID(nil), t.Ports...)
	}
	if t.Links != nil {
		t.Links = append([]LinkID(nil), t.Links...)
	}
	if t.Tiles != nil {
		t.Tiles = append([]tile.Coord(nil), t.Tiles...)
	}
	return t
}

// Annotation is free-text metadata attached to a set of blocks, ports,
// links, and tiles.
type Annotation struct {
	// ID is the annotation's identifier; nil marks the annotation invalid.
	ID AnnotationID `json:"id"`

	// Kind classifies the annotation. AnnotationUnknown marks it invalid.
	Kind AnnotationKind `json:"kind"`

	// Text is the annotation body; it must be non-empty.
	Text string `json:"text"`

	// Targets is what the annotation attaches to.
	Targets AnnotationTargets `json:"targets"`

	// Tag is an optional free-text tag.
	Tag string `json:"tag,omitempty"`
}

// IsValid reports whether the annotation has a non-nil id, a known
// non-Unknown kind, and non-empty text.
func (a Annotation) IsValid() bool {
	return !a.ID.IsNil() && a.Kind.IsValid() && a.Kind != AnnotationUnknown && a.Text != ""
}

// clone returns a copy with its own target storage.
func (a Annotation) clone() Annotation {
	a.Targets = a.Targets.clone()
	return a
}
