package design

import (
	"github.com/tileflow/designkit/tile"
)

// BlockType classifies a placed design unit.
type BlockType string

// Supported block types.
const (
	// BlockUnknown marks an unclassified block. Blocks of this type are
	// representable but never valid.
	BlockUnknown BlockType = "unknown"

	// BlockCompute is a compute kernel block.
	BlockCompute BlockType = "compute"

	// BlockMemory is a dedicated memory block.
	BlockMemory BlockType = "memory"

	// BlockShimInterface is an array-boundary interface block.
	BlockShimInterface BlockType = "shim_interface"

	// BlockDdr is an external DDR interface block.
	BlockDdr BlockType = "ddr"
)

// IsValid reports whether the type is one of the supported values,
// including BlockUnknown.
func (t BlockType) IsValid() bool {
	switch t {
	case BlockUnknown, BlockCompute, BlockMemory, BlockShimInterface, BlockDdr:
		return true
	}
	return false
}

// Placement is a block's anchor tile plus its row and column span.
// The occupied region is the rectangle of RowSpan x ColSpan tiles whose
// top-left corner is the anchor.
type Placement struct {
	Anchor  tile.Coord `json:"anchor" yaml:"anchor"`
	RowSpan int        `json:"row_span" yaml:"row_span"`
	ColSpan int        `json:"col_span" yaml:"col_span"`
}

// IsValid reports whether the anchor is a valid coordinate and both spans
// are at least 1.
func (p Placement) IsValid() bool {
	return p.Anchor.IsValid() && p.RowSpan >= 1 && p.ColSpan >= 1
}

// Tiles returns the occupied tiles in row-major order. For an invalid
// placement (span below 1) the result is empty.
func (p Placement) Tiles() []tile.Coord {
	if p.RowSpan < 1 || p.ColSpan < 1 {
		return nil
	}
	tiles := make([]tile.Coord, 0, p.RowSpan*p.ColSpan)
	for r := 0; r < p.RowSpan; r++ {
		for c := 0; c < p.ColSpan; c++ {
			tiles = append(tiles, tile.Coord{Row: p.Anchor.Row + r, Col: p.Anchor.Col + c})
		}
	}
	return tiles
}

// Block is a placed design unit occupying a rectangular region of the tile
// grid. It exclusively owns the ports listed in Ports; the order of that
// list is append-only and significant, it carries argument-position
// semantics for downstream code generation.
type Block struct {
	// ID is the block's identifier; nil marks the block invalid.
	ID BlockID `json:"id"`

	// Type classifies the block. BlockUnknown marks the block invalid.
	Type BlockType `json:"type"`

	// Placement locates the block on the tile grid.
	Placement Placement `json:"placement"`

	// DisplayName is an optional human-readable name.
	DisplayName string `json:"display_name,omitempty"`

	// Ports lists the ports this block owns, in creation order.
	Ports []PortID `json:"ports,omitempty"`
}

// IsValid reports whether the block has a non-nil id, a known non-Unknown
// type, and a valid placement.
func (b Block) IsValid() bool {
	return !b.ID.IsNil() && b.Type.IsValid() && b.Type != BlockUnknown && b.Placement.IsValid()
}

// clone returns a copy with its own Ports backing array.
func (b Block) clone() Block {
	if b.Ports != nil {
		b.Ports = append([]PortID(nil), b.Ports...)
	}
	return b
}
