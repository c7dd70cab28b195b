package design

import (
	"sort"

	"github.com/tileflow/designkit/tile"
)

// Index is the derived adjacency and occupancy structure of a frozen
// document. It is computed once at freeze time from the finished entity
// tables and never changes afterward, so it is safe to share read-only.
//
// Query results that are slices are views into the index; callers must not
// modify them.
type Index struct {
	portsByBlock map[BlockID][]PortID
	linksByPort  map[PortID][]LinkID
	tileOwner    map[tile.Coord]BlockID
	tilesByBlock map[BlockID][]tile.Coord
	collisions   []tile.Coord
}

// emptyIndex is the shared fallback returned by zero-value documents.
var emptyIndex = &Index{}

// buildIndex computes the index over finished entity tables. Blocks and
// links are visited in creation order so occupancy and adjacency are
// deterministic.
func buildIndex(s *store) *Index {
	idx := &Index{
		portsByBlock: make(map[BlockID][]PortID),
		linksByPort:  make(map[PortID][]LinkID),
		tileOwner:    make(map[tile.Coord]BlockID),
		tilesByBlock: make(map[BlockID][]tile.Coord),
	}

	// Ports per block, in the block's own port order. Blocks whose ports
	// have all been removed are omitted.
	for _, bid := range s.blockOrder {
		block := s.blocks[bid]
		var surviving []PortID
		for _, pid := range block.Ports {
			if _, ok := s.ports[pid]; ok {
				surviving = append(surviving, pid)
			}
		}
		if len(surviving) > 0 {
			idx.portsByBlock[bid] = surviving
		}
	}

	// Links per port. Self-referential or dangling links are skipped.
	for _, lid := range s.linkOrder {
		link := s.links[lid]
		if !link.IsValid() {
			continue
		}
		if _, ok := s.ports[link.From]; !ok {
			continue
		}
		if _, ok := s.ports[link.To]; !ok {
			continue
		}
		idx.linksByPort[link.From] = append(idx.linksByPort[link.From], lid)
		idx.linksByPort[link.To] = append(idx.linksByPort[link.To], lid)
	}

	// Tile occupancy with first-wins claiming. A tile already claimed by
	// another block is recorded as a collision and keeps its first owner.
	collided := make(map[tile.Coord]bool)
	for _, bid := range s.blockOrder {
		block := s.blocks[bid]
		if !block.IsValid() {
			continue
		}
		for _, t := range block.Placement.Tiles() {
			owner, claimed := idx.tileOwner[t]
			if !claimed {
				idx.tileOwner[t] = bid
				idx.tilesByBlock[bid] = append(idx.tilesByBlock[bid], t)
				continue
			}
			if owner != bid {
				collided[t] = true
			}
		}
	}
	if len(collided) > 0 {
		idx.collisions = make([]tile.Coord, 0, len(collided))
		for t := range collided {
			idx.collisions = append(idx.collisions, t)
		}
		sort.Slice(idx.collisions, func(i, j int) bool {
			return idx.collisions[i].Less(idx.collisions[j])
		})
	}

	return idx
}

// PortsForBlock returns the surviving ports owned by the block, in the
// block's own port order. Unknown blocks and blocks with no surviving
// ports yield an empty result.
func (idx *Index) PortsForBlock(id BlockID) []PortID {
	return idx.portsByBlock[id]
}

// LinksForPort returns the valid links touching the port, in link creation
// order. Unknown ports yield an empty result.
func (idx *Index) LinksForPort(id PortID) []LinkID {
	return idx.linksByPort[id]
}

// BlockAtTile returns the block claiming the tile, or the nil id if the
// tile is unclaimed. When placements overlap, the first claimant in block
// creation order wins.
func (idx *Index) BlockAtTile(coord tile.Coord) BlockID {
	return idx.tileOwner[coord]
}

// TilesForBlock returns the tiles the block claimed, in row-major order of
// its placement rectangle. Tiles lost to an earlier block are not included.
func (idx *Index) TilesForBlock(id BlockID) []tile.Coord {
	return idx.tilesByBlock[id]
}

// CollidingTiles returns the tiles claimed by more than one block,
// deduplicated and sorted row-major. Collisions are advisory; they never
// prevent a document from freezing.
func (idx *Index) CollidingTiles() []tile.Coord {
	return idx.collisions
}

// IsEmpty reports whether the index holds no adjacency or occupancy data.
func (idx *Index) IsEmpty() bool {
	return len(idx.portsByBlock) == 0 &&
		len(idx.linksByPort) == 0 &&
		len(idx.tileOwner) == 0 &&
		len(idx.collisions) == 0
}
