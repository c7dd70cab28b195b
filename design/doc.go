// Package design implements the document model of a tile-grid dataflow
// design: blocks placed on the grid, the ports they own, links between
// ports, nets, routes, and annotations, held in an immutable versioned
// snapshot with a derived adjacency and occupancy index.
//
// # Documents and Builders
//
// A Document is an immutable snapshot. All mutation goes through a Builder,
// which starts either empty or seeded from an existing snapshot, accumulates
// create/remove operations against private tables, and publishes a new
// snapshot with Freeze:
//
//	b := design.NewBuilder()
//	blk := b.CreateBlock(design.BlockCompute, design.Placement{
//	    Anchor:  tile.Coord{Row: 1, Col: 1},
//	    RowSpan: 1,
//	    ColSpan: 1,
//	}, "dma engine")
//	out := b.CreatePort(blk, design.DirOutput, design.PortType{Kind: design.PortStream}, "out", 1)
//
//	doc := b.Freeze()
//
// Freezing computes a fresh Index over the finished tables. A frozen
// Document never changes; editing continues by seeding a new Builder from
// it, which deep-copies the entity tables so the original snapshot is
// unaffected:
//
//	b2 := design.NewBuilderFrom(doc)
//	b2.RemoveBlock(blk)
//	doc2 := b2.Freeze() // doc is untouched
//
// A Document is safe to share read-only across goroutines once frozen.
// A Builder is an ordinary mutable value and is not safe for concurrent use.
//
// # Validity
//
// The model is non-throwing throughout: construction never fails, lookups
// report absence with ok=false or nil ids, and malformed entities are stored
// as-is. Each entity answers IsValid after the fact, and parse helpers
// report ok=false on garbage. Document.IsValid only asserts the snapshot has
// a backing store; it is not a proof that every contained entity is valid.
//
// # Index
//
// The Index answers adjacency and occupancy queries in constant or
// near-constant time: ports per block in port order, links per port, the
// block claiming a tile (first claimant in creation order wins), and the
// sorted deduplicated list of tiles claimed by more than one block.
// Collisions are advisory: an overlapping placement never blocks Freeze,
// it is surfaced for the caller to flag.
package design
