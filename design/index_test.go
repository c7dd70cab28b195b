package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tileflow/designkit/tile"
)

func TestIndex_PortsForBlock(t *testing.T) {
	b := NewBuilder()
	blk := b.CreateBlock(BlockCompute, unitPlacement(0, 0), "")
	p0 := b.CreatePort(blk, DirInput, PortType{Kind: PortStream}, "in0", 1)
	p1 := b.CreatePort(blk, DirInput, PortType{Kind: PortStream}, "in1", 1)
	p2 := b.CreatePort(blk, DirOutput, PortType{Kind: PortStream}, "out", 1)

	idx := b.Freeze().Index()
	assert.Equal(t, []PortID{p0, p1, p2}, idx.PortsForBlock(blk))
	assert.Empty(t, idx.PortsForBlock(NewBlockID()))
}

func TestIndex_PortsForBlock_OmitsPortlessBlocks(t *testing.T) {
	b := NewBuilder()
	blk := b.CreateBlock(BlockCompute, unitPlacement(0, 0), "")
	bare := b.CreateBlock(BlockMemory, unitPlacement(1, 0), "")
	b.CreatePort(blk, DirOutput, PortType{Kind: PortStream}, "", 1)

	idx := b.Freeze().Index()
	assert.Len(t, idx.PortsForBlock(blk), 1)
	assert.Empty(t, idx.PortsForBlock(bare))
}

func TestIndex_LinksForPort(t *testing.T) {
	b := NewBuilder()
	blkA := b.CreateBlock(BlockCompute, unitPlacement(0, 0), "")
	blkB := b.CreateBlock(BlockCompute, unitPlacement(0, 1), "")
	aOut := b.CreatePort(blkA, DirOutput, PortType{Kind: PortStream}, "", 1)
	bIn := b.CreatePort(blkB, DirInput, PortType{Kind: PortStream}, "", 1)
	bOut := b.CreatePort(blkB, DirOutput, PortType{Kind: PortStream}, "", 1)
	l0 := b.CreateLink(aOut, bIn, "")
	l1 := b.CreateLink(bOut, bIn, "")

	idx := b.Freeze().Index()
	assert.Equal(t, []LinkID{l0}, idx.LinksForPort(aOut))
	assert.Equal(t, []LinkID{l0, l1}, idx.LinksForPort(bIn), "link creation order")
	assert.Equal(t, []LinkID{l1}, idx.LinksForPort(bOut))
	assert.Empty(t, idx.LinksForPort(NewPortID()))
}

func TestIndex_LinksForPort_SkipsBrokenLinks(t *testing.T) {
	b := NewBuilder()
	blk := b.CreateBlock(BlockCompute, unitPlacement(0, 0), "")
	prt := b.CreatePort(blk, DirInOut, PortType{Kind: PortStream}, "", 1)

	b.CreateLink(prt, prt, "self loop")
	b.CreateLink(prt, NewPortID(), "dangling to")
	b.CreateLink(NewPortID(), prt, "dangling from")
	good := b.CreateLink(prt, b.CreatePort(blk, DirInput, PortType{Kind: PortStream}, "", 1), "")

	idx := b.Freeze().Index()
	assert.Equal(t, []LinkID{good}, idx.LinksForPort(prt))
}

func TestIndex_OccupancyFirstWins(t *testing.T) {
	b := NewBuilder()
	blkA := b.CreateBlock(BlockCompute, Placement{
		Anchor: tile.Coord{Row: 1, Col: 1}, RowSpan: 2, ColSpan: 2,
	}, "A")
	blkB := b.CreateBlock(BlockCompute, unitPlacement(2, 2), "B")

	idx := b.Freeze().Index()

	contested := tile.Coord{Row: 2, Col: 2}
	assert.Equal(t, blkA, idx.BlockAtTile(contested), "first claimant in creation order wins")
	assert.Equal(t, []tile.Coord{contested}, idx.CollidingTiles())
	assert.Empty(t, idx.TilesForBlock(blkB), "B claimed nothing")
	assert.Len(t, idx.TilesForBlock(blkA), 4)
	assert.True(t, idx.BlockAtTile(tile.Coord{Row: 5, Col: 5}).IsNil())
}

func TestIndex_CollisionsSortedAndDeduplicated(t *testing.T) {
	b := NewBuilder()
	b.CreateBlock(BlockCompute, Placement{
		Anchor: tile.Coord{Row: 0, Col: 0}, RowSpan: 2, ColSpan: 2,
	}, "base")
	// Two later blocks both overlap the base; (1,1) is contested twice but
	// must appear once.
	b.CreateBlock(BlockCompute, Placement{
		Anchor: tile.Coord{Row: 1, Col: 1}, RowSpan: 1, ColSpan: 2,
	}, "east")
	b.CreateBlock(BlockCompute, Placement{
		Anchor: tile.Coord{Row: 0, Col: 1}, RowSpan: 2, ColSpan: 1,
	}, "north")

	idx := b.Freeze().Index()
	assert.Equal(t, []tile.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, idx.CollidingTiles())
}

func TestIndex_SkipsInvalidBlocks(t *testing.T) {
	b := NewBuilder()
	ghost := b.CreateBlock(BlockUnknown, unitPlacement(0, 0), "invalid type")
	solid := b.CreateBlock(BlockCompute, unitPlacement(0, 0), "valid")

	idx := b.Freeze().Index()
	assert.Equal(t, solid, idx.BlockAtTile(tile.Coord{Row: 0, Col: 0}),
		"invalid blocks claim nothing")
	assert.Empty(t, idx.CollidingTiles())
	assert.Empty(t, idx.TilesForBlock(ghost))
}

func TestIndex_ReflectsCascade(t *testing.T) {
	b := NewBuilder()
	blkA := b.CreateBlock(BlockCompute, unitPlacement(0, 0), "A")
	blkB := b.CreateBlock(BlockCompute, unitPlacement(0, 1), "B")
	aOut := b.CreatePort(blkA, DirOutput, PortType{Kind: PortStream}, "", 1)
	bIn := b.CreatePort(blkB, DirInput, PortType{Kind: PortStream}, "", 1)
	b.CreateLink(aOut, bIn, "")

	require.True(t, b.RemoveBlock(blkA))
	idx := b.Freeze().Index()

	assert.Empty(t, idx.PortsForBlock(blkA))
	assert.Empty(t, idx.LinksForPort(bIn), "cascade removed the only link")
	assert.True(t, idx.BlockAtTile(tile.Coord{Row: 0, Col: 0}).IsNil())
}

func TestIndex_IsEmpty(t *testing.T) {
	assert.True(t, NewBuilder().Freeze().Index().IsEmpty())

	b := NewBuilder()
	b.CreateBlock(BlockCompute, unitPlacement(0, 0), "")
	assert.False(t, b.Freeze().Index().IsEmpty())
}
