// Package tile provides the discrete grid vocabulary of a dataflow design:
// coordinates on the tile array and the closed classification of tile roles.
//
// A Coord is a (row, column) pair. Coordinates are ordered row-major and
// round-trip through the "row,col" text form:
//
//	c := tile.Coord{Row: 2, Col: 5}
//	c.String()                 // "2,5"
//	tile.ParseCoord("2,5")     // c, true
//	tile.ParseCoord("2;5")     // zero, false
//
// A Kind classifies what a tile is for: compute (AIE), memory (MEM), or the
// shim interface row (SHIM). Parsing is case-insensitive and never guesses:
// unrecognized text reports ok=false rather than defaulting to UNKNOWN.
package tile
