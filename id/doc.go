// Package id provides type-tagged 128-bit identifiers for design entities.
//
// An ID is a UUID wrapped in a zero-sized tag type, so identifiers for
// different entity kinds are distinct types and can never be mixed up at
// compile time:
//
//	type blockTag struct{}
//	type portTag struct{}
//
//	type BlockID = id.ID[blockTag]
//	type PortID  = id.ID[portTag]
//
//	var b BlockID = id.New[blockTag]()
//	var p PortID  = b // compile error
//
// IDs are comparable and usable directly as map keys. Ordering and equality
// are defined byte-wise over the underlying 16-byte value, independent of
// the textual form.
//
// # Textual Form
//
// The canonical text form is the lowercase hyphenated UUID
// ("0f8fad5b-d9cb-469f-a165-70867728950e"). Parse is lenient: it trims
// surrounding whitespace, tries a strict parse, and retries after stripping
// one pair of surrounding braces. Malformed text never produces an error or
// a default value; Parse reports ok=false and the caller must branch:
//
//	bid, ok := id.Parse[blockTag](text)
//	if !ok {
//	    // text was not an identifier
//	}
//
// The nil (all-zero) ID represents "absent" and is the zero value of every
// ID type.
package id
