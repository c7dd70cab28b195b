package design

import "github.com/tileflow/designkit/id"

// Phantom tag types. Each entity kind gets its own tag so identifiers of
// different kinds are distinct types: the same UUID value under two tags is
// unrelated.
type (
	blockTag      struct{}
	portTag       struct{}
	linkTag       struct{}
	netTag        struct{}
	annotationTag struct{}
	routeTag      struct{}
)

// Identifier types for the six entity kinds. The zero value of each is the
// nil "absent" identifier.
type (
	BlockID      = id.ID[blockTag]
	PortID       = id.ID[portTag]
	LinkID       = id.ID[linkTag]
	NetID        = id.ID[netTag]
	AnnotationID = id.ID[annotationTag]
	RouteID      = id.ID[routeTag]
)

// NewBlockID returns a freshly generated block identifier.
func NewBlockID() BlockID { return id.New[blockTag]() }

// NewPortID returns a freshly generated port identifier.
func NewPortID() PortID { return id.New[portTag]() }

// NewLinkID returns a freshly generated link identifier.
func NewLinkID() LinkID { return id.New[linkTag]() }

// NewNetID returns a freshly generated net identifier.
func NewNetID() NetID { return id.New[netTag]() }

// NewAnnotationID returns a freshly generated annotation identifier.
func NewAnnotationID() AnnotationID { return id.New[annotationTag]() }

// NewRouteID returns a freshly generated route identifier.
func NewRouteID() RouteID { return id.New[routeTag]() }

// ParseBlockID converts text to a block identifier; ok=false on garbage.
func ParseBlockID(text string) (BlockID, bool) { return id.Parse[blockTag](text) }

// ParsePortID converts text to a port identifier; ok=false on garbage.
func ParsePortID(text string) (PortID, bool) { return id.Parse[portTag](text) }

// ParseLinkID converts text to a link identifier; ok=false on garbage.
func ParseLinkID(text string) (LinkID, bool) { return id.Parse[linkTag](text) }

// ParseNetID converts text to a net identifier; ok=false on garbage.
func ParseNetID(text string) (NetID, bool) { return id.Parse[netTag](text) }

// ParseAnnotationID converts text to an annotation identifier; ok=false on garbage.
func ParseAnnotationID(text string) (AnnotationID, bool) { return id.Parse[annotationTag](text) }

// ParseRouteID converts text to a route identifier; ok=false on garbage.
func ParseRouteID(text string) (RouteID, bool) { return id.Parse[routeTag](text) }
